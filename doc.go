// Package ahocorasick implements a multi-pattern exact string-matching
// automaton using the Aho-Corasick algorithm.
//
// Given a dictionary of keys, each associated with a user-supplied value,
// the automaton locates every occurrence of every key inside an input in a
// single linear pass over the input. Besides matching, it also behaves as
// a trie: exact lookup, prefix queries, wildcard key enumeration, and
// persistent save/restore are all supported.
//
// The automaton moves through three phases during its lifetime: EMPTY (no
// keys have been added yet), TRIE (keys have been added but the failure
// function has not been computed, or has been invalidated by a mutation),
// and AHOCORASICK (the failure function is current and searching is
// allowed). Finalize transitions TRIE to AHOCORASICK; any structural
// mutation afterwards drops the automaton back to TRIE.
package ahocorasick
