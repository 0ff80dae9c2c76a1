// Package engine is the cross-individual clustering core. For each local
// cluster it matches existing global clusters (exact sequence, optionally
// Hamming distance), merges them into the lowest id with a full relabel of
// every absorbed member, and adopts the local cluster's sequences.
//
// Results depend on the order local clusters are fed in; callers process
// individuals in pools order and clusters in file order. Keep this package
// domain-only: it never imports internal/.
package engine
