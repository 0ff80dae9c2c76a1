// Package pipeline feeds every individual's tag file, in pools order, through
// a Clusterer one local cluster at a time.
//
// The only contract to implement is Clusterer (Process, Stats).
// This keeps the pipeline swappable and testable.
package pipeline
