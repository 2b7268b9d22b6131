// Package seqsrc serves [start0, end1) slices of named reference sequences.
//
// Two backends exist: a directory of raw "<ref>.seq" files read with ReadAt
// (nothing is loaded up front), and an in-memory set built from a FASTA file
// for references small enough to hold. Cache keeps a bounded number of
// sequences open across ranges.
package seqsrc
