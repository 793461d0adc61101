// Package table holds the in-memory tabular model used by the compare module
// together with the two operations applied to uploads: column-wise sorting and
// row-wise multiset difference.
//
// Everything here is pure. Tables are read from and written to io.Reader and
// io.Writer values so callers decide where the bytes live.
package table
