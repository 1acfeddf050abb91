// Package reconcile brings a translation document up to date with a
// reference document. It enumerates every key path of the reference tree,
// takes the translated value for paths the translation already has, inserts
// a placeholder for the rest, and drops keys the reference no longer knows.
// The package is pure: it never reads or writes files.
package reconcile
