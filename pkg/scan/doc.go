// Package scan walks a directory tree and aggregates usage statistics.
//
// The walk is sequential and depth first: files are visited in listing
// order, a directory's inventory entry follows all of its children, and
// subtree sizes roll up through return values. Cancellation is cooperative
// through the context, symlinks are never followed, and I/O failures are
// contained to the entry they hit. Observers receive per-file progress and
// periodic read-only snapshots of the running aggregate.
package scan
