// Package graph holds the adjacency-list data model §3 of the design
// describes: an Atom carries its own ordered Bonds, a Bond names its
// target by arena index rather than by pointer, and every bond has a
// reciprocal twin recorded on the target atom.
//
// Unlike a general-purpose graph library, an AdjacencyList here is
// produced once by build.Builder and never mutated again. There is no
// AddVertex/AddEdge surface and no internal locking: §5 makes the core
// single-threaded during construction and immutable — therefore safe
// for concurrent readers — after it. A graph.AdjacencyList is a value a
// caller owns outright, not a service with its own synchronization.
package graph
