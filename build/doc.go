// Package build implements walk.Follower by accumulating atoms and
// bonds into a graph.AdjacencyList, §4.E's Builder component.
//
// A Builder is single-writer and not meant to be shared: it holds
// mutable parser state (a DFS stack, an open-ring table) for exactly
// one molecule, and Build transfers that state into an immutable
// graph.AdjacencyList, after which the Builder is spent. It implements
// walk.Follower so that read.Read can drive it directly, and so that
// walk.Walk can drive it a second time when re-serializing a graph
// through a different Follower (build.Builder again, for a deep copy,
// or write.Writer, for text).
package build
