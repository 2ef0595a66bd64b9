// Package walk performs a depth-first traversal of a graph.AdjacencyList
// and reports what it finds through the Follower interface, §4.G's
// "walk" operation.
//
// The traversal owns exactly one structural decision a caller cannot
// override: in what order it visits atoms and how it numbers ring
// closures. Everything it produces — a new graph via build.Builder, or
// SMILES text via write.Writer — is a Follower implementation reacting
// to Root, Extend, Join, and Pop calls. Neither side of that interface
// knows about the other; a build.Builder happens to implement the same
// Follower contract a write.Writer does, which is what makes walking a
// freshly parsed graph back out through a Writer a round-trip rather
// than two unrelated operations.
package walk
