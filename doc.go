// Package yowl reads and writes SMILES, the line notation chemists use
// to describe a molecule's atoms, bonds, and rings as a single string.
//
// The library is organized as a pipeline of small packages rather than
// one large one:
//
//	element — atomic symbol tables and standard valence targets
//	feature — the atom and bond tagged variants the rest of the pipeline shares
//	graph   — the immutable, arena-indexed molecular graph
//	read    — the scanner and grammar that turn SMILES text into events
//	build   — a walk.Follower that turns those events into a graph.AdjacencyList
//	walk    — the depth-first traversal that replays a graph as events
//	write   — a walk.Follower that turns those events back into SMILES text
//	trace   — an optional side-channel recording each event's source span
//
// A round trip looks like:
//
//	tr := trace.New()
//	b := build.New()
//	if err := read.Read(smiles, b, tr); err != nil {
//		// err carries the cursor of the first offending character
//	}
//	g, err := b.Build()
//	out, err := write.Write(g)
//
// build.Builder and write.Writer both implement walk.Follower; neither
// package knows the other exists. Reading a graph back out through
// walk.Walk and a fresh write.Writer produces canonical SMILES for it,
// not necessarily byte-identical to whatever text it was first read
// from — read.Read and write.Write disagree on purpose about which
// bonds and brackets get written explicitly versus elided.
package yowl
