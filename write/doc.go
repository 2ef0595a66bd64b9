// Package write implements §4.H's Writer, turning a walk.Follower event
// stream back into SMILES text.
//
// Writer buffers the events it receives into an in-memory tree rather
// than emitting text as each one arrives — the same "collect now,
// finalize later" shape build.Builder uses for the opposite direction —
// because two of §4.H's rules need to see an atom's later siblings or
// its full incident bond-order sum before deciding how to render
// something already visited: which of an atom's children keeps the
// unwrapped "trunk" continuation, and whether a bracket atom's fields
// are redundant enough to drop the brackets.
package write
