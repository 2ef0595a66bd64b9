// Package read implements §4.C's Scanner and §4.D's recursive-descent
// grammar, turning a SMILES string into a sequence of walk.Follower
// events (optionally recorded into a trace.Trace) via the top-level
// Read entry point.
//
// Every grammar-detected error is returned immediately with the cursor
// of the first offending character in the original input (§4.D's error
// cursor rule, §7's propagation policy) — Read never continues past a
// malformed construct hoping to recover.
package read
