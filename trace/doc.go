// Package trace implements §4.F's side-channel: an optional mapping
// from produced atoms, bonds, and ring-closure events back to the
// cursor span in the original SMILES text that produced them.
//
// A Trace is never required — read.Read accepts a nil *trace.Trace and
// simply skips recording — but when supplied, every add/extend/ring
// event the parser emits is recorded against it, so a caller can later
// answer "what part of the input string produced atom 4's third bond?"
package trace
