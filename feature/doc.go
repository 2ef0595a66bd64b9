// Package feature defines the closed, tagged-variant types shared by the
// read, build, walk, and write packages: atom kinds, bond kinds, stereo
// parity, and the small numeric features (isotope, charge, explicit
// hydrogen count, atom map class) a bracket atom may carry.
//
// Every variant here is a plain Go value — a small struct with an
// integer discriminator, never an interface or a class hierarchy.
// Matching on the discriminator is the only polymorphism these types
// need; none of them own resources or require cleanup.
package feature
