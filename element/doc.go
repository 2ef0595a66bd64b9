// Package element is a thin façade over the periodic-table knowledge the
// rest of yowl needs: which bare letters are eligible to carry aromatic
// lowercase forms, which provisional (Uub..Uuo) names normalize to which
// modern IUPAC symbols, and which standard valence targets a bracket
// atom's element/charge combination offers for implicit-hydrogen and
// hypervalence accounting.
//
// It does not model the periodic table generally — no atomic masses, no
// electron configurations, no isotope abundance tables. Those belong to
// an external element-table provider and are out of scope here, exactly
// as they are out of scope for the rest of yowl.
package element
