// Package textutil provides the text normalization used for fuzzy media
// matching.
//
// Normalize turns titles into loose lowercase comparison tokens: accents are
// stripped via canonical decomposition, spaces become dots, and a narrow
// punctuation set is removed. The resulting keys are collision-prone on
// purpose; they exist only so that descriptor titles and filename stems can
// be compared by substring containment.
package textutil
