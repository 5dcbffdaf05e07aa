// Package str provides string helpers used for matching human input:
// diacritic folding, bigram similarity, indentation stripping and a couple of
// format checks.
//
//	str.RemoveDiacritics("Clémence") // → "Clemence"
//	str.Similarity("cle", "clemence") // → 0.444…
package str
