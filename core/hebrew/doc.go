// Package hebrew turns pointed Hebrew text into consonantal, clumped and
// transliterated forms.
//
// The pipeline is:
//
//	text --Normalize--> text --Clump--> []Clump --Transliterate--> latin
//
// Every stage is total: scalars outside the Hebrew block pass through
// unchanged, and problems in the input are reported as diagnostics from
// core/errors rather than failures. Lookup tables are built once at package
// initialization and are never mutated, so all functions are safe for
// concurrent use.
package hebrew
