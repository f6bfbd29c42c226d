package hebrew

// Category partitions the scalars the engine knows about.
type Category uint8

// Category constants.
const (
	// PassThrough is any scalar the classifier does not know (Latin, digits,
	// spaces). It is copied verbatim by every stage.
	PassThrough Category = iota
	Consonant
	FinalConsonant
	Niqqud
	Cantillation
	Punctuation
	// SilentModifier marks change how a clump is read but never begin or
	// end a clump on their own.
	SilentModifier
)

var categoryNames = [...]string{
	PassThrough:    "pass-through",
	Consonant:      "consonant",
	FinalConsonant: "final-consonant",
	Niqqud:         "niqqud",
	Cantillation:   "cantillation",
	Punctuation:    "punctuation",
	SilentModifier: "silent-modifier",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// StartsClump reports whether a scalar of this category opens a new clump.
func (c Category) StartsClump() bool {
	switch c {
	case Consonant, FinalConsonant, Punctuation, PassThrough:
		return true
	}
	return false
}

// IsMark reports whether the category is a combining mark.
func (c Category) IsMark() bool {
	return c == Niqqud || c == Cantillation || c == SilentModifier
}

// Class is the classification of one scalar: its category and a stable name
// such as "shin" or "sof-pasuq".
type Class struct {
	Category Category
	Name     string
}

// Named scalars referenced by the clumper, tokenizer and tables.
const (
	Alef      rune = 'א'
	Vav       rune = 'ו'
	Yod       rune = 'י'
	Shin      rune = 'ש'
	Sheva     rune = '\u05B0'
	Holam     rune = '\u05B9'
	Dagesh    rune = '\u05BC'
	Meteg     rune = '\u05BD'
	Maqaf     rune = '\u05BE'
	Rafe      rune = '\u05BF'
	Paseq     rune = '\u05C0'
	ShinDot   rune = '\u05C1'
	SinDot    rune = '\u05C2'
	SofPasuq  rune = '\u05C3'
	UpperDot  rune = '\u05C4'
	LowerDot  rune = '\u05C5'
	NunHafukh rune = '\u05C6'

	zeroWidthJoiner rune = '\u200D'
)

const (
	hebrewBlockStart rune = '\u0590'
	hebrewBlockEnd   rune = '\u05FF'
)

var classes = map[rune]Class{
	// Consonants
	'א': {Consonant, "alef"},
	'ב': {Consonant, "bet"},
	'ג': {Consonant, "gimel"},
	'ד': {Consonant, "dalet"},
	'ה': {Consonant, "he"},
	'ו': {Consonant, "vav"},
	'ז': {Consonant, "zayin"},
	'ח': {Consonant, "het"},
	'ט': {Consonant, "tet"},
	'י': {Consonant, "yod"},
	'ך': {FinalConsonant, "final-kaf"},
	'כ': {Consonant, "kaf"},
	'ל': {Consonant, "lamed"},
	'ם': {FinalConsonant, "final-mem"},
	'מ': {Consonant, "mem"},
	'ן': {FinalConsonant, "final-nun"},
	'נ': {Consonant, "nun"},
	'ס': {Consonant, "samekh"},
	'ע': {Consonant, "ayin"},
	'ף': {FinalConsonant, "final-pe"},
	'פ': {Consonant, "pe"},
	'ץ': {FinalConsonant, "final-tsadi"},
	'צ': {Consonant, "tsadi"},
	'ק': {Consonant, "qof"},
	'ר': {Consonant, "resh"},
	'ש': {Consonant, "shin"},
	'ת': {Consonant, "tav"},
	'װ': {Consonant, "double-vav"},
	'ױ': {Consonant, "vav-yod"},
	'ײ': {Consonant, "double-yod"},

	// Niqqud
	'\u05B0': {Niqqud, "sheva"},
	'\u05B1': {Niqqud, "hataf-segol"},
	'\u05B2': {Niqqud, "hataf-patah"},
	'\u05B3': {Niqqud, "hataf-qamats"},
	'\u05B4': {Niqqud, "hiriq"},
	'\u05B5': {Niqqud, "tsere"},
	'\u05B6': {Niqqud, "segol"},
	'\u05B7': {Niqqud, "patah"},
	'\u05B8': {Niqqud, "qamats"},
	'\u05B9': {Niqqud, "holam"},
	'\u05BA': {Niqqud, "holam-haser"},
	'\u05BB': {Niqqud, "qubuts"},
	'\u05BC': {Niqqud, "dagesh"},
	'\u05C7': {Niqqud, "qamats-qatan"},

	// Silent modifiers
	'\u05BD': {SilentModifier, "meteg"},
	'\u05BF': {SilentModifier, "rafe"},
	'\u05C1': {SilentModifier, "shin-dot"},
	'\u05C2': {SilentModifier, "sin-dot"},
	'\u05C4': {SilentModifier, "upper-dot"},
	'\u05C5': {SilentModifier, "lower-dot"},

	// Punctuation
	'\u05BE': {Punctuation, "maqaf"},
	'\u05C0': {Punctuation, "paseq"},
	'\u05C3': {Punctuation, "sof-pasuq"},
	'\u05C6': {Punctuation, "nun-hafukha"},
}

func init() {
	cantillation := [...]string{
		"etnahta", "segol-accent", "shalshelet", "zaqef-qatan", "zaqef-gadol",
		"tipeha", "revia", "zarqa", "pashta", "yetiv", "tevir", "geresh",
		"geresh-muqdam", "gershayim", "qarney-para", "telisha-gedola", "pazer",
		"atnah-hafukh", "munah", "mahapakh", "merkha", "merkha-kefula",
		"darga", "qadma", "telisha-qetana", "yerah-ben-yomo", "ole", "iluy",
		"dehi", "zinor", "masora-circle",
	}
	for i, name := range cantillation {
		classes['\u0591'+rune(i)] = Class{Cantillation, name}
	}
}

// Classify returns the class of r. Scalars without a table entry, including
// unknown scalars inside the Hebrew block, classify as PassThrough.
func Classify(r rune) Class {
	if c, ok := classes[r]; ok {
		return c
	}
	return Class{Category: PassThrough}
}

// IsUnmapped reports whether r lies in the Hebrew block but has no
// classification. Such scalars are passed through and worth reporting.
func IsUnmapped(r rune) bool {
	if r < hebrewBlockStart || r > hebrewBlockEnd {
		return false
	}
	_, ok := classes[r]
	return !ok
}
