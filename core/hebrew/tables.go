package hebrew

// Table maps clusters of one or more scalars to a Latin rendering and answers
// greedy longest-prefix queries.
type Table struct {
	name    string
	entries map[string]string
	maxLen  int // longest key, in scalars
}

// NewTable builds a table. The entries map is copied.
func NewTable(name string, entries map[string]string) *Table {
	t := &Table{name: name, entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		if k == "" {
			continue
		}
		t.entries[k] = v
		if n := len([]rune(k)); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the entry for an exact key.
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Longest finds the longest prefix of rs that has an entry. It returns the
// entry, the number of scalars consumed, and whether anything matched.
func (t *Table) Longest(rs []rune) (string, int, bool) {
	n := len(rs)
	if n > t.maxLen {
		n = t.maxLen
	}
	for ; n > 0; n-- {
		if v, ok := t.entries[string(rs[:n])]; ok {
			return v, n, true
		}
	}
	return "", 0, false
}

// Tables is the ordered set of lookup tables used per clump.
type Tables struct {
	Consonants  *Table
	Vowels      *Table
	Punctuation *Table
}

var consonantEntries = map[string]string{
	"א": "'",
	"ב": "v", "ב\u05BC": "b", "ב\u05BF": "v",
	"ג": "g", "ג\u05BC": "g",
	"ד": "d", "ד\u05BC": "d",
	"ה": "h", "ה\u05BC": "h",
	"ו": "v", "ו\u05BC": "u", "ו\u05B9": "o",
	"ז": "z", "ז\u05BC": "z",
	"ח": "ch",
	"ט": "t", "ט\u05BC": "t",
	"י": "y", "י\u05BC": "y",
	"ך": "kh", "ך\u05BC": "k",
	"כ": "kh", "כ\u05BC": "k", "כ\u05BF": "kh",
	"ל": "l", "ל\u05BC": "l",
	"ם": "m",
	"מ": "m", "מ\u05BC": "m",
	"ן": "n",
	"נ": "n", "נ\u05BC": "n",
	"ס": "s", "ס\u05BC": "s",
	"ע": "`",
	"ף": "f", "ף\u05BC": "p",
	"פ": "f", "פ\u05BC": "p", "פ\u05BF": "f",
	"ץ": "ts",
	"צ": "ts", "צ\u05BC": "ts",
	"ק": "q", "ק\u05BC": "q",
	"ר": "r",
	"ש": "sh", "ש\u05C1": "sh", "ש\u05C2": "s",
	"ש\u05BC": "sh", "ש\u05BC\u05C1": "sh", "ש\u05BC\u05C2": "s",
	"ת": "t", "ת\u05BC": "t",
	"װ": "v",
	"ױ": "oy",
	"ײ": "ey",
}

var vowelEntries = map[string]string{
	"\u05B0": "",  // sheva
	"\u05B1": "e", // hataf segol
	"\u05B2": "a", // hataf patah
	"\u05B3": "o", // hataf qamats
	"\u05B4": "i", // hiriq
	"\u05B5": "e", // tsere
	"\u05B6": "e", // segol
	"\u05B7": "a", // patah
	"\u05B8": "a", // qamats
	"\u05B9": "o", // holam
	"\u05BA": "o", // holam haser for vav
	"\u05BB": "u", // qubuts
	"\u05BC": "",  // dagesh on a letter without a hard form
	"\u05C7": "o", // qamats qatan
}

var punctuationEntries = map[string]string{
	"\u05BE": "-",
	"\u05C0": "|",
	"\u05C3": ".",
	"\u05C6": "",
}

var defaultTables = Tables{
	Consonants:  NewTable("consonants", consonantEntries),
	Vowels:      NewTable("vowels", vowelEntries),
	Punctuation: NewTable("punctuation", punctuationEntries),
}

// DefaultTables returns the built-in tables. They are shared and must not be
// modified.
func DefaultTables() Tables {
	return defaultTables
}
