package models

// Pair is one vocabulary item as persisted: the German term and its French
// counterpart. JSON keys match the store file format.
type Pair struct {
	De string `json:"de" db:"de"`
	Fr string `json:"fr" db:"fr"`
}

// Collection is a named, ordered set of pairs. Collections are created
// wholesale (import or builtin seed) and replaced wholesale, never patched.
type Collection struct {
	Name  string `json:"name"`
	Items []Pair `json:"items"`
}

// Store is the full persisted database: every collection, keyed by name.
type Store struct {
	Collections []Collection `json:"collections"`
}

// Entry is a pair flattened out of the store, tagged with the name of the
// collection it came from.
type Entry struct {
	De     string
	Fr     string
	Source string
}
