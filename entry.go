package inifile

// Kind classifies an Entry.
type Kind uint8

const (
	// Comment is a line holding only a ';' comment.
	Comment Kind = iota
	// Section is a "[name]" header.
	Section
	// Definition is a "key = value" line.
	Definition
	// Continuation is an indented value-only line following a Definition.
	Continuation
)

func (k Kind) String() string {
	switch k {
	case Comment:
		return "comment"
	case Section:
		return "section"
	case Definition:
		return "definition"
	case Continuation:
		return "continuation"
	default:
		return "unknown"
	}
}

// Entry is one line of a configuration file. Which fields are meaningful
// depends on Kind:
//
//	Section:      Name
//	Definition:   Key, Value
//	Continuation: Value
//	Comment:      Comment
//
// Any kind may carry a trailing comment, recorded in Comment with
// HasComment set. Comment text excludes the leading ';'.
type Entry struct {
	Kind       Kind
	Name       string
	Key        string
	Value      string
	Comment    string
	HasComment bool
}

// attached reports whether e is a comment line that sticks to the block
// following it: a pure comment that is empty or starts with blank or ';'.
func (e Entry) attached() bool {
	if e.Kind != Comment {
		return false
	}
	return len(e.Comment) == 0 || isWhite(e.Comment[0]) || e.Comment[0] == ';'
}

// minEntries is the smallest allocation made by store.
const minEntries = 4096 / 96

// store is the ordered list of entries backing a Config.
type store struct {
	entries []Entry
}

func (s *store) len() int { return len(s.entries) }

// grow ensures room for n more entries, over-allocating by half the
// current capacity.
func (s *store) grow(n int) {
	if len(s.entries)+n <= cap(s.entries) {
		return
	}
	newCap := n + minEntries
	if c := cap(s.entries); c > 0 {
		newCap = n + c + c/2
	}
	entries := make([]Entry, len(s.entries), newCap)
	copy(entries, s.entries)
	s.entries = entries
}

func (s *store) append(ents ...Entry) {
	s.grow(len(ents))
	s.entries = append(s.entries, ents...)
}

// insert places ent before index i, shifting the tail up.
func (s *store) insert(i int, ent Entry) {
	s.grow(1)
	s.entries = s.entries[:len(s.entries)+1]
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = ent
}

// remove deletes the entries in [i, j), shifting the tail down.
func (s *store) remove(i, j int) {
	if i >= j {
		return
	}
	n := copy(s.entries[i:], s.entries[j:])
	// Zero out truncated elements for garbage collection.
	for k := i + n; k < len(s.entries); k++ {
		s.entries[k] = Entry{}
	}
	s.entries = s.entries[:i+n]
}

func (s *store) reset() {
	s.entries = nil
}
