package inifile

import "strings"

// Cursor walks the sections, definitions and continuations of a Config in
// file order. Comment lines are skipped. A Cursor stays valid across edits
// but its position is an index, so edits before it shift what it sees.
type Cursor struct {
	c   *Config
	pos int
	eof bool

	kind    Kind
	section string
	key     string
	value   string
}

// Cursor returns a new cursor positioned before the first entry.
func (c *Config) Cursor() *Cursor {
	return &Cursor{c: c}
}

// Rewind moves the cursor back before the first entry.
func (cur *Cursor) Rewind() {
	*cur = Cursor{c: cur.c}
}

// Next advances to the next non comment entry and reports whether there
// was one.
func (cur *Cursor) Next() bool {
	if cur.eof || cur.c.valid() != nil {
		return false
	}
	cur.key, cur.value = "", ""

	entries := cur.c.s.entries
	for cur.pos < len(entries) {
		ent := entries[cur.pos]
		cur.pos++

		switch ent.Kind {
		case Section:
			cur.kind = Section
			cur.section = ent.Name
			return true
		case Definition, Continuation:
			cur.kind = ent.Kind
			cur.key = ent.Key
			cur.value = ent.Value
			return true
		}
	}

	cur.eof = true
	return false
}

// NextSection advances to the next section header.
func (cur *Cursor) NextSection() bool {
	for cur.Next() {
		if cur.kind == Section {
			return true
		}
	}
	return false
}

// EOF reports whether the cursor ran past the last entry.
func (cur *Cursor) EOF() bool { return cur.eof }

// Kind returns the kind of the current entry.
func (cur *Cursor) Kind() Kind { return cur.kind }

// Section returns the name of the section the current entry is in.
func (cur *Cursor) Section() string { return cur.section }

// Key returns the key of the current definition.
func (cur *Cursor) Key() string { return cur.key }

// Value returns the value of the current definition or continuation.
func (cur *Cursor) Value() string { return cur.value }

// Index returns the position of the current entry in Config.Entries.
func (cur *Cursor) Index() int { return cur.pos - 1 }

func (cur *Cursor) entry() Entry { return cur.c.s.entries[cur.pos-1] }

// Find returns the definition of key in the first section named section.
// Both names compare ignoring ASCII case, and quotes in stored keys are
// ignored. With an empty key, Find returns the section header itself.
// Only the first section with a matching name is searched.
func (c *Config) Find(section, key string) (Entry, error) {
	if err := c.valid(); err != nil {
		return Entry{}, err
	}

	cur := &c.cur
	cur.Rewind()

	inSection := false
	for cur.Next() {
		if inSection {
			if cur.kind == Section {
				break
			}
			if cur.kind == Definition {
				if k, ok := unquoteKey(cur.key); ok && equalFold(k, key) {
					return cur.entry(), nil
				}
			}
		} else if cur.kind == Section && equalFold(cur.section, section) {
			if key == "" {
				return cur.entry(), nil
			}
			inSection = true
		}
	}

	if key == "" {
		return Entry{}, ErrNotFound.Errorf("section [%s]", section)
	}
	return Entry{}, ErrNotFound.Errorf("key %q in section [%s]", key, section)
}

// HasSection reports whether a section with the name exists.
func (c *Config) HasSection(section string) bool {
	_, err := c.Find(section, "")
	return err == nil
}

// unquoteKey drops leading quotes from s and cuts it at the first quote
// left. It is deliberately loose: `"a"b'` becomes `a`.
func unquoteKey(s string) (string, bool) {
	s = strings.TrimLeft(s, `'"`)
	if s == "" {
		return "", false
	}
	if i := strings.IndexByte(s, '\''); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '"'); i >= 0 {
		s = s[:i]
	}
	return s, true
}

// Sections returns the section names in file order.
func (c *Config) Sections() []string {
	var names []string
	cur := c.Cursor()
	for cur.NextSection() {
		names = append(names, cur.Section())
	}
	return names
}

// Keys returns the keys defined under sections named exactly section,
// case included.
func (c *Config) Keys(section string) []string {
	var keys []string
	cur := c.Cursor()
	for cur.Next() {
		if cur.Kind() == Definition && cur.Section() == section {
			keys = append(keys, cur.Key())
		}
	}
	return keys
}
