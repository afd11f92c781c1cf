package inifile

// Set updates key in the first section named section, or adds it. A new
// key goes directly before the header of the next section, after any
// comment lines in between. A missing section is appended to the file.
// Names compare case insensitively, ASCII letters only.
func (c *Config) Set(section, key, value string) error {
	if err := c.valid(); err != nil {
		return err
	}
	if section == "" {
		return ErrInvalid.Errorf("empty section name")
	}

	def := Entry{Kind: Definition, Key: key, Value: value}

	sect := c.findSection(section)
	if sect < 0 {
		c.s.append(Entry{Kind: Section, Name: section}, def)
		c.dirty = true
		return nil
	}

	entries := c.s.entries
	for i := sect + 1; i < len(entries); i++ {
		ent := &entries[i]
		if ent.Kind == Section {
			c.s.insert(i, def)
			c.dirty = true
			return nil
		}
		if ent.Kind == Definition && equalFold(ent.Key, key) {
			ent.Value = value
			c.dirty = true
			return nil
		}
	}

	c.s.append(def)
	c.dirty = true
	return nil
}

// DeleteKey removes key from the first section named section, together
// with the comment block directly above it. Deleting a key or section that
// does not exist succeeds without changes.
func (c *Config) DeleteKey(section, key string) error {
	if err := c.valid(); err != nil {
		return err
	}
	if section == "" {
		return ErrInvalid.Errorf("empty section name")
	}

	sect := c.findSection(section)
	if sect < 0 {
		return nil
	}

	entries := c.s.entries
	for i := sect + 1; i < len(entries); i++ {
		ent := entries[i]
		if ent.Kind == Section {
			return nil
		}
		if ent.Kind == Definition && equalFold(ent.Key, key) {
			c.s.remove(c.blockStart(i), i+1)
			c.dirty = true
			return nil
		}
	}
	return nil
}

// DeleteSection removes the first section named section: its header, its
// entries, and the comment block directly above the header. A comment
// block at the end of the section that introduces the next section is
// kept. Deleting a section that does not exist succeeds without changes.
func (c *Config) DeleteSection(section string) error {
	if err := c.valid(); err != nil {
		return err
	}
	if section == "" {
		return ErrInvalid.Errorf("empty section name")
	}

	sect := c.findSection(section)
	if sect < 0 {
		return nil
	}

	entries := c.s.entries
	end := len(entries)
	for i := sect + 1; i < len(entries); i++ {
		if entries[i].Kind == Section {
			end = i
			break
		}
	}

	c.s.remove(c.blockStart(sect), c.blockStart(end))
	c.dirty = true
	return nil
}

func (c *Config) findSection(name string) int {
	for i, ent := range c.s.entries {
		if ent.Kind == Section && equalFold(ent.Name, name) {
			return i
		}
	}
	return -1
}

// blockStart walks back from i over comment lines that stick to the entry
// at i and returns the index of the first of them.
func (c *Config) blockStart(i int) int {
	for i > 0 && c.s.entries[i-1].attached() {
		i--
	}
	return i
}
