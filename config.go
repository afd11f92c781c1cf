package inifile

import (
	"bytes"
	"io"
	"os"
	"time"
)

// Config is an open configuration file. It caches the parsed contents of
// the file and tracks edits that have not been committed yet.
//
// A Config is not safe for concurrent use, and nothing guards against other
// processes writing the file: Refresh notices such writes only through the
// file's size and modification time.
type Config struct {
	path  string
	dirty bool

	image  []byte
	size   int64
	mtime  time.Time
	loaded bool
	closed bool

	s   store
	cur Cursor
}

// Open loads the file at path. If create is set and the file does not
// exist, an empty file is created first.
func Open(path string, create bool) (*Config, error) {
	if path == "" {
		return nil, ErrInvalid.Errorf("empty path")
	}

	if create {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
			if err != nil && !os.IsExist(err) {
				return nil, ErrIO.Errorf("create %s: %v", path, err)
			}
			if fh != nil {
				fh.Close() // Nothing was written.
			}
		}
	}

	c := &Config{path: path}
	c.cur.c = c
	if _, err := c.Refresh(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the cached file contents. Any uncommitted edits are lost.
func (c *Config) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.free()
	c.closed = true
	return nil
}

func (c *Config) free() {
	c.image = nil
	c.size = 0
	c.mtime = time.Time{}
	c.loaded = false
	c.dirty = false
	c.s.reset()
	c.cur.Rewind()
}

// Refresh reloads the file if its size or modification time changed since
// it was last loaded, dropping any uncommitted edits. It reports whether a
// reload happened. An unchanged file keeps the in-memory state as is.
func (c *Config) Refresh() (bool, error) {
	if c.closed {
		return false, ErrClosed.Errorf("%s", c.path)
	}

	fi, err := os.Stat(c.path)
	if os.IsNotExist(err) {
		return false, ErrNoFile.Errorf("%s", c.path)
	} else if err != nil {
		return false, ErrIO.Errorf("stat %s: %v", c.path, err)
	}

	if c.loaded && fi.Size() == c.size && fi.ModTime().Equal(c.mtime) {
		return false, nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return false, ErrIO.Errorf("read %s: %v", c.path, err)
	}

	c.free()
	c.image = data
	c.size = fi.Size()
	c.mtime = fi.ModTime()

	if err := parse(&c.s, c.image); err != nil {
		c.free()
		return false, ErrIO.Errorf("parse %s: %v", c.path, err)
	}
	c.loaded = true

	return true, nil
}

func (c *Config) valid() error {
	switch {
	case c == nil:
		return ErrInvalid.Errorf("nil config")
	case c.closed:
		return ErrClosed.Errorf("%s", c.path)
	case !c.loaded:
		return ErrInvalid.Errorf("%s: not loaded", c.path)
	}
	return nil
}

// Path returns the path of the backing file.
func (c *Config) Path() string { return c.path }

// Dirty reports whether there are edits not yet committed.
func (c *Config) Dirty() bool { return c.dirty }

// Len returns the number of entries.
func (c *Config) Len() int { return c.s.len() }

// Entries returns a copy of the entries in file order.
func (c *Config) Entries() []Entry {
	return append([]Entry(nil), c.s.entries...)
}

// Commit writes the entries back to the file if there are uncommitted
// edits. The file is rewritten from scratch.
func (c *Config) Commit() error {
	if err := c.valid(); err != nil {
		return err
	}
	if !c.dirty {
		return nil
	}

	var buf bytes.Buffer
	if _, err := format(&buf, c.s.entries); err != nil {
		return ErrIO.Errorf("format %s: %v", c.path, err)
	}
	if err := os.WriteFile(c.path, buf.Bytes(), 0644); err != nil {
		return ErrIO.Errorf("write %s: %v", c.path, err)
	}

	// Record what was just written so Refresh does not take it for an
	// external change.
	fi, err := os.Stat(c.path)
	if err != nil {
		return ErrIO.Errorf("stat %s: %v", c.path, err)
	}
	c.image = buf.Bytes()
	c.size = fi.Size()
	c.mtime = fi.ModTime()

	c.dirty = false
	return nil
}

// WriteTo writes the formatted entries to w. It does not affect the dirty
// state.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	if err := c.valid(); err != nil {
		return 0, err
	}
	return format(w, c.s.entries)
}
