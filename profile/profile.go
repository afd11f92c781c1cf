// Package profile reads and writes single values of INI files by path,
// opening and closing the file around every call.
//
// The read helpers never fail: problems are logged at debug level and the
// default is returned instead.
package profile

import (
	"context"

	"github.com/zeebo/inifile"
	"zombiezen.com/go/log"
)

// ReadString returns the value of key in section of the file at path, or
// def if it cannot be read. A def of a single space means the empty string,
// for callers that cannot pass an empty default.
func ReadString(ctx context.Context, section, key, def, path string) string {
	if def == " " {
		def = ""
	}

	cfg, err := inifile.Open(path, false)
	if err != nil {
		log.Debugf(ctx, "Read [%s] %s: %v", section, key, err)
		return def
	}
	defer cfg.Close()

	if _, err := cfg.Refresh(); err != nil {
		log.Debugf(ctx, "Refresh %s: %v", path, err)
	}

	v, err := cfg.String(section, key)
	if err != nil {
		log.Debugf(ctx, "Read [%s] %s from %s: %v", section, key, path, err)
		return def
	}
	return v
}

// ReadInt returns the integer value of key in section of the file at path,
// or def if the file or key cannot be found. A value that exists but holds
// no integer reads as 0, not def.
func ReadInt(ctx context.Context, section, key string, def int, path string) int {
	cfg, err := inifile.Open(path, false)
	if err != nil {
		log.Debugf(ctx, "Read [%s] %s: %v", section, key, err)
		return def
	}
	defer cfg.Close()

	v, err := cfg.Int(section, key)
	if err != nil {
		log.Debugf(ctx, "Read [%s] %s from %s: %v", section, key, path, err)
		return def
	}
	return v
}

// WriteString sets key in section of the file at path, creating the file
// if needed, and commits it.
func WriteString(ctx context.Context, section, key, value, path string) error {
	return update(ctx, path, func(cfg *inifile.Config) error {
		return cfg.Set(section, key, value)
	})
}

// DeleteKey removes key from section of the file at path.
func DeleteKey(ctx context.Context, section, key, path string) error {
	return update(ctx, path, func(cfg *inifile.Config) error {
		return cfg.DeleteKey(section, key)
	})
}

// DeleteSection removes section from the file at path.
func DeleteSection(ctx context.Context, section, path string) error {
	return update(ctx, path, func(cfg *inifile.Config) error {
		return cfg.DeleteSection(section)
	})
}

func update(ctx context.Context, path string, fn func(cfg *inifile.Config) error) error {
	cfg, err := inifile.Open(path, true)
	if err != nil {
		return err
	}
	defer cfg.Close()

	if err := fn(cfg); err != nil {
		return err
	}
	if !cfg.Dirty() {
		log.Debugf(ctx, "No changes to %s", path)
		return nil
	}
	if err := cfg.Commit(); err != nil {
		return err
	}
	log.Debugf(ctx, "Committed %s", path)
	return nil
}

// Sections returns the section names of the file at path. A missing file
// has none.
func Sections(ctx context.Context, path string) []string {
	cfg, err := inifile.Open(path, false)
	if err != nil {
		log.Debugf(ctx, "List sections: %v", err)
		return nil
	}
	defer cfg.Close()
	return cfg.Sections()
}

// Keys returns the keys of section in the file at path.
func Keys(ctx context.Context, section, path string) []string {
	cfg, err := inifile.Open(path, false)
	if err != nil {
		log.Debugf(ctx, "List keys of [%s]: %v", section, err)
		return nil
	}
	defer cfg.Close()
	return cfg.Keys(section)
}
