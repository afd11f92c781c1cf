package inifile

import (
	"fmt"
	"strconv"

	"github.com/zeebo/errs/v2"
)

// MaxLineLength bounds the values produced by Setf. Longer results are
// truncated to MaxLineLength-1 bytes.
const MaxLineLength = 1024

// String returns the value of key in section.
func (c *Config) String(section, key string) (string, error) {
	if key == "" {
		return "", ErrInvalid.Errorf("empty key")
	}
	ent, err := c.Find(section, key)
	if err != nil {
		return "", err
	}
	return ent.Value, nil
}

// Int returns the value of key in section converted like C atoi: leading
// space and a sign are accepted, conversion stops at the first non digit,
// and a value without digits yields 0.
func (c *Config) Int(section, key string) (int, error) {
	v, err := c.String(section, key)
	if err != nil {
		return 0, err
	}
	return Atoi(v), nil
}

// Scan parses the value of key in section with fmt.Sscanf. It succeeds if
// at least one argument was filled.
//
// The verbs are Go's, not C's: %x and %X do not accept a 0x or 0X prefix
// and read such a value as 0 without an error. Use %v for integers written
// by Setf with %#x or %#X.
func (c *Config) Scan(section, key, format string, args ...interface{}) error {
	v, err := c.String(section, key)
	if err != nil {
		return err
	}
	n, err := fmt.Sscanf(v, format, args...)
	if n > 0 {
		return nil
	}
	if err == nil {
		err = errs.Errorf("no values")
	}
	return errs.Errorf("scan [%s] %s = %q: %v", section, key, v, err)
}

// Setf sets key in section to the result of fmt.Sprintf.
func (c *Config) Setf(section, key, format string, args ...interface{}) error {
	v := fmt.Sprintf(format, args...)
	if len(v) >= MaxLineLength {
		v = v[:MaxLineLength-1]
	}
	return c.Set(section, key, v)
}

// Atoi converts the leading integer of s, ignoring anything after it. It
// returns 0 when s does not start with an integer and saturates on
// overflow.
func Atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	k := j
	for k < len(s) && '0' <= s[k] && s[k] <= '9' {
		k++
	}
	if k == j {
		return 0
	}
	n, _ := strconv.ParseInt(s[i:k], 10, 0) // saturated on range errors
	return int(n)
}
