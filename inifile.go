// Package inifile manages INI style configuration files in memory
//
// A file is loaded into an ordered list of entries, edited in place, and
// written back with its sections, comments and key alignment preserved.
//
// Entries:
//
// 0. an entry is one of four kinds
//    a. a section, holding a name
//    b. a definition, holding a key and a value
//    c. a continuation, holding only a value
//    d. a comment, holding only comment text
//
// 1. any kind may carry a trailing comment
//
// 2. a definition or continuation belongs to the nearest preceding section
//
// Parser semantics:
//
// 0. the byte stream is broken up into lines
//    a. lines are split by any of '\n', '\r' or '\x1a'
//    b. runs of separators collapse, so blank lines vanish
//    c. trailing ' ', '\t' and '\f' are trimmed from every line
//
// 1. a line whose first non blank character is '[' is a section
//    a. the name runs up to the first ']' and is space trimmed
//    b. the line is dropped if there is no ']' or the name is empty
//    c. a ';' after the ']' starts a trailing comment
//
// 2. a line whose first non blank character is ';' is a comment
//
// 3. a line starting with a blank is a continuation holding only a value
//
// 4. any other line containing "=" is a definition
//    a. the key is the right trimmed portion before the first "="
//    b. the value is the left trimmed portion after the first "="
//    c. lines without "=" are dropped
//
// 5. values of definitions and continuations are scanned for comments
//    a. a ' or " opens a quoted run closed by the same character
//    b. outside quotes, a ';' preceded by a blank starts a trailing comment
//    c. a value ended by a comment is right trimmed
//
// Malformed lines never fail a parse. They are left out of the entries.
package inifile

import "strings"

// Parse returns the entries of an INI image in file order.
func Parse(data []byte) ([]Entry, error) {
	var s store
	if err := parse(&s, data); err != nil {
		return nil, err
	}
	return s.entries, nil
}

func parse(s *store, data []byte) error {
	scanner := newLineScanner(data)
	for scanner.Scan() {
		line := trimWhiteRight(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if ent, ok := parseLine(string(line)); ok {
			s.append(ent)
		}
	}
	return scanner.Err()
}

// parseLine classifies a single non empty, right trimmed line.
func parseLine(line string) (ent Entry, ok bool) {
	cont := isWhite(line[0])
	lp := skipWhite(line)

	switch lp[0] {
	case '[':
		name := skipWhite(lp[1:])
		end := strings.IndexByte(name, ']')
		if end < 0 {
			return Entry{}, false
		}
		rest := skipWhite(name[end+1:])
		name = trimSpaceRight(name[:end])
		if name == "" {
			return Entry{}, false
		}
		ent = Entry{Kind: Section, Name: name}
		if len(rest) > 0 && rest[0] == ';' {
			ent.Comment, ent.HasComment = rest[1:], true
		}
		return ent, true

	case ';':
		return Entry{Kind: Comment, Comment: lp[1:], HasComment: true}, true
	}

	if cont {
		ent = Entry{Kind: Continuation}
		ent.Value, ent.Comment, ent.HasComment = splitValue(lp, true)
		return ent, true
	}

	eq := strings.IndexByte(lp, '=')
	if eq < 0 {
		return Entry{}, false
	}
	rest := lp[eq+1:]
	value := skipWhite(rest)

	ent = Entry{Kind: Definition, Key: trimSpaceRight(lp[:eq])}
	ent.Value, ent.Comment, ent.HasComment = splitValue(value, len(value) < len(rest))
	return ent, true
}

// splitValue separates a trailing comment from v. afterBlank tells whether
// the byte preceding v in the line was a blank.
func splitValue(v string, afterBlank bool) (value, comment string, ok bool) {
	var quote byte
	for i := 0; i < len(v); i++ {
		switch c := v[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == ';':
			blank := afterBlank
			if i > 0 {
				blank = isWhite(v[i-1])
			}
			if blank {
				return trimSpaceRight(v[:i]), v[i+1:], true
			}
		}
	}
	return v, "", false
}
