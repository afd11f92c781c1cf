package inifile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/assert"
)

func TestParse(t *testing.T) {
	for _, test := range tests {
		got, err := Parse(test.Bytes())
		assert.NoError(t, err)
		if diff := cmp.Diff(test.Entries, got); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", test.Bytes(), diff)
		}
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, test := range tests {
		if test.Lossy {
			continue
		}
		var buf bytes.Buffer
		assert.NoError(t, Format(&buf, test.Entries))

		got, err := Parse(buf.Bytes())
		assert.NoError(t, err)
		if diff := cmp.Diff(test.Entries, got); diff != "" {
			t.Errorf("round trip of %q (-want +got):\n%s", buf.String(), diff)
		}
	}
}

func TestFormat_Canonical(t *testing.T) {
	for _, data := range canonical {
		data := strings.TrimSpace(undent(data)) + "\n"

		entries, err := Parse([]byte(data))
		assert.NoError(t, err)

		var buf bytes.Buffer
		assert.NoError(t, Format(&buf, entries))
		assert.Equal(t, buf.String(), data)
	}
}

func TestFormat_Layout(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Format(&buf, []Entry{
		def("top", "1"),
		sec("a"),
		def("k", "v"),
		def("longer", "w"),
		note(cont("more"), "c"),
		com("stray"),
		sec("b"),
		com(" block"),
		com(";; double"),
		sec("c"),
	}))
	assert.Equal(t, buf.String(), ""+
		"top = 1\n"+
		"[a]\n"+
		"k      = v\n"+
		"longer = w\n"+
		"  more\t;c\n"+
		";stray\n"+
		"\n"+
		"[b]\n"+
		"\n"+
		"; block\n"+
		";;; double\n"+
		"[c]\n")
}

func TestScanLines(t *testing.T) {
	scanner := newLineScanner([]byte("\n\none\r\ntwo \t\x1a\x1a\rthree"))
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	assert.NoError(t, scanner.Err())
	assert.DeepEqual(t, lines, []string{"one", "two \t", "three"})
}

//
// test cases
//

func sec(name string) Entry { return Entry{Kind: Section, Name: name} }
func def(key, value string) Entry { return Entry{Kind: Definition, Key: key, Value: value} }
func cont(value string) Entry { return Entry{Kind: Continuation, Value: value} }
func com(text string) Entry { return Entry{Kind: Comment, Comment: text, HasComment: true} }
func note(ent Entry, c string) Entry { ent.Comment, ent.HasComment = c, true; return ent }

type testCase struct {
	Data    string
	Entries []Entry
	Lossy   bool // formatting changes how the entries parse
}

// undent removes the \t\t prefix every line of the test data carries to
// make the definitions easier to read.
func undent(data string) string {
	lines := strings.Split(data, "\n")
	for i, v := range lines {
		lines[i] = strings.TrimPrefix(v, "\t\t")
	}
	return strings.Join(lines, "\n")
}

func (t testCase) Bytes() []byte { return []byte(undent(t.Data)) }

var tests = []testCase{
	{Data: ``},

	{Data: "\n\r\n\x1a\n   \n"},

	{Data: `
		foo = bar
	`, Entries: []Entry{
		def("foo", "bar"),
	}},

	{Data: `
		[table]
		foo = bar
		baz = bif
	`, Entries: []Entry{
		sec("table"),
		def("foo", "bar"),
		def("baz", "bif"),
	}},

	{Data: "[crlf]\r\nx=1\r\n\r\ny = 2 \t\r\n", Entries: []Entry{
		sec("crlf"),
		def("x", "1"),
		def("y", "2"),
	}},

	{Data: `
		; a comment
		;;block
		;
		foo = bar
	`, Entries: []Entry{
		com(" a comment"),
		com(";block"),
		com(""),
		def("foo", "bar"),
	}},

	{Data: `
		[  spaced name  ]   ; note
		[tail]junk
		[x] junk ; not a comment
	`, Entries: []Entry{
		note(sec("spaced name"), " note"),
		sec("tail"),
		sec("x"),
	}},

	{Data: `
		[broken
		[   ]
		no equals here
		[ok]
	`, Entries: []Entry{
		sec("ok"),
	}},

	{Data: `
		key = value ; trailing
		key = value;not a comment
		key = ;only comment
		key = "a ; b" ; c
		key = 'it"s ; x'
		key = "open ; x
	`, Entries: []Entry{
		note(def("key", "value"), " trailing"),
		def("key", "value;not a comment"),
		note(def("key", ""), "only comment"),
		note(def("key", `"a ; b"`), " c"),
		def("key", `'it"s ; x'`),
		def("key", `"open ; x`),
	}},

	{Data: `
		foo = bar
			more ; note
		  and more
		  ; indented comment
	`, Entries: []Entry{
		def("foo", "bar"),
		note(cont("more"), " note"),
		cont("and more"),
		com(" indented comment"),
	}},

	{Data: `
		foo  =  bar
		a=b=c
	`, Entries: []Entry{
		def("foo", "bar"),
		def("a", "b=c"),
	}},

	{Data: `
		key =;x
	`, Entries: []Entry{
		def("key", ";x"),
	}, Lossy: true},

	{Data: `
		= value
	`, Entries: []Entry{
		def("", "value"),
	}, Lossy: true},
}

var canonical = []string{`
		; global note
		[section1]
		entry1 = abc
		entry2 = 123 0X12AC	;hex

		;; next block
		[section2]
		a      = 1
		;b = 2
		longer = 2
	`, `
		top = 1
		[paths]
		list = one
		  two	;second
		  three
		;stray

		[empty]

		[last]
		x = y
		; trailer
	`, `
		[a]
		x = 1

		;
		; about b
		;
		[b]
		y = 2
	`,
}
