package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeebo/assert"
	"gopkg.in/yaml.v3"
	"zombiezen.com/go/log/testlog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(testlog.WithTB(context.Background(), t))
	return out.String(), err
}

func TestDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	out, err := run(t, "demo", "-f", path)
	assert.NoError(t, err)
	assert.Equal(t, out, `section1:entry1 -- abc
section1:entry2 -- 123 0X12AC
section1:entry3 -- 2017
scanned section1:entry3 -- 2017
updated section1:entry3 -- 201702
section2:entry1 -- test
`)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, string(data), `[section1]
entry2 = 123 0X12AC
entry3 = 2017
entry4 = 256 300
`)
}

func TestSetGetRm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	_, err := run(t, "set", "-f", path, "server", "host", "example.com")
	assert.NoError(t, err)
	_, err = run(t, "set", "-f", path, "server", "port", "8080 ; http")
	assert.NoError(t, err)
	_, err = run(t, "set", "-f", path, "client", "retries", "3")
	assert.NoError(t, err)

	out, err := run(t, "get", "-f", path, "SERVER", "Host")
	assert.NoError(t, err)
	assert.Equal(t, out, "example.com\n")

	out, err = run(t, "getint", "-f", path, "server", "port")
	assert.NoError(t, err)
	assert.Equal(t, out, "8080\n")

	out, err = run(t, "getint", "-f", path, "server", "missing", "-d", "7")
	assert.NoError(t, err)
	assert.Equal(t, out, "7\n")

	_, err = run(t, "get", "-f", path, "server", "missing")
	assert.Error(t, err)

	out, err = run(t, "sections", "-f", path)
	assert.NoError(t, err)
	assert.Equal(t, out, "server\nclient\n")

	out, err = run(t, "keys", "-f", path, "server")
	assert.NoError(t, err)
	assert.Equal(t, out, "host\nport\n")

	_, err = run(t, "rm", "-f", path, "server", "port")
	assert.NoError(t, err)
	_, err = run(t, "rm", "-f", path, "client")
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, string(data), "[server]\nhost = example.com\n")
}

func TestGet_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ini")

	_, err := run(t, "get", "-f", path, "--create=false", "a", "b")
	assert.Error(t, err)

	_, err = os.Stat(path)
	assert.That(t, os.IsNotExist(err))
}

const messy = "; servers\r\n[server]\r\nhost=example.com\r\nmax_connections = 10 ; per worker\r\n  more\r\n[client]\r\nretries=3\r\n"

func TestDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	assert.NoError(t, os.WriteFile(path, []byte(messy), 0644))

	out, err := run(t, "dump", "-f", path, "--yaml=false")
	assert.NoError(t, err)
	assert.Equal(t, out, "; servers\n[server]\nhost            = example.com\nmax_connections = 10\t; per worker\n  more\n\n[client]\nretries = 3\n")

	out, err = run(t, "dump", "-f", path, "--yaml")
	assert.NoError(t, err)

	var got map[string]map[string]string
	assert.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.DeepEqual(t, got, map[string]map[string]string{
		"server": {"host": "example.com", "max_connections": "10\nmore"},
		"client": {"retries": "3"},
	})
}

func TestFmt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	assert.NoError(t, os.WriteFile(path, []byte(messy), 0644))

	out, err := run(t, "fmt", "-f", path, "-w=false")
	assert.NoError(t, err)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, string(data), messy)

	_, err = run(t, "fmt", "-f", path, "-w")
	assert.NoError(t, err)

	data, err = os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, string(data), out)
}
