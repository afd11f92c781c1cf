package inifile

import "github.com/zeebo/errs/v2"

// Errors returned by a Config. Test for them with errors.Is.
const (
	// ErrNotFound is returned when a section or key is absent.
	ErrNotFound = errs.Tag("not found")

	// ErrNoFile is returned by Open when the file does not exist and was
	// not to be created.
	ErrNoFile = errs.Tag("no such file")

	// ErrIO wraps failures to stat, read or write the backing file.
	ErrIO = errs.Tag("io")

	// ErrInvalid is returned when a required argument is missing.
	ErrInvalid = errs.Tag("invalid argument")

	// ErrClosed is returned by any operation on a closed Config.
	ErrClosed = errs.Tag("config closed")
)
