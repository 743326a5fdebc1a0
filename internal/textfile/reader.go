package textfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Reasons reported in ReadError.
const (
	ReasonNotExist     = "The file does not exist."
	ReasonPathTooLong  = "The specified path, file name, or both exceed the system-defined maximum length."
	ReasonInvalidPath  = "The specified path is invalid."
	ReasonIO           = "An I/O error occurred while opening the file."
	ReasonInvalidChars = "The specified path is empty, contains only white spaces, or contains invalid characters."
)

// ReadError explains why a file could not be read.
type ReadError struct {
	Reason string
	Err    error
}

func (e *ReadError) Error() string {
	return e.Reason
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Reader loads the full text of a file.
type Reader interface {
	ReadTextFile(path string) (string, error)
}

type osReader struct{}

// NewReader returns a Reader backed by the local filesystem.
func NewReader() Reader {
	return osReader{}
}

// ReadTextFile returns the whole content of path. Any failure is a *ReadError.
func (osReader) ReadTextFile(path string) (string, error) {
	return ReadTextFile(path)
}

// ReadTextFile returns the whole content of path. Any failure is a *ReadError.
func ReadTextFile(path string) (string, error) {
	if strings.TrimSpace(path) == "" || strings.ContainsRune(path, 0) {
		return "", &ReadError{Reason: ReasonInvalidChars}
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", classify(err)
	}
	if info.IsDir() {
		return "", &ReadError{Reason: ReasonNotExist, Err: fmt.Errorf("%s is a directory", path)}
	}

	in, err := os.Open(path)
	if err != nil {
		return "", classify(err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return "", classify(err)
	}
	return string(data), nil
}

func classify(err error) *ReadError {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ReadError{Reason: ReasonNotExist, Err: err}
	case errors.Is(err, unix.ENAMETOOLONG):
		return &ReadError{Reason: ReasonPathTooLong, Err: err}
	case errors.Is(err, unix.ENOTDIR):
		return &ReadError{Reason: ReasonInvalidPath, Err: err}
	case errors.Is(err, unix.EINVAL):
		return &ReadError{Reason: ReasonInvalidChars, Err: err}
	case errors.As(err, &pathErr):
		return &ReadError{Reason: ReasonIO, Err: err}
	default:
		return &ReadError{Reason: fmt.Sprintf("An unexpected error occurred: %s", err), Err: err}
	}
}
