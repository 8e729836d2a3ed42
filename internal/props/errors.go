package props

import (
	"errors"
	"fmt"
)

var (
	ErrPathNotFound        = errors.New("config path not found")
	ErrUnreadableFile      = errors.New("config file unreadable")
	ErrUnresolvedReference = errors.New("unresolved default config reference")
)

// PathNotFoundError reports a config file that does not exist or is not a
// regular file.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrPathNotFound, e.Path)
}

func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// UnreadableFileError reports an I/O failure on a config file that exists.
type UnreadableFileError struct {
	Path string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("failed to read config file %s: %v", e.Path, e.Err)
}

func (e *UnreadableFileError) Is(target error) bool {
	return target == ErrUnreadableFile
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}

// UnresolvedReferenceError reports a default config reference that the file
// resolver could not locate.
type UnresolvedReferenceError struct {
	Reference string
	File      string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%v %q in %s", ErrUnresolvedReference, e.Reference, e.File)
}

func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

// readError classifies an I/O failure on path. A file that is confirmed to
// exist is unreadable; anything else is reported as not found.
func readError(path string, err error) error {
	if isRegularFile(path) {
		return &UnreadableFileError{Path: path, Err: err}
	}
	return &PathNotFoundError{Path: path}
}
