// Package storage opens tour inputs and writes plot outputs by URL.
//
// Plain paths ("data/att48.tsp") and any scheme supported by afs
// ("file://", "mem://", "s3://", "gs://" with the matching connector
// imported) are accepted alike.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// outputMode is the permission of written files.
const outputMode os.FileMode = 0o644

var (
	// ErrOpen indicates an input could not be opened.
	ErrOpen = errors.New("storage: cannot open input")

	// ErrOutputDir indicates the output location's parent does not exist.
	// Output directories are never created implicitly.
	ErrOutputDir = errors.New("storage: output directory does not exist")

	// ErrWrite indicates an output could not be written.
	ErrWrite = errors.New("storage: cannot write output")
)

// Error carries the failing operation and URL. It matches both its Kind
// sentinel and the underlying cause with errors.Is.
type Error struct {
	Op   string
	URL  string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.URL, e.Kind, e.Err)
}

// Unwrap exposes both the sentinel and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Store reads and writes through an afs.Service.
type Store struct {
	fs afs.Service
}

// New returns a Store backed by the default afs service.
func New() *Store {
	return &Store{fs: afs.New()}
}

// NewWithService returns a Store backed by fs.
func NewWithService(fs afs.Service) *Store {
	return &Store{fs: fs}
}

// Open opens URL for reading. The caller closes the returned reader.
func (s *Store) Open(ctx context.Context, URL string) (io.ReadCloser, error) {
	rc, err := s.fs.OpenURL(ctx, absolute(URL))
	if err != nil {
		return nil, &Error{Op: "open", URL: URL, Kind: ErrOpen, Err: err}
	}
	return rc, nil
}

// Write stores the content of r at URL. The parent location must already
// exist, else ErrOutputDir.
func (s *Store) Write(ctx context.Context, URL string, r io.Reader) error {
	target := absolute(URL)
	parent, _ := url.Split(target, file.Scheme)
	ok, err := s.fs.Exists(ctx, parent)
	if err != nil {
		return &Error{Op: "write", URL: URL, Kind: ErrWrite, Err: err}
	}
	if !ok {
		return &Error{Op: "write", URL: URL, Kind: ErrOutputDir}
	}

	if err = s.fs.Upload(ctx, target, outputMode, r); err != nil {
		return &Error{Op: "write", URL: URL, Kind: ErrWrite, Err: err}
	}
	return nil
}

// Exists reports whether URL exists.
func (s *Store) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, absolute(URL))
}

// absolute anchors a plain relative path at the working directory. afs
// roots schemeless paths at "/", so "plot/a.png" would otherwise name
// "/plot/a.png". URLs with a scheme are returned unchanged.
func absolute(URL string) string {
	if URL == "" || strings.Contains(URL, "://") || filepath.IsAbs(URL) {
		return URL
	}
	abs, err := filepath.Abs(URL)
	if err != nil {
		return URL
	}
	return abs
}
