// Package fsstore writes rendered pages to <dir>/<id>.html.
package fsstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"villa_rooms/internal/domain"
)

const (
	pageExt  = ".html"
	pagePerm = 0o644
)

var errBadID = errors.New("room id is not a single path segment")

type Store struct {
	dir   string
	mkdir bool
}

type Option func(*Store)

// WithMkdir creates the output directory on first write instead of failing.
func WithMkdir() Option { return func(s *Store) { s.mkdir = true } }

func New(dir string, opts ...Option) *Store {
	s := &Store{dir: dir}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Path is the file a room id is written to: dir, id and extension joined
// without cleaning, so "./rooms" yields "./rooms/<id>.html".
func (s *Store) Path(id string) string {
	dir := s.dir
	if dir == "" {
		dir = "."
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return dir + id + pageExt
}

// Put replaces the page for id. The write goes through a temp file renamed
// into place, so an interrupted run never leaves a truncated page behind.
func (s *Store) Put(id string, page []byte) (string, error) {
	path := s.Path(id)
	if !validID(id) {
		return path, &domain.WriteError{Path: path, Err: errBadID}
	}
	if s.mkdir {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return path, &domain.WriteError{Path: path, Err: err}
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(page)); err != nil {
		return path, &domain.WriteError{Path: path, Err: err}
	}
	// temp files are created 0600
	if err := os.Chmod(path, pagePerm); err != nil {
		return path, &domain.WriteError{Path: path, Err: err}
	}
	return path, nil
}

func validID(id string) bool {
	if id == "" || id == "." || id == ".." {
		return false
	}
	return !strings.ContainsAny(id, `/\`+"\x00")
}
