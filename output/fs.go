package output

import (
	"io"
	"os"
	"path/filepath"
)

// CreateFS is a file system that supports creating files for writing.
type CreateFS interface {
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
}

// Dir creates files relative to a host directory.
type Dir string

// Create creates a file in the directory. Absolute names are used as is.
func (dir Dir) Create(name string) (file io.WriteCloser, err error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(string(dir), name)
	}
	return os.Create(name)
}
