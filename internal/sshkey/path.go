package sshkey

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/afero"

	"github.com/quantmind-br/adc/internal/domain"
)

// DirName is the SSH directory relative to the home directory
const DirName = ".ssh"

// Dir returns the SSH directory for the given home directory
func Dir(home string) string {
	return home + "/" + DirName
}

// Path builds the key path as <home>/.ssh/<keyName>.
// keyName is used verbatim; it is not cleaned or checked for traversal.
func Path(home, keyName string) string {
	return Dir(home) + "/" + keyName
}

// EscapesDir reports whether keyName would resolve outside the SSH directory
func EscapesDir(keyName string) bool {
	if strings.ContainsAny(keyName, `/\`) {
		return true
	}
	return keyName == ".." || keyName == "."
}

// Resolver checks key paths against a filesystem
type Resolver struct {
	fs afero.Fs
}

// NewResolver creates a Resolver. A nil fs uses the OS filesystem.
func NewResolver(fsys afero.Fs) *Resolver {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Resolver{fs: fsys}
}

// Resolve returns the key path for keyName under home, or an error if the
// home directory is empty or nothing exists at the path.
func (r *Resolver) Resolve(home, keyName string) (string, error) {
	if home == "" {
		return "", domain.NewEnvironmentError(nil)
	}

	path := Path(home, keyName)

	if _, err := r.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.NewKeyNotFoundError(keyName, path, fs.ErrNotExist)
		}
		return "", domain.NewKeyNotFoundError(keyName, path, err)
	}

	return path, nil
}

// Exists reports whether the SSH directory exists for home
func (r *Resolver) Exists(home string) bool {
	ok, err := afero.DirExists(r.fs, Dir(home))
	return err == nil && ok
}
