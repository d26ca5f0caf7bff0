package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ssapio/inferencegate-web/internal/shared/errors"
)

// Store serves fixed binary assets from a local directory. Asset names are
// chosen by the server per endpoint, never by the caller, so there is no
// path-injection surface here.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Read returns the content of the named asset. A failed read is an operator
// problem (missing file, bad permissions), surfaced as an ASSET_ERROR.
func (s *Store) Read(name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewAssetError(fmt.Sprintf("cannot read asset %q", name), err)
	}
	return data, nil
}
