package playlist

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/boomboxfm/boombox/internal/shared"
)

// Store persists playlists as <name>.txt files inside a single directory.
//
// Names map to files verbatim; the store never renames or escapes them.
// Save overwrites without prompting, matching the create flow where a new
// playlist silently replaces an old one of the same name.
type Store struct {
	dir string
}

// NewStore creates a [Store] rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create playlist directory: %v", shared.ErrPlaylistIO, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for the named playlist.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

// Exists reports whether the named playlist file is present.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load reads and decodes the named playlist.
func (s *Store) Load(name string) ([]Entry, error) {
	data, err := os.ReadFile(s.Path(name))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read playlist %s: %v", shared.ErrPlaylistIO, name, err)
	}

	return Decode(bytes.NewReader(data))
}

// Save encodes entries and writes them to the named playlist file,
// overwriting any existing file.
func (s *Store) Save(name string, entries []Entry) error {
	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return err
	}

	if err := os.WriteFile(s.Path(name), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: failed to write playlist %s: %v", shared.ErrPlaylistIO, name, err)
	}

	return nil
}

// Delete removes the named playlist file.
//
// Returns false, with no error, when the file does not exist.
func (s *Store) Delete(name string) (bool, error) {
	err := os.Remove(s.Path(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: failed to delete playlist %s: %v", shared.ErrPlaylistIO, name, err)
	}

	return true, nil
}

// List returns the names of all playlists in the store, without the .txt
// extension, in directory order.
func (s *Store) List() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read playlist directory: %v", shared.ErrPlaylistIO, err)
	}

	names := []string{}
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}

		name := dirEntry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}

		names = append(names, strings.TrimSuffix(name, ".txt"))
	}

	return names, nil
}
