package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// FileStore keeps the state in a YAML file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the file. A missing file yields the default state without error.
// Groups that fail to decode are replaced by their defaults and reported in
// the returned error alongside the rest of the state.
func (f *FileStore) Load() (_ State, err error) {
	s := Default()

	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, Error.Wrap(err)
	}

	return decode(data)
}

func decode(data []byte) (State, error) {
	s := Default()

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return s, Error.Wrap(err)
	}

	var group errs.Group

	if node, ok := doc["calculator"]; ok {
		c := s.Calculator
		if err := node.Decode(&c); err != nil {
			group.Add(Error.New("calculator: %v", err))
		} else {
			s.Calculator = c
		}
	}

	if node, ok := doc["word"]; ok {
		w := s.Word
		if err := node.Decode(&w); err != nil {
			group.Add(Error.New("word: %v", err))
		} else {
			s.Word = w
		}
	}

	if node, ok := doc["conversion"]; ok {
		c := s.Conversion
		if err := node.Decode(&c); err != nil {
			group.Add(Error.New("conversion: %v", err))
		} else {
			s.Conversion = c
		}
	}

	return s, group.Err()
}

// Save writes the state, creating the parent directory if needed.
func (f *FileStore) Save(s State) (err error) {
	defer Error.WrapP(&err)

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(f.Path), 0o755)
	if err != nil {
		return err
	}

	return os.WriteFile(f.Path, data, 0o644)
}

// MemoryStore keeps the state in memory.
type MemoryStore struct {
	State *State
	Err   error
}

// Load returns the saved state, the default state if nothing was saved, or
// Err when set.
func (ms *MemoryStore) Load() (State, error) {
	if ms.Err != nil {
		return Default(), ms.Err
	}
	if ms.State == nil {
		return Default(), nil
	}

	return *ms.State, nil
}

// Save keeps a copy of s.
func (ms *MemoryStore) Save(s State) error {
	ms.State = &s

	return nil
}
