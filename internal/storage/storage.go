package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	"github.com/nfrund/esperanca/internal/domain"
)

// keyRules keeps keys usable as file names without escaping the store directory.
const keyRules = `required,max=128,printascii,excludesall=/\.`

var keyValidator = validator.New()

// AferoStore keeps each key in its own JSON file under dir.
type AferoStore struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

var (
	_ KeyValue = (*AferoStore)(nil)
	_ Updater  = (*AferoStore)(nil)
)

// NewAferoStore creates a new AferoStore rooted at dir.
func NewAferoStore(fs afero.Fs, dir string) *AferoStore {
	return &AferoStore{fs: fs, dir: dir}
}

// Path returns the file that backs key.
func (s *AferoStore) Path(key string) (string, error) {
	if err := keyValidator.Var(key, keyRules); err != nil {
		return "", fmt.Errorf("%w %q: %v", domain.ErrInvalidKey, key, err)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// GetItem implements KeyValue.
func (s *AferoStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key)
}

// SetItem implements KeyValue.
func (s *AferoStore) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(key, value)
}

// RemoveItem implements KeyValue. Removing a missing key is not an error.
func (s *AferoStore) RemoveItem(ctx context.Context, key string) error {
	path, err := s.Path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

// Update implements Updater.
func (s *AferoStore) Update(ctx context.Context, key string, fn func(string, bool) (string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists, err := s.get(key)
	if err != nil {
		return err
	}
	next, err := fn(current, exists)
	if err != nil {
		return err
	}
	return s.set(key, next)
}

func (s *AferoStore) get(key string) (string, bool, error) {
	path, err := s.Path(key)
	if err != nil {
		return "", false, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}
	return string(data), true, nil
}

// set writes through a temporary file so readers never see a partial value.
func (s *AferoStore) set(key, value string) error {
	path, err := s.Path(key)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %q: %w", key, err)
	}
	return nil
}
