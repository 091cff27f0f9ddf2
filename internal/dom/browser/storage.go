//go:build js && wasm

package browser

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

// ErrStorage wraps exceptions thrown by the browser's storage, such as
// QuotaExceededError on a full store or SecurityError when storage is blocked.
var ErrStorage = errors.New("browser storage failed")

// LocalStorage adapts window.localStorage to storage.KeyValue. The storage
// object is looked up on every call, since reading it can itself throw.
type LocalStorage struct {
	area func() js.Value
}

// NewLocalStorage returns the page's localStorage.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{area: func() js.Value { return js.Global().Get("localStorage") }}
}

// call invokes method on the storage object, turning a thrown exception into
// an error instead of a panic.
func (s *LocalStorage) call(method string, args ...any) (v js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%w: %s: %w", ErrStorage, method, cause)
		}
	}()

	area := s.area()
	if area.IsUndefined() || area.IsNull() {
		return js.Undefined(), fmt.Errorf("%w: %s: localStorage unavailable", ErrStorage, method)
	}
	return area.Call(method, args...), nil
}

// GetItem returns the stored value and whether the key exists.
func (s *LocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	v, err := s.call("getItem", key)
	if err != nil {
		return "", false, err
	}
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// SetItem stores value under key.
func (s *LocalStorage) SetItem(ctx context.Context, key, value string) error {
	_, err := s.call("setItem", key, value)
	return err
}

// RemoveItem deletes key.
func (s *LocalStorage) RemoveItem(ctx context.Context, key string) error {
	_, err := s.call("removeItem", key)
	return err
}
