//go:build js && wasm

package browser

import (
	"context"
	"errors"
	"syscall/js"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsEval builds a value from a JavaScript function body.
func jsEval(body string) js.Value {
	return js.Global().Get("Function").New(body).Invoke()
}

func storageOver(area js.Value) *LocalStorage {
	return &LocalStorage{area: func() js.Value { return area }}
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := storageOver(jsEval(`
		const m = new Map();
		return {
			getItem: (k) => (m.has(k) ? m.get(k) : null),
			setItem: (k, v) => { m.set(k, String(v)); },
			removeItem: (k) => { m.delete(k); },
		};`))

	_, ok, err := s.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem(ctx, "theme", "dark"))
	v, ok, err := s.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.RemoveItem(ctx, "theme"))
	_, ok, err = s.GetItem(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStorage_ExceptionsBecomeErrors(t *testing.T) {
	ctx := context.Background()
	s := storageOver(jsEval(`
		const fail = (name) => () => { const e = new Error(name + " thrown"); e.name = name; throw e; };
		return {
			getItem: fail("SecurityError"),
			setItem: fail("QuotaExceededError"),
			removeItem: fail("SecurityError"),
		};`))

	err := s.SetItem(ctx, "ong_voluntarios_v1", "[]")
	require.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "QuotaExceededError")
	var jsErr js.Error
	assert.True(t, errors.As(err, &jsErr))

	_, _, err = s.GetItem(ctx, "theme")
	assert.ErrorIs(t, err, ErrStorage)

	assert.ErrorIs(t, s.RemoveItem(ctx, "theme"), ErrStorage)
}

func TestLocalStorage_BlockedOrMissing(t *testing.T) {
	ctx := context.Background()

	holder := jsEval(`return { get localStorage() { throw new Error("storage blocked"); } };`)
	blocked := &LocalStorage{area: func() js.Value { return holder.Get("localStorage") }}
	_, _, err := blocked.GetItem(ctx, "theme")
	require.ErrorIs(t, err, ErrStorage)
	assert.Contains(t, err.Error(), "storage blocked")

	missing := storageOver(js.Undefined())
	assert.ErrorIs(t, missing.SetItem(ctx, "theme", "dark"), ErrStorage)
}

func TestAfterFunc_CancelReleasesOnce(t *testing.T) {
	d := New()

	fired := make(chan struct{})
	cancel := d.AfterFunc(time.Millisecond, func() { close(fired) })
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not run")
	}
	assert.NotPanics(t, cancel, "cancelling after the callback ran")

	ran := false
	cancel = d.AfterFunc(time.Hour, func() { ran = true })
	assert.NotPanics(t, cancel)
	assert.NotPanics(t, cancel, "cancelling twice")
	assert.False(t, ran)
}
