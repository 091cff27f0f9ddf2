package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/esperanca/internal/dom/headless"
	"github.com/nfrund/esperanca/internal/domain"
	"github.com/nfrund/esperanca/internal/form"
	"github.com/nfrund/esperanca/internal/testutils"
)

// run executes the CLI with args against a private storage directory.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	testutils.ConfigForTests(t)
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--storage-dir", dir}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "esperanca-cli v"+version+"\n", out)
}

func TestCPFCheck(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, err := run(t, t.TempDir(), "cpf", "check", "52998224725")
		require.NoError(t, err)
		assert.Equal(t, "529.982.247-25\tvalid\n", out)
	})

	t.Run("invalid among valid", func(t *testing.T) {
		out, err := run(t, t.TempDir(), "cpf", "check", "529.982.247-25", "111.111.111-11", "123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 of 3")
		assert.Equal(t, "529.982.247-25\tvalid\n111.111.111-11\tinvalid\n123\tinvalid\n", out)
	})

	t.Run("requires an argument", func(t *testing.T) {
		_, err := run(t, t.TempDir(), "cpf", "check")
		assert.Error(t, err)
	})
}

func TestMask(t *testing.T) {
	out, err := run(t, t.TempDir(), "mask", "cpf", "5299822")
	require.NoError(t, err)
	assert.Equal(t, "529.982.2\n", out)

	out, err = run(t, t.TempDir(), "mask", "phone", "11987654321")
	require.NoError(t, err)
	assert.Equal(t, "(11) 98765-4321\n", out)
}

func TestPages(t *testing.T) {
	out, err := run(t, t.TempDir(), "pages", "list")
	require.NoError(t, err)
	assert.Equal(t, "home\nregister\ndonate\n", out)

	out, err = run(t, t.TempDir(), "pages", "render", "register")
	require.NoError(t, err)
	assert.Contains(t, out, `class="volunteer-form"`)

	out, err = run(t, t.TempDir(), "pages", "render", "shell", "--wasm", "")
	require.NoError(t, err)
	assert.Contains(t, out, `id="app-container"`)
	assert.NotContains(t, out, "wasm_exec.js")

	_, err = run(t, t.TempDir(), "pages", "render", "sobre")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNavigate(t *testing.T) {
	out, err := run(t, t.TempDir(), "navigate", "donate")
	require.NoError(t, err)
	assert.Contains(t, out, "<h")
	assert.NotContains(t, out, "dynamic-gallery")

	out, err = run(t, t.TempDir(), "navigate", "sobre", "--summary")
	require.NoError(t, err)
	assert.Equal(t, "page: home\nscrolled: #sobre\n", out)

	// Unknown anchors leave the page where the initial load put it.
	out, err = run(t, t.TempDir(), "navigate", "nowhere", "--summary")
	require.NoError(t, err)
	assert.Equal(t, "page: home\nscrolled: "+headless.ScrollTop+"\n", out)
}

func validRegistration() []string {
	return []string{
		"volunteers", "register",
		"--name", "Maria da Silva",
		"--cpf", "52998224725",
		"--email", "maria@example.com",
		"--phone", "11987654321",
		"--birthdate", "1990-05-10",
		"--address", "Rua das Flores, 100",
		"--cep", "01310-100",
		"--city", "São Paulo",
		"--updates", "sim",
	}
}

func TestVolunteers_RegisterAndList(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "volunteers", "list")
	require.NoError(t, err)
	assert.Equal(t, "SAVED AT  NAME  EMAIL  CITY\n", out)

	out, err = run(t, dir, validRegistration()...)
	require.NoError(t, err)
	assert.Equal(t, form.MsgRegistered+"\n", out)
	assert.FileExists(t, filepath.Join(dir, domain.VolunteersKey+".json"))

	out, err = run(t, dir, "volunteers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Maria da Silva")
	assert.Contains(t, out, "maria@example.com")

	out, err = run(t, dir, "volunteers", "list", "--json")
	require.NoError(t, err)
	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "529.982.247-25", records[0]["cpf"])
	assert.Equal(t, "(11) 98765-4321", records[0]["phone"])
	assert.Equal(t, "sim", records[0]["updates"])
	assert.NotEmpty(t, records[0][domain.SavedAtField])
}

func TestVolunteers_RegisterRejected(t *testing.T) {
	dir := t.TempDir()
	args := validRegistration()
	args[3] = "Al"

	out, err := run(t, dir, args...)
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "name: "+form.MsgNameTooShort+"\n", out)
	assert.NoFileExists(t, filepath.Join(dir, domain.VolunteersKey+".json"))
}

func TestVolunteers_RegisterReportsFieldsInRuleOrder(t *testing.T) {
	args := validRegistration()
	args[3] = "Al"
	args[15] = "123"

	out, err := run(t, t.TempDir(), args...)
	assert.ErrorIs(t, err, errRejected)
	assert.Equal(t, "name: "+form.MsgNameTooShort+"\ncep: "+form.MsgInvalidCEP+"\n", out)
}

func TestVolunteers_RegisterBadUpdates(t *testing.T) {
	args := append(validRegistration()[:len(validRegistration())-2], "--updates", "talvez")
	_, err := run(t, t.TempDir(), args...)
	assert.Error(t, err)
}

// syncBuffer lets the test read output while the command is still writing.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestVolunteers_Watch(t *testing.T) {
	dir := t.TempDir()
	testutils.ConfigForTests(t)
	out := &syncBuffer{}
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--storage-dir", dir, "volunteers", "watch"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "0 volunteers")
	}, 5*time.Second, 10*time.Millisecond)

	record := `[{"name":"Maria","savedAt":"2025-06-01T10:00:00.000Z"}]`
	path := filepath.Join(dir, domain.VolunteersKey+".json")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(record), 0o644)
		return strings.Contains(out.String(), "1 volunteers")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
