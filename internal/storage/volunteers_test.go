package storage

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/esperanca/internal/domain"
)

// mapStore is a KeyValue without Update, exercising the get-then-set path.
type mapStore map[string]string

func (m mapStore) GetItem(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStore) SetItem(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m mapStore) RemoveItem(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func record(name string, at time.Time) domain.VolunteerRecord {
	return domain.NewVolunteerRecord(map[string]string{"name": name, "email": name + "@example.org"}, at)
}

func TestVolunteerList_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)

	for name, kv := range map[string]KeyValue{
		"afero": NewAferoStore(afero.NewMemMapFs(), "data"),
		"plain": mapStore{},
	} {
		t.Run(name, func(t *testing.T) {
			list := NewVolunteerList(kv, nil)

			empty, err := list.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)
			assert.NotNil(t, empty)

			want := []domain.VolunteerRecord{
				record("ana", at),
				record("bruno", at.Add(time.Minute)),
				record("carla", at.Add(2*time.Minute)),
			}
			for _, r := range want {
				require.NoError(t, list.Append(ctx, r))
			}

			got, err := list.List(ctx)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("List() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVolunteerList_PersistedShape(t *testing.T) {
	ctx := context.Background()
	kv := mapStore{}
	list := NewVolunteerList(kv, nil)

	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, list.Append(ctx, record("ana", at)))

	var raw []map[string]string
	require.NoError(t, json.Unmarshal([]byte(kv[domain.VolunteersKey]), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, map[string]string{
		"name":    "ana",
		"email":   "ana@example.org",
		"savedAt": "2025-03-01T12:30:00.000Z",
	}, raw[0])
}

func TestVolunteerList_CorruptValue(t *testing.T) {
	ctx := context.Background()
	kv := mapStore{domain.VolunteersKey: "{not json"}
	list := NewVolunteerList(kv, nil)

	got, err := list.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, list.Append(ctx, record("ana", at)))

	got, err = list.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ana", got[0].Fields["name"])
}

func TestVolunteerList_RejectsInvalidRecord(t *testing.T) {
	list := NewVolunteerList(mapStore{}, nil)
	err := list.Append(context.Background(), domain.VolunteerRecord{})
	assert.Error(t, err)
}

func TestVolunteerList_AppendKeepsRecordsWithOddTimestamps(t *testing.T) {
	ctx := context.Background()
	stored := `[{"name":"Ana","savedAt":"2025-03-01T10:00:00.000Z"},{"name":"Bia","savedAt":"2025-03-01"},{"name":"Duda","savedAt":"ontem"}]`

	for name, kv := range map[string]KeyValue{
		"afero": NewAferoStore(afero.NewMemMapFs(), "data"),
		"plain": mapStore{},
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.SetItem(ctx, domain.VolunteersKey, stored))
			list := NewVolunteerList(kv, nil)

			before, err := list.List(ctx)
			require.NoError(t, err)
			require.Len(t, before, 3)
			assert.Equal(t, "ontem", before[2].SavedAtText)

			at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
			require.NoError(t, list.Append(ctx, record("Caio", at)))

			after, err := list.List(ctx)
			require.NoError(t, err)
			names := make([]string, 0, len(after))
			for _, r := range after {
				names = append(names, r.Fields["name"])
			}
			assert.Equal(t, []string{"Ana", "Bia", "Duda", "Caio"}, names)

			raw, _, err := kv.GetItem(ctx, domain.VolunteersKey)
			require.NoError(t, err)
			var persisted []map[string]string
			require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
			assert.Equal(t, "2025-03-01", persisted[1]["savedAt"], "stored values are left as written")
			assert.Equal(t, "ontem", persisted[2]["savedAt"])
		})
	}
}

func TestVolunteerList_ForeignElementsSurviveAppend(t *testing.T) {
	ctx := context.Background()
	kv := mapStore{domain.VolunteersKey: `[{"name":"Ana","savedAt":"2025-03-01T10:00:00.000Z"},42,"texto"]`}
	list := NewVolunteerList(kv, nil)

	got, err := list.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "elements that are not records are skipped when listing")

	require.NoError(t, list.Append(ctx, record("bruno", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))))

	var persisted []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(kv[domain.VolunteersKey]), &persisted))
	require.Len(t, persisted, 4)
	assert.JSONEq(t, `42`, string(persisted[1]))
	assert.JSONEq(t, `"texto"`, string(persisted[2]))
}

func TestVolunteerList_AppendLongValues(t *testing.T) {
	ctx := context.Background()
	list := NewVolunteerList(mapStore{}, nil)

	r := domain.NewVolunteerRecord(map[string]string{
		"name":    "Ana",
		"address": strings.Repeat("a", 1025),
	}, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, list.Append(ctx, r))

	got, err := list.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Fields["address"], 1025)
}
