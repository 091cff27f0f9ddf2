package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVolunteerRecord_CopiesFields(t *testing.T) {
	fields := map[string]string{"name": "Ana", "savedAt": "forged"}
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	r := NewVolunteerRecord(fields, at)
	fields["name"] = "changed"

	assert.Equal(t, map[string]string{"name": "Ana"}, r.Fields)
	assert.Equal(t, time.UTC, r.SavedAt.Location())
	assert.True(t, r.SavedAt.Equal(at))
}

func TestVolunteerRecord_JSON(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	r := NewVolunteerRecord(map[string]string{"name": "Ana", "cpf": "529.982.247-25"}, at)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana","cpf":"529.982.247-25","savedAt":"2025-03-01T12:30:00.000Z"}`, string(data))

	var back VolunteerRecord
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r.Fields, back.Fields)
	assert.True(t, r.SavedAt.Equal(back.SavedAt))
}

func TestVolunteerRecord_UnmarshalForeignValues(t *testing.T) {
	var r VolunteerRecord
	err := json.Unmarshal([]byte(`{"name":"Ana","age":30,"updates":true,"note":null}`), &r)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"name": "Ana", "age": "30", "updates": "true", "note": ""}, r.Fields)
	assert.True(t, r.SavedAt.IsZero())
}

func TestVolunteerRecord_UnmarshalSavedAtForms(t *testing.T) {
	tests := map[string]struct {
		input    string
		wantTime time.Time
		wantText string
	}{
		"rfc3339":   {`{"savedAt":"2025-03-01T10:00:00.000Z"}`, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), ""},
		"offset":    {`{"savedAt":"2025-03-01T07:00:00-03:00"}`, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), ""},
		"date only": {`{"savedAt":"2025-03-01"}`, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ""},
		"free text": {`{"savedAt":"yesterday"}`, time.Time{}, "yesterday"},
		"missing":   {`{"name":"Ana"}`, time.Time{}, ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var r VolunteerRecord
			require.NoError(t, json.Unmarshal([]byte(tt.input), &r))
			assert.True(t, tt.wantTime.Equal(r.SavedAt), "got %v", r.SavedAt)
			assert.Equal(t, tt.wantText, r.SavedAtText)
		})
	}
}

func TestVolunteerRecord_UnparsedSavedAtRoundTrips(t *testing.T) {
	var r VolunteerRecord
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Bia","savedAt":"ontem"}`), &r))

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Bia","savedAt":"ontem"}`, string(data))
}

func TestVolunteerRecord_Validate(t *testing.T) {
	valid := NewVolunteerRecord(map[string]string{"name": "Ana"}, time.Now())
	assert.NoError(t, valid.Validate())

	noTime := VolunteerRecord{Fields: map[string]string{"name": "Ana"}}
	assert.Error(t, noTime.Validate())

	emptyKey := NewVolunteerRecord(map[string]string{"": "x"}, time.Now())
	assert.Error(t, emptyKey.Validate())

	long := NewVolunteerRecord(map[string]string{
		"address":                strings.Repeat("Rua das Flores ", 200),
		strings.Repeat("x", 100): "campo extra",
	}, time.Now())
	assert.NoError(t, long.Validate(), "record size is not limited")
}
