package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// VolunteersKey is the storage key holding the JSON array of volunteer records.
// It is part of the persisted contract and must not change without a migration.
const VolunteersKey = "ong_voluntarios_v1"

// SavedAtField is the JSON property carrying the record timestamp.
const SavedAtField = "savedAt"

// SavedAtLayout renders timestamps as ISO-8601 in UTC with millisecond
// precision, e.g. 2025-03-01T12:30:00.000Z.
const SavedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// VolunteerRecord is a submitted registration: the flat form field map plus the
// time it was saved. It serializes to a single flat JSON object.
type VolunteerRecord struct {
	SavedAt time.Time         `validate:"required"`
	Fields  map[string]string `validate:"required,dive,keys,required,endkeys"`

	// SavedAtText holds a stored savedAt that is not a timestamp, so a record
	// written by another client re-encodes unchanged.
	SavedAtText string
}

// NewVolunteerRecord copies fields so later form mutation cannot reach the record.
func NewVolunteerRecord(fields map[string]string, savedAt time.Time) VolunteerRecord {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		if k == SavedAtField {
			continue
		}
		copied[k] = v
	}
	return VolunteerRecord{SavedAt: savedAt.UTC(), Fields: copied}
}

// Validate runs validation checks on the record using the defined tags.
func (r *VolunteerRecord) Validate() error {
	return validatorInstance.Struct(r)
}

// MarshalJSON flattens the record into {"savedAt": ..., "<field>": ...}.
func (r VolunteerRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(r.Fields)+1)
	for k, v := range r.Fields {
		out[k] = v
	}
	if r.SavedAt.IsZero() && r.SavedAtText != "" {
		out[SavedAtField] = r.SavedAtText
	} else {
		out[SavedAtField] = r.SavedAt.UTC().Format(SavedAtLayout)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat object form. Non-string values are kept in
// their printed form so a record written by another client still loads.
// savedAt may be RFC 3339 or a bare YYYY-MM-DD date; any other text is kept
// in SavedAtText with a zero SavedAt.
func (r *VolunteerRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		if k == SavedAtField {
			continue
		}
		switch val := v.(type) {
		case string:
			fields[k] = val
		case nil:
			fields[k] = ""
		default:
			fields[k] = fmt.Sprint(val)
		}
	}

	r.SavedAt, r.SavedAtText = time.Time{}, ""
	switch v := raw[SavedAtField].(type) {
	case nil:
	case string:
		if t, ok := parseSavedAt(v); ok {
			r.SavedAt = t
		} else {
			r.SavedAtText = v
		}
	default:
		r.SavedAtText = fmt.Sprint(v)
	}
	r.Fields = fields
	return nil
}

func parseSavedAt(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// VolunteerRepository is the append-only persistence contract for records.
// It lives in the domain because it's a requirement OF the domain, not
// of the storage implementation.
type VolunteerRepository interface {
	// Append adds one record to the end of the persisted list.
	Append(ctx context.Context, record VolunteerRecord) error

	// List returns every persisted record in insertion order.
	List(ctx context.Context) ([]VolunteerRecord, error)
}
