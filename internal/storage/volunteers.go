package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nfrund/esperanca/internal/domain"
)

// VolunteerList persists volunteer records as one JSON array under
// domain.VolunteersKey. Every append rewrites the whole array.
type VolunteerList struct {
	kv     KeyValue
	logger *slog.Logger
}

var _ domain.VolunteerRepository = (*VolunteerList)(nil)

// NewVolunteerList creates a VolunteerList over kv.
func NewVolunteerList(kv KeyValue, logger *slog.Logger) *VolunteerList {
	if logger == nil {
		logger = slog.Default()
	}
	return &VolunteerList{kv: kv, logger: logger}
}

// List implements domain.VolunteerRepository. A missing value or one that is
// not a JSON array yields an empty list; elements that are not records are
// skipped.
func (l *VolunteerList) List(ctx context.Context) ([]domain.VolunteerRecord, error) {
	raw, ok, err := l.kv.GetItem(ctx, domain.VolunteersKey)
	if err != nil {
		return nil, fmt.Errorf("loading volunteers: %w", err)
	}
	if !ok {
		return []domain.VolunteerRecord{}, nil
	}
	elems := l.elements(raw)
	records := make([]domain.VolunteerRecord, 0, len(elems))
	for i, elem := range elems {
		var r domain.VolunteerRecord
		if err := json.Unmarshal(elem, &r); err != nil {
			l.logger.Warn("Skipping unreadable volunteer record",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

// Append implements domain.VolunteerRepository. Existing elements are written
// back unchanged, whatever they hold; only a value that is not a JSON
// array is replaced.
func (l *VolunteerList) Append(ctx context.Context, record domain.VolunteerRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid volunteer record: %w", err)
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding volunteer: %w", err)
	}

	appendTo := func(current string, exists bool) (string, error) {
		var elems []json.RawMessage
		if exists {
			elems = l.elements(current)
		}
		elems = append(elems, encoded)
		data, err := json.Marshal(elems)
		if err != nil {
			return "", fmt.Errorf("encoding volunteers: %w", err)
		}
		return string(data), nil
	}

	if u, ok := l.kv.(Updater); ok {
		return u.Update(ctx, domain.VolunteersKey, appendTo)
	}

	current, exists, err := l.kv.GetItem(ctx, domain.VolunteersKey)
	if err != nil {
		return fmt.Errorf("loading volunteers: %w", err)
	}
	next, err := appendTo(current, exists)
	if err != nil {
		return err
	}
	return l.kv.SetItem(ctx, domain.VolunteersKey, next)
}

// elements splits the stored array without decoding its members.
func (l *VolunteerList) elements(raw string) []json.RawMessage {
	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		l.logger.Warn("Discarding unreadable volunteer list",
			slog.String("key", domain.VolunteersKey),
			slog.String("error", fmt.Errorf("%w: %v", domain.ErrCorruptStore, err).Error()))
		return nil
	}
	return elems
}
