// Package meeting manages the saved meeting history and the in-progress working set.
package meeting

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/johnquangdev/lti-omt/internal/domain/entities"
	"github.com/johnquangdev/lti-omt/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/lti-omt/internal/usecase/errors"
	"github.com/johnquangdev/lti-omt/internal/usecase/shape"
	"github.com/johnquangdev/lti-omt/internal/usecase/stats"
	"github.com/johnquangdev/lti-omt/internal/usecase/validation"
)

// Service defines the meeting use case
type Service interface {
	// List summarizes every saved meeting in storage order
	List(ctx context.Context) ([]Summary, error)

	// Get returns the saved record at index exactly as stored
	Get(ctx context.Context, index int) ([]byte, error)

	// Normalized returns the normalized view of the saved record at index
	Normalized(ctx context.Context, index int) (*entities.Meeting, error)

	// Save validates a record, stores its statistics with it and appends it to the history
	Save(ctx context.Context, raw []byte) (*SaveOutput, error)

	// Delete removes the saved record at index
	Delete(ctx context.Context, index int) error

	// MigrateLegacyKeys folds the legacy pastMeetings collection into savedMeetings
	MigrateLegacyKeys(ctx context.Context) (int, error)

	// GetState returns a working-set collection as stored
	GetState(ctx context.Context, collection entities.Collection) ([]byte, error)

	// PutState replaces a working-set collection
	PutState(ctx context.Context, collection entities.Collection, raw []byte) error
}

// Summary describes one saved meeting
type Summary struct {
	Index          int                   `json:"index"`
	Date           string                `json:"date"`
	Timestamp      string                `json:"timestamp"`
	Attendees      []string              `json:"attendees"`
	Shape          entities.Shape        `json:"shape"`
	IsolationCount int                   `json:"isolationCount"`
	Statistics     *entities.MeetingData `json:"statistics,omitempty"`
}

// SaveOutput reports where a saved record landed
type SaveOutput struct {
	Index       int                  `json:"index"`
	MeetingData entities.MeetingData `json:"meetingData"`
}

var _ Service = (*MeetingService)(nil)

// MeetingService implements Service over a state repository
type MeetingService struct {
	repo   repositories.StateRepository
	logger *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(repo repositories.StateRepository, logger *zap.Logger) *MeetingService {
	return &MeetingService{repo: repo, logger: logger}
}

// List implements Service
func (s *MeetingService) List(ctx context.Context) ([]Summary, error) {
	records, err := s.load(ctx, entities.CollectionSavedMeetings)
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(records))
	for i, raw := range records {
		m := shape.FromResult(gjson.ParseBytes(raw))
		summary := Summary{
			Index:          i,
			Date:           m.Date,
			Timestamp:      m.Timestamp,
			Attendees:      m.Attendees,
			Shape:          m.Shape,
			IsolationCount: m.IsolationCount(),
		}
		if data, ok := stats.FromMeeting(m); ok {
			summary.Statistics = &data
		}
		out = append(out, summary)
	}
	return out, nil
}

// Get implements Service
func (s *MeetingService) Get(ctx context.Context, index int) ([]byte, error) {
	records, err := s.load(ctx, entities.CollectionSavedMeetings)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(records) {
		return nil, entities.ErrMeetingNotFound
	}
	return records[index], nil
}

// Normalized implements Service
func (s *MeetingService) Normalized(ctx context.Context, index int) (*entities.Meeting, error) {
	raw, err := s.Get(ctx, index)
	if err != nil {
		return nil, err
	}
	return shape.Normalize(raw)
}

// Save implements Service
func (s *MeetingService) Save(ctx context.Context, raw []byte) (*SaveOutput, error) {
	if res := validation.ValidateMeeting(raw); !res.IsValid {
		return nil, &ucerrors.ValidationError{Errors: res.Errors}
	}

	m, err := shape.Normalize(raw)
	if err != nil {
		return nil, err
	}
	data := stats.Aggregate(m.AggregateResponses(), m.Info(), m.ListedIsolations())

	record, err := withMeetingData(raw, data)
	if err != nil {
		return nil, err
	}
	if m.Version == "" {
		if record, err = sjson.SetBytes(record, "version", entities.MeetingRecordVersion); err != nil {
			return nil, fmt.Errorf("failed to set record version: %w", err)
		}
	}

	records, err := s.load(ctx, entities.CollectionSavedMeetings)
	if err != nil {
		return nil, err
	}
	records = append(records, record)
	if err := s.store(ctx, entities.CollectionSavedMeetings, records); err != nil {
		return nil, err
	}

	s.logger.Info("Meeting saved",
		zap.String("date", m.Date),
		zap.Int("index", len(records)-1),
		zap.Int("isolations", data.ExecutiveSummary.TotalIsolationsReviewed),
	)
	return &SaveOutput{Index: len(records) - 1, MeetingData: data}, nil
}

// Delete implements Service
func (s *MeetingService) Delete(ctx context.Context, index int) error {
	records, err := s.load(ctx, entities.CollectionSavedMeetings)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return entities.ErrMeetingNotFound
	}

	records = append(records[:index], records[index+1:]...)
	if err := s.store(ctx, entities.CollectionSavedMeetings, records); err != nil {
		return err
	}
	s.logger.Info("Meeting deleted", zap.Int("index", index))
	return nil
}

// MigrateLegacyKeys implements Service. Legacy records whose timestamp is not
// already present are appended; the legacy collection is removed afterwards.
func (s *MeetingService) MigrateLegacyKeys(ctx context.Context) (int, error) {
	legacy, err := s.repo.Load(ctx, entities.CollectionPastMeetings)
	if errors.Is(err, entities.ErrCollectionNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", entities.CollectionPastMeetings, err)
	}

	records, err := s.load(ctx, entities.CollectionSavedMeetings)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(records))
	for _, raw := range records {
		if ts := timestampOf(raw); ts != "" {
			seen[ts] = true
		}
	}

	migrated := 0
	for _, raw := range elements(legacy) {
		if ts := timestampOf(raw); ts != "" {
			if seen[ts] {
				continue
			}
			seen[ts] = true
		}
		records = append(records, raw)
		migrated++
	}

	if migrated > 0 {
		if err := s.store(ctx, entities.CollectionSavedMeetings, records); err != nil {
			return 0, err
		}
	}
	if err := s.repo.Delete(ctx, entities.CollectionPastMeetings); err != nil {
		return migrated, fmt.Errorf("failed to remove %s: %w", entities.CollectionPastMeetings, err)
	}

	s.logger.Info("Migrated legacy meeting history", zap.Int("migrated", migrated))
	return migrated, nil
}

// GetState implements Service
func (s *MeetingService) GetState(ctx context.Context, collection entities.Collection) ([]byte, error) {
	if !collection.IsWorkingSet() {
		return nil, entities.ErrUnknownCollection
	}
	return s.repo.Load(ctx, collection)
}

// PutState implements Service. People lists are sanitized before they are stored.
func (s *MeetingService) PutState(ctx context.Context, collection entities.Collection, raw []byte) error {
	if !collection.IsWorkingSet() {
		return entities.ErrUnknownCollection
	}
	if !gjson.ValidBytes(raw) {
		return fmt.Errorf("%w: %s must be valid JSON", ucerrors.ErrInvalidInput, collection)
	}

	if collection.IsPeople() {
		doc := gjson.ParseBytes(raw)
		if !doc.IsArray() {
			return fmt.Errorf("%w: %s must be an array", ucerrors.ErrInvalidInput, collection)
		}
		var err error
		if raw, err = sanitizePeople(raw, doc); err != nil {
			return err
		}
	}

	return s.repo.Save(ctx, collection, raw)
}

// load reads a collection holding an array of records; absent means empty
func (s *MeetingService) load(ctx context.Context, collection entities.Collection) ([][]byte, error) {
	raw, err := s.repo.Load(ctx, collection)
	if errors.Is(err, entities.ErrCollectionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", collection, err)
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%s: %w", collection, entities.ErrMalformedMeeting)
	}
	return elements(raw), nil
}

// store writes records as a JSON array, each element verbatim
func (s *MeetingService) store(ctx context.Context, collection entities.Collection, records [][]byte) error {
	size := 2
	for _, r := range records {
		size += len(r) + 1
	}
	out := make([]byte, 0, size)
	out = append(out, '[')
	for i, r := range records {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, r...)
	}
	out = append(out, ']')

	if err := s.repo.Save(ctx, collection, out); err != nil {
		return fmt.Errorf("failed to save %s: %w", collection, err)
	}
	return nil
}

// elements splits a JSON array into its raw members; anything else is empty
func elements(raw []byte) [][]byte {
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil
	}
	var out [][]byte
	doc.ForEach(func(_, item gjson.Result) bool {
		out = append(out, []byte(item.Raw))
		return true
	})
	return out
}

func timestampOf(raw []byte) string {
	return shape.Text(shape.Lookup(gjson.ParseBytes(raw), "timestamp"))
}

// withMeetingData stores the derived statistics on the record, keeping any other
// members of an existing meetingData object.
func withMeetingData(raw []byte, data entities.MeetingData) ([]byte, error) {
	var err error
	existing := shape.Lookup(gjson.ParseBytes(raw), "meetingData")
	if !existing.IsObject() {
		if raw, err = sjson.SetBytes(raw, "meetingData", data); err != nil {
			return nil, fmt.Errorf("failed to store meeting statistics: %w", err)
		}
		return raw, nil
	}

	for _, member := range []struct {
		path  string
		value any
	}{
		{"meetingData.meetingInfo", data.MeetingInfo},
		{"meetingData.executiveSummary", data.ExecutiveSummary},
		{"meetingData.riskAnalysis", data.RiskAnalysis},
	} {
		if raw, err = sjson.SetBytes(raw, member.path, member.value); err != nil {
			return nil, fmt.Errorf("failed to store meeting statistics: %w", err)
		}
	}
	return raw, nil
}

func sanitizePeople(raw []byte, doc gjson.Result) ([]byte, error) {
	var err error
	i := 0
	doc.ForEach(func(_, item gjson.Result) bool {
		if item.Type == gjson.String {
			if clean := validation.SanitizeString(item.Str); clean != item.Str {
				raw, err = sjson.SetBytes(raw, strconv.Itoa(i), clean)
			}
		}
		i++
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sanitize people: %w", err)
	}
	return raw, nil
}
