package history

import (
	"context"
	"time"

	"github.com/medscribe/core/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service implements the history semantics: content-keyed upsert, soft
// delete, and offset pagination, all scoped to a single device identity.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// valueOr returns the payload value when the field was present, even if it
// is the empty string. The default applies only to absent fields.
func valueOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

// Save inserts a fresh record for the device. Missing option fields fall back
// to the defaults; title is derived from the input text.
func (s *Service) Save(ctx context.Context, deviceID string, payload SavePayload) (*models.SummaryRecord, error) {
	now := s.now().UTC()
	rec := &models.SummaryRecord{
		DeviceID:          deviceID,
		Title:             models.SummaryTitle(payload.InputText),
		InputText:         payload.InputText,
		Summary:           valueOr(payload.Summary, ""),
		TranslatedSummary: payload.TranslatedSummary,
		SummaryType:       valueOr(payload.SummaryType, models.SummaryTypeBrief),
		Style:             valueOr(payload.Style, models.StyleParagraph),
		Tonality:          valueOr(payload.Tonality, models.TonalityProfessional),
		Language:          valueOr(payload.Language, models.LanguageOriginal),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	id, err := s.store.InsertOne(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return rec, nil
}

// Upsert saves the payload, reusing an existing live record for the same
// device and input text when one exists. On reuse the record's options and
// summary are overwritten with the payload values that are present, the
// title is recomputed, updated_at moves forward and created_at is kept.
//
// The lookup and the write are separate operations, so two concurrent
// upserts of the same text may both insert. The next upsert converges on
// whichever record the lookup returns.
func (s *Service) Upsert(ctx context.Context, deviceID string, payload SavePayload) (*models.SummaryRecord, error) {
	existing, err := s.store.FindOne(ctx, bson.M{
		"device_id":  deviceID,
		"input_text": payload.InputText,
		"deleted_at": nil,
	})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.Save(ctx, deviceID, payload)
	}

	if payload.Summary != nil {
		existing.Summary = *payload.Summary
	}
	if payload.TranslatedSummary != nil {
		existing.TranslatedSummary = payload.TranslatedSummary
	}
	if payload.SummaryType != nil {
		existing.SummaryType = *payload.SummaryType
	}
	if payload.Style != nil {
		existing.Style = *payload.Style
	}
	if payload.Tonality != nil {
		existing.Tonality = *payload.Tonality
	}
	if payload.Language != nil {
		existing.Language = *payload.Language
	}
	existing.Title = models.SummaryTitle(payload.InputText)
	existing.UpdatedAt = s.now().UTC()

	_, err = s.store.UpdateOne(ctx, bson.M{"_id": existing.ID}, bson.M{
		"title":              existing.Title,
		"summary":            existing.Summary,
		"translated_summary": existing.TranslatedSummary,
		"summary_type":       existing.SummaryType,
		"style":              existing.Style,
		"tonality":           existing.Tonality,
		"language":           existing.Language,
		"updated_at":         existing.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// List returns one page of the device's live records, newest first. It
// fetches one record past the requested limit to learn whether another
// page exists.
func (s *Service) List(ctx context.Context, deviceID string, skip, limit int64) (*HistoryPage, error) {
	recs, err := s.store.FindMany(ctx,
		bson.M{"device_id": deviceID, "deleted_at": nil},
		bson.D{{Key: "created_at", Value: -1}},
		skip, limit+1,
	)
	if err != nil {
		return nil, err
	}

	hasMore := int64(len(recs)) > limit
	if hasMore {
		recs = recs[:limit]
	}
	if recs == nil {
		recs = []models.SummaryRecord{}
	}
	return &HistoryPage{Items: recs, HasMore: hasMore, Skip: skip}, nil
}

// Get fetches a single record by id for the device. Soft-deleted records are
// still returned; a malformed id behaves like an absent record.
func (s *Service) Get(ctx context.Context, deviceID, id string) (*models.SummaryRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return s.store.FindOne(ctx, bson.M{"_id": oid, "device_id": deviceID})
}

// Delete soft-deletes a live record by stamping deleted_at. It reports
// whether a record was actually deleted; malformed ids and already-deleted
// records report false.
func (s *Service) Delete(ctx context.Context, deviceID, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := s.store.UpdateOne(ctx,
		bson.M{"_id": oid, "device_id": deviceID, "deleted_at": nil},
		bson.M{"deleted_at": s.now().UTC()},
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
