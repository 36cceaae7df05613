package models

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Accepted values for the three summary knobs. Stored as plain strings so the
// documents stay byte-compatible with what clients already persist.
const (
	SummaryTypeBrief        = "brief"
	SummaryTypeDetailed     = "detailed"
	SummaryTypeKeyPoints    = "key_points"
	SummaryTypeActionPoints = "action_points"

	StyleParagraph = "paragraph"
	StyleBullets   = "bullets"
	StyleNumbered  = "numbered"

	TonalityProfessional = "professional"
	TonalityCasual       = "casual"
	TonalitySimplified   = "simplified"

	// LanguageOriginal marks a summary that was never translated.
	LanguageOriginal = "original"
)

const (
	titleMaxRunes     = 60
	titleTruncateAt   = 57
	titleTruncateMark = "..."
)

// SummaryRecord is one saved summary document, scoped to a device.
// DeletedAt == nil means the record is active; soft-deleted records are kept
// forever and only hidden from listings and upsert matching.
type SummaryRecord struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"     json:"-"`
	DeviceID          string             `bson:"device_id"          json:"device_id"`
	Title             string             `bson:"title"              json:"title"`
	InputText         string             `bson:"input_text"         json:"input_text"`
	Summary           string             `bson:"summary"            json:"summary"`
	TranslatedSummary *string            `bson:"translated_summary" json:"translated_summary"`
	SummaryType       string             `bson:"summary_type"       json:"summary_type"`
	Style             string             `bson:"style"              json:"style"`
	Tonality          string             `bson:"tonality"           json:"tonality"`
	Language          string             `bson:"language"           json:"language"`
	CreatedAt         time.Time          `bson:"created_at"         json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"         json:"updated_at"`
	DeletedAt         *time.Time         `bson:"deleted_at"         json:"deleted_at"`
}

// MarshalJSON exposes the storage _id as a plain hex "id" string.
func (r SummaryRecord) MarshalJSON() ([]byte, error) {
	type alias SummaryRecord
	return json.Marshal(struct {
		ID string `json:"id"`
		alias
	}{
		ID:    r.ID.Hex(),
		alias: alias(r),
	})
}

// SummaryTitle derives the list title from the transcript: the trimmed text
// verbatim when it fits in 60 runes, otherwise the first 57 runes plus "...".
func SummaryTitle(inputText string) string {
	raw := strings.TrimSpace(inputText)
	runes := []rune(raw)
	if len(runes) <= titleMaxRunes {
		return raw
	}
	return string(runes[:titleTruncateAt]) + titleTruncateMark
}
