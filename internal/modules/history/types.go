package history

import "github.com/medscribe/core/internal/models"

// SavePayload is the request body for saving or upserting a history record.
// Optional fields left out keep the stored value on upsert, or fall back to
// the defaults on a fresh save.
type SavePayload struct {
	InputText         string  `json:"input_text" binding:"required"`
	Summary           *string `json:"summary"`
	TranslatedSummary *string `json:"translated_summary"`
	SummaryType       *string `json:"summary_type"`
	Style             *string `json:"style"`
	Tonality          *string `json:"tonality"`
	Language          *string `json:"language"`
}

// HistoryPage is one page of a device's history, newest first.
type HistoryPage struct {
	Items   []models.SummaryRecord `json:"items"`
	HasMore bool                   `json:"has_more"`
	Skip    int64                  `json:"skip"`
}
