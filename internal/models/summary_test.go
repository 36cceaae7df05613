package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSummaryTitle(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"short text verbatim", "Patient has fever", "Patient has fever"},
		{"whitespace trimmed", "  Patient has fever \n", "Patient has fever"},
		{"exactly sixty runes kept", strings.Repeat("x", 60), strings.Repeat("x", 60)},
		{"long text truncated", strings.Repeat("x", 61), strings.Repeat("x", 57) + "..."},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SummaryTitle(tc.input))
		})
	}
}

func TestSummaryTitleMultibyte(t *testing.T) {
	long := strings.Repeat("ä", 80)
	title := SummaryTitle(long)
	assert.Equal(t, strings.Repeat("ä", 57)+"...", title)
	assert.Equal(t, 60, len([]rune(title)))
}

func TestSummaryRecordMarshalJSON(t *testing.T) {
	id := primitive.NewObjectID()
	rec := SummaryRecord{
		ID:        id,
		DeviceID:  "device-1",
		Title:     "Patient has fever",
		InputText: "Patient has fever",
		Summary:   "Mild viral infection",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, id.Hex(), got["id"])
	assert.Equal(t, "device-1", got["device_id"])
	assert.Nil(t, got["translated_summary"])
	assert.Nil(t, got["deleted_at"])
	assert.NotContains(t, got, "_id")
}
