package summarize

import (
	"strings"

	"github.com/medscribe/core/internal/models"
)

// buildSystemPrompt assembles the instruction the model receives alongside
// the transcript. Each knob contributes one sentence; unknown values get the
// neutral fallback rather than an error so stale clients keep working.
func buildSystemPrompt(summaryType, style, tonality string) string {
	var b strings.Builder
	b.WriteString("You are a medical assistant helping a doctor summarize patient transcripts. ")

	switch summaryType {
	case models.SummaryTypeBrief:
		b.WriteString("Provide a very concise summary focusing on the most critical clinical information. ")
	case models.SummaryTypeDetailed:
		b.WriteString("Provide a comprehensive summary including background, symptoms, diagnosis, and plan. ")
	case models.SummaryTypeKeyPoints:
		b.WriteString("Extract the main topics and key information points from the transcript. ")
	case models.SummaryTypeActionPoints:
		b.WriteString("Extract all actionable items as a to-do list (e.g., follow-ups, prescriptions, tests). ")
	default:
		b.WriteString("Summarize the following transcript. ")
	}

	switch style {
	case models.StyleBullets:
		b.WriteString("Format the output using bullet points. ")
	case models.StyleNumbered:
		b.WriteString("Format the output as a numbered list. ")
	default:
		b.WriteString("Format the output as a cohesive paragraph. ")
	}

	switch tonality {
	case models.TonalityCasual:
		b.WriteString("Use a casual, friendly tone. ")
	case models.TonalitySimplified:
		b.WriteString("Use simple language suitable for a patient to understand. ")
	default:
		b.WriteString("Use a professional and formal medical tone. ")
	}

	b.WriteString("\n\nTranscript to process:\n")
	return b.String()
}
