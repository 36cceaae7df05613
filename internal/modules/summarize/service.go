package summarize

import (
	"context"
	"strings"

	appcfg "github.com/medscribe/core/internal/config"
	"github.com/medscribe/core/internal/models"
)

// Service turns transcripts into summaries through the first enabled AI
// provider in the configuration.
type Service struct {
	cfg appcfg.AIConfig

	// call is swapped out in tests to avoid real provider traffic.
	call func(ctx context.Context, provider *appcfg.AIProvider, systemPrompt, prompt string) (string, error)
}

func NewService(cfg appcfg.AIConfig) *Service {
	return &Service{cfg: cfg, call: callProvider}
}

// Summarize fills in the default knobs, builds the instruction prompt, and
// asks the provider for a completion.
func (s *Service) Summarize(ctx context.Context, req Request) (*Response, error) {
	if req.SummaryType == "" {
		req.SummaryType = models.SummaryTypeBrief
	}
	if req.Style == "" {
		req.Style = models.StyleParagraph
	}
	if req.Tonality == "" {
		req.Tonality = models.TonalityProfessional
	}

	provider := selectProvider(s.cfg)
	if provider == nil {
		return nil, errNoProvider
	}

	systemPrompt := buildSystemPrompt(req.SummaryType, req.Style, req.Tonality)
	summary, err := s.call(ctx, provider, systemPrompt, req.Text)
	if err != nil {
		return nil, err
	}

	return &Response{
		Summary:     strings.TrimSpace(summary),
		SummaryType: req.SummaryType,
		Style:       req.Style,
		Tonality:    req.Tonality,
	}, nil
}
