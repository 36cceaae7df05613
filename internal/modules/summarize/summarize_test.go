package summarize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appcfg "github.com/medscribe/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSystemPrompt(t *testing.T) {
	tests := []struct {
		name                         string
		summaryType, style, tonality string
		want                         []string
	}{
		{
			name:        "defaults",
			summaryType: "brief", style: "paragraph", tonality: "professional",
			want: []string{
				"very concise summary",
				"cohesive paragraph",
				"professional and formal medical tone",
			},
		},
		{
			name:        "detailed bullets casual",
			summaryType: "detailed", style: "bullets", tonality: "casual",
			want: []string{
				"comprehensive summary",
				"bullet points",
				"casual, friendly tone",
			},
		},
		{
			name:        "action points numbered simplified",
			summaryType: "action_points", style: "numbered", tonality: "simplified",
			want: []string{
				"to-do list",
				"numbered list",
				"simple language suitable for a patient",
			},
		},
		{
			name:        "unknown values use fallbacks",
			summaryType: "haiku", style: "interpretive-dance", tonality: "sarcastic",
			want: []string{
				"Summarize the following transcript.",
				"cohesive paragraph",
				"professional and formal medical tone",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prompt := buildSystemPrompt(tc.summaryType, tc.style, tc.tonality)
			assert.True(t, strings.HasPrefix(prompt, "You are a medical assistant"))
			assert.True(t, strings.HasSuffix(prompt, "Transcript to process:\n"))
			for _, frag := range tc.want {
				assert.Contains(t, prompt, frag)
			}
		})
	}
}

func TestSelectProviderFirstEnabledWins(t *testing.T) {
	cfg := appcfg.AIConfig{Providers: []appcfg.AIProvider{
		{ID: "off", Type: "openai", Enabled: false},
		{ID: "first", Type: "anthropic", Enabled: true},
		{ID: "second", Type: "openai", Enabled: true},
	}}

	provider := selectProvider(cfg)
	require.NotNil(t, provider)
	assert.Equal(t, "first", provider.ID)

	assert.Nil(t, selectProvider(appcfg.AIConfig{}))
	assert.Nil(t, selectProvider(appcfg.AIConfig{Providers: []appcfg.AIProvider{
		{ID: "off", Enabled: false},
	}}))
}

func TestValidateAPIKeyRejectsPlaceholder(t *testing.T) {
	_, err := validateAPIKey(&appcfg.AIProvider{APIKey: ""})
	assert.Error(t, err)

	_, err = validateAPIKey(&appcfg.AIProvider{APIKey: "your_openai_api_key_here"})
	assert.Error(t, err)

	key, err := validateAPIKey(&appcfg.AIProvider{APIKey: "  sk-real-key  "})
	require.NoError(t, err)
	assert.Equal(t, "sk-real-key", key)
}

func TestNormalizeOpenAICompatibleEndpoint(t *testing.T) {
	assert.Equal(t, "https://api.openai.com", normalizeOpenAICompatibleEndpoint(""))
	assert.Equal(t, "https://example.com", normalizeOpenAICompatibleEndpoint("https://example.com/v1"))
	assert.Equal(t, "https://example.com", normalizeOpenAICompatibleEndpoint("https://example.com/"))
}

func TestNormalizeOpenAIBaseURL(t *testing.T) {
	assert.Equal(t, "", normalizeOpenAIBaseURL(""))
	assert.Equal(t, "https://example.com/v1", normalizeOpenAIBaseURL("https://example.com"))
	assert.Equal(t, "https://example.com/v1", normalizeOpenAIBaseURL("https://example.com/v1/"))
}

func TestSummarizeAppliesDefaultKnobs(t *testing.T) {
	svc := NewService(appcfg.AIConfig{Providers: []appcfg.AIProvider{
		{ID: "test", Type: "openai", APIKey: "sk-test", Enabled: true},
	}})

	var gotSystemPrompt string
	svc.call = func(_ context.Context, _ *appcfg.AIProvider, systemPrompt, prompt string) (string, error) {
		gotSystemPrompt = systemPrompt
		assert.Equal(t, "Some text.", prompt)
		return "  Default summary.  ", nil
	}

	resp, err := svc.Summarize(context.Background(), Request{Text: "Some text."})
	require.NoError(t, err)
	assert.Equal(t, "Default summary.", resp.Summary)
	assert.Equal(t, "brief", resp.SummaryType)
	assert.Equal(t, "paragraph", resp.Style)
	assert.Equal(t, "professional", resp.Tonality)
	assert.Contains(t, gotSystemPrompt, "very concise summary")
}

func TestSummarizeWithoutProvider(t *testing.T) {
	svc := NewService(appcfg.AIConfig{})

	_, err := svc.Summarize(context.Background(), Request{Text: "Some text."})
	assert.ErrorIs(t, err, errNoProvider)
}

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api"))
	return router
}

func TestHandlerSummarize(t *testing.T) {
	svc := NewService(appcfg.AIConfig{Providers: []appcfg.AIProvider{
		{ID: "test", Type: "openai", APIKey: "sk-test", Enabled: true},
	}})
	svc.call = func(_ context.Context, _ *appcfg.AIProvider, _, _ string) (string, error) {
		return "This is a brief summary.", nil
	}
	router := newTestRouter(svc)

	body := `{"text":"Patient reports headache and fever for two days.","summary_type":"brief"}`
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "This is a brief summary.", got.Summary)
	assert.Equal(t, "brief", got.SummaryType)
}

func TestHandlerSummarizeValidation(t *testing.T) {
	router := newTestRouter(NewService(appcfg.AIConfig{}))

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandlerSummarizeNoProvider(t *testing.T) {
	router := newTestRouter(NewService(appcfg.AIConfig{}))

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(`{"text":"Some text."}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
