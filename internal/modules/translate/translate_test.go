package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGtxBody = `[[["Tämä on lyhyt ","This is a brief ",null,null,3,null,null,[[]],[[["x"]]]],["yhteenveto.","summary.",null,null,3]],null,"en"]`

func TestParseSegments(t *testing.T) {
	got, err := parseSegments([]byte(sampleGtxBody))
	require.NoError(t, err)
	assert.Equal(t, "Tämä on lyhyt yhteenveto.", got)
}

func TestParseSegmentsRejectsGarbage(t *testing.T) {
	_, err := parseSegments([]byte(`not json`))
	assert.Error(t, err)

	_, err = parseSegments([]byte(`[]`))
	assert.Error(t, err)

	_, err = parseSegments([]byte(`[[]]`))
	assert.Error(t, err)
}

func TestTranslateSendsGtxQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "auto", q.Get("sl"))
		assert.Equal(t, "fi", q.Get("tl"))
		assert.Equal(t, "t", q.Get("dt"))
		assert.Equal(t, "This is a brief summary.", q.Get("q"))
		w.Write([]byte(sampleGtxBody))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Translate(context.Background(), "This is a brief summary.", "fi")
	require.NoError(t, err)
	assert.Equal(t, "Tämä on lyhyt yhteenveto.", got)
}

func TestTranslateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Translate(context.Background(), "text", "fi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func newTestRouter(endpoint string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewClient(endpoint)).RegisterRoutes(router.Group("/api"))
	return router
}

func TestHandlerTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleGtxBody))
	}))
	defer srv.Close()
	router := newTestRouter(srv.URL)

	body := `{"text":"This is a brief summary.","target_language":"fi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Tämä on lyhyt yhteenveto.", got.TranslatedText)
	assert.Equal(t, "fi", got.TargetLanguage)
}

func TestHandlerTranslateValidation(t *testing.T) {
	router := newTestRouter("http://127.0.0.1:0")

	for _, body := range []string{
		`{"text":"Some text."}`,
		`{"target_language":"fi"}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, body)
	}
}
