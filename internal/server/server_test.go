package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arcanaland/arcana/internal/reading"
)

type fakeUpstream struct {
	answer string
	err    error

	gotSystem string
	gotUser   string
}

func (f *fakeUpstream) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.gotSystem = systemPrompt
	f.gotUser = userPrompt
	return f.answer, f.err
}

func postReading(t *testing.T, api *API, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reading", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)
	return rec
}

func validBody(t *testing.T) string {
	t.Helper()
	body, err := json.Marshal(reading.Request{
		SpreadName: "Vztahové rozložení",
		Mode:       reading.ModeSpread,
		Cards: []reading.CardContext{
			{Name: "The Fool", NameCzech: "Blázen", Position: "upright", Label: "Ty"},
		},
		Question: "Jak to mezi námi bude dál?",
	})
	require.NoError(t, err)
	return string(body)
}

func TestHandleReading(t *testing.T) {
	t.Run("forwards the built prompt and returns the answer", func(t *testing.T) {
		upstream := &fakeUpstream{answer: "**TY – Blázen**\nJsi na začátku."}
		api := NewAPI(upstream, zap.NewNop())

		rec := postReading(t, api, validBody(t))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp readingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, upstream.answer, resp.Answer)
		assert.Empty(t, resp.Error)

		assert.Equal(t, reading.SystemPrompt, upstream.gotSystem)
		assert.Contains(t, upstream.gotUser, "Vztahové rozložení")
		assert.Contains(t, upstream.gotUser, "Ty: Blázen")
		assert.Contains(t, upstream.gotUser, "Jak to mezi námi bude dál?")
	})

	t.Run("missing credential is a configuration error", func(t *testing.T) {
		api := NewAPI(&fakeUpstream{err: ErrMissingAPIKey}, zap.NewNop())

		rec := postReading(t, api, validBody(t))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp readingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "GEMINI_API_KEY")
		assert.NotEmpty(t, resp.Answer, "error replies carry a displayable fallback")
	})

	t.Run("upstream failure is a bad gateway with fallback answer", func(t *testing.T) {
		api := NewAPI(&fakeUpstream{err: errors.New("upstream returned status 503")}, zap.NewNop())

		rec := postReading(t, api, validBody(t))
		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var resp readingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, fallbackAnswer, resp.Answer)
	})

	t.Run("invalid body is a bad request", func(t *testing.T) {
		api := NewAPI(&fakeUpstream{}, zap.NewNop())
		rec := postReading(t, api, "{broken")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty card list is a bad request", func(t *testing.T) {
		api := NewAPI(&fakeUpstream{}, zap.NewNop())
		rec := postReading(t, api, `{"spreadName":"x","cards":[],"mode":"spread"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	api := NewAPI(&fakeUpstream{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
