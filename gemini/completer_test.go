package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newClient(t *testing.T, handler http.HandlerFunc) *genai.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return client
}

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("returns the candidate text", func(t *testing.T) {
		t.Parallel()

		bodies := make(chan map[string]any, 1)
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			var body map[string]any
			_ = json.Unmarshal(data, &body)
			bodies <- body
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"We open at 9am."}]}}]}`))
		})

		answer, err := gemini.NewCompleter(client, "", 0).Complete(context.Background(), "be brief", "When do you open?")

		require.NoError(t, err)
		assert.Equal(t, "We open at 9am.", answer)
		body := <-bodies
		assert.Contains(t, body, "systemInstruction")
		assert.Contains(t, body, "contents")
	})

	t.Run("rejects responses without text", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := gemini.NewCompleter(client, "", 0).Complete(context.Background(), "s", "u")

		var ce *sitechat.CompletionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "gemini", ce.Provider)
	})

	t.Run("wraps service errors", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
		})

		_, err := gemini.NewCompleter(client, "", 0).Complete(context.Background(), "s", "u")

		var ce *sitechat.CompletionError
		require.ErrorAs(t, err, &ce)
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(sitechat.SystemPreamble, 150)

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, sitechat.SystemPreamble, config.SystemInstruction.Parts[0].Text)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
	assert.Equal(t, int32(150), config.MaxOutputTokens)
}
