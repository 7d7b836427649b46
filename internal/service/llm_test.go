package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishlet/backend/internal/service"
)

func newLLMService(t *testing.T, handler http.HandlerFunc) *service.LLMService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("DEEPSEEK_API_KEY", "test-key")
	t.Setenv("DEEPSEEK_API_URL", server.URL)

	svc, err := service.NewLLMService()
	require.NoError(t, err)
	return svc
}

func completionResponse(content string) []byte {
	raw, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return raw
}

func TestLLMServiceInvoke(t *testing.T) {
	var gotBody map[string]any
	svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write(completionResponse(`{"recipes": []}`))
	})

	raw, err := svc.Invoke(context.Background(), "make dinner", &service.Schema{Type: "object"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipes": []}`, string(raw))

	// The schema rides along in the system message and the response is
	// forced into JSON mode.
	messages := gotBody["messages"].([]any)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Contains(t, system["content"], `"type":"object"`)
	assert.Equal(t, map[string]any{"type": "json_object"}, gotBody["response_format"])
}

func TestLLMServiceInvokeErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})
		_, err := svc.Invoke(context.Background(), "p", &service.Schema{Type: "object"})
		assert.Error(t, err)
	})

	t.Run("no choices", func(t *testing.T) {
		svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		})
		_, err := svc.Invoke(context.Background(), "p", &service.Schema{Type: "object"})
		assert.Error(t, err)
	})

	t.Run("content is not JSON", func(t *testing.T) {
		svc := newLLMService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write(completionResponse("Sure! Here are your recipes..."))
		})
		_, err := svc.Invoke(context.Background(), "p", &service.Schema{Type: "object"})
		assert.Error(t, err)
	})
}

func TestNewLLMServiceRequiresKey(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("DEEPSEEK_API_KEY_FILE", "")

	_, err := service.NewLLMService()
	assert.Error(t, err)
}
