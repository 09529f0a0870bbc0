package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-writing-assistant/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHuggingFaceProvider_RequiresKey(t *testing.T) {
	p, err := NewHuggingFaceProvider(" ", "", "meta-llama/Llama-3.1-8B-Instruct")

	assert.Nil(t, p)
	assert.True(t, errors.Is(err, llm.ErrMissingAPIKey))
}

func TestHuggingFaceProvider_Generate(t *testing.T) {
	var got chatRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"choices":[{"message":{"content":"[\"Why?\"]"}}]}`)
	}))
	defer srv.Close()

	p, err := NewHuggingFaceProvider("hf_token", srv.URL+"/v1/", "llama")
	require.NoError(t, err)

	out, err := p.Generate(context.Background(), "ask", llm.WithJSONResponse())
	require.NoError(t, err)

	assert.Equal(t, `["Why?"]`, out)
	assert.Equal(t, "Bearer hf_token", auth)
	assert.Equal(t, "llama", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	require.NotNil(t, got.ResponseFormat)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, llm.RoleUser, got.Messages[0].Role)
}

func TestHuggingFaceProvider_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"status", http.StatusUnauthorized, `{"error":"bad token"}`, "status 401"},
		{"api error", http.StatusOK, `{"error":{"message":"overloaded"}}`, "overloaded"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "empty choices"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			p, err := NewHuggingFaceProvider("hf_token", srv.URL, "llama")
			require.NoError(t, err)

			_, err = p.Generate(context.Background(), "ask")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
