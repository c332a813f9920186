package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *EmbeddingService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewEmbeddingService(Config{BaseURL: server.URL, Model: "test-model"})
}

func TestNewEmbeddingService_Defaults(t *testing.T) {
	svc := NewEmbeddingService(Config{})
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.Equal(t, DefaultModel, svc.ModelName())
	assert.Equal(t, DefaultDimensions, svc.Dimensions())

	svc = NewEmbeddingService(Config{Model: "mxbai-embed-large", Dimensions: 1024})
	assert.Equal(t, "mxbai-embed-large", svc.ModelName())
	assert.Equal(t, 1024, svc.Dimensions())
}

func TestEmbeddingService_Embed(t *testing.T) {
	t.Run("sends the prompt and converts the vector", func(t *testing.T) {
		var gotPath string
		var gotReq embedRequest

		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Write([]byte(`{"embedding": [0.25, -0.5, 1.0]}`))
		})

		embedding, err := svc.Embed(context.Background(), "glaciers carve valleys")
		require.NoError(t, err)

		assert.Equal(t, "/api/embeddings", gotPath)
		assert.Equal(t, "test-model", gotReq.Model)
		assert.Equal(t, "glaciers carve valleys", gotReq.Prompt)
		assert.Equal(t, []float32{0.25, -0.5, 1.0}, embedding)
	})

	t.Run("fails on non-200 status", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "model 'test-model' not found"}`))
		})

		_, err := svc.Embed(context.Background(), "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 404")
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestEmbeddingService_EmbedBatch(t *testing.T) {
	t.Run("embeds texts one by one in order", func(t *testing.T) {
		var prompts []string
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			var req embedRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			prompts = append(prompts, req.Prompt)
			fmt.Fprintf(w, `{"embedding": [%d]}`, len(prompts))
		})

		embeddings, err := svc.EmbedBatch(context.Background(), []string{"a", "b", "c"})
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c"}, prompts)
		require.Len(t, embeddings, 3)
		assert.Equal(t, []float32{1}, embeddings[0])
		assert.Equal(t, []float32{3}, embeddings[2])
	})

	t.Run("first failure aborts the batch", func(t *testing.T) {
		calls := 0
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 2 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"embedding": [0.1]}`))
		})

		_, err := svc.EmbedBatch(context.Background(), []string{"a", "b", "c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "embed text 1")
		assert.Equal(t, 2, calls)
	})
}

func TestEmbeddingService_Ping(t *testing.T) {
	t.Run("checks the tags endpoint", func(t *testing.T) {
		var gotPath string
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"models":[]}`))
		})

		require.NoError(t, svc.Ping(context.Background()))
		assert.Equal(t, "/api/tags", gotPath)
	})

	t.Run("fails on non-200", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		assert.Error(t, svc.Ping(context.Background()))
	})
}
