package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docent-labs/docent/internal/core/domain"
)

func newTestService(t *testing.T, model string, handler http.HandlerFunc) *EmbeddingService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewEmbeddingService(Config{
		APIKey:            "test-key",
		BaseURL:           server.URL,
		Model:             model,
		RequestsPerSecond: 1000, // keep the limiter out of the way
	})
	require.NoError(t, err)
	return svc
}

func TestNewEmbeddingService(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := NewEmbeddingService(Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, svc.baseURL)
		assert.Equal(t, DefaultModel, svc.ModelName())
		assert.Equal(t, 1536, svc.Dimensions())
	})

	t.Run("knows model dimensions", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{APIKey: "k", Model: "text-embedding-3-large"})
		require.NoError(t, err)
		assert.Equal(t, 3072, svc.Dimensions())
	})

	t.Run("honours a dimension override", func(t *testing.T) {
		svc, err := NewEmbeddingService(Config{APIKey: "k", Dimensions: 256})
		require.NoError(t, err)
		assert.Equal(t, 256, svc.Dimensions())
	})
}

func TestEmbeddingService_EmbedBatch(t *testing.T) {
	t.Run("serialises the request and orders results by index", func(t *testing.T) {
		var gotPath, gotAuth string
		var gotReq embeddingRequest

		svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			// Out-of-order data entries must land back in input order.
			w.Write([]byte(`{
				"data": [
					{"embedding": [0.3, 0.4], "index": 1},
					{"embedding": [0.1, 0.2], "index": 0}
				],
				"usage": {"prompt_tokens": 4, "total_tokens": 4}
			}`))
		})

		embeddings, err := svc.EmbedBatch(context.Background(), []string{"first", "second"})
		require.NoError(t, err)

		assert.Equal(t, "/embeddings", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, DefaultModel, gotReq.Model)
		assert.Equal(t, []string{"first", "second"}, gotReq.Input)
		assert.Equal(t, 1536, gotReq.Dimensions)

		require.Len(t, embeddings, 2)
		assert.Equal(t, []float32{0.1, 0.2}, embeddings[0])
		assert.Equal(t, []float32{0.3, 0.4}, embeddings[1])
	})

	t.Run("omits dimensions for models that reject it", func(t *testing.T) {
		var gotReq embeddingRequest
		svc := newTestService(t, "text-embedding-ada-002", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			w.Write([]byte(`{"data": [{"embedding": [0.1], "index": 0}]}`))
		})

		_, err := svc.EmbedBatch(context.Background(), []string{"text"})
		require.NoError(t, err)
		assert.Zero(t, gotReq.Dimensions)
	})

	t.Run("empty input skips the request", func(t *testing.T) {
		svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		})

		embeddings, err := svc.EmbedBatch(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, embeddings)
	})

	t.Run("maps 429 to ErrRateLimited", func(t *testing.T) {
		svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "rate limit reached", "type": "requests"}}`))
		})

		_, err := svc.EmbedBatch(context.Background(), []string{"text"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrRateLimited)
	})

	t.Run("surfaces API error payloads", func(t *testing.T) {
		svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
		})

		_, err := svc.EmbedBatch(context.Background(), []string{"text"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Incorrect API key provided")
	})

	t.Run("respects context cancellation at the limiter", func(t *testing.T) {
		svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.EmbedBatch(ctx, []string{"text"})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEmbeddingService_Embed(t *testing.T) {
	svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"embedding": [0.5, 0.6, 0.7], "index": 0}]}`))
	})

	embedding, err := svc.Embed(context.Background(), "a single chunk")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.6, 0.7}, embedding)
}

func TestEmbeddingService_Ping(t *testing.T) {
	t.Run("checks the models endpoint with auth", func(t *testing.T) {
		var gotPath, gotAuth string
		svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"data": []}`))
		})

		require.NoError(t, svc.Ping(context.Background()))
		assert.Equal(t, "/models", gotPath)
		assert.Equal(t, "Bearer test-key", gotAuth)
	})

	t.Run("fails on non-200", func(t *testing.T) {
		svc := newTestService(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		assert.Error(t, svc.Ping(context.Background()))
	})
}
