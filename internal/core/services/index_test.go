package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docent-labs/docent/internal/core/domain"
)

func newTestIndex(store *mockVectorStore) *Index {
	return NewIndex(store, NewEmbedder(newMockEmbeddingService(), 10), 5)
}

func testChunk(source string, index, page int, text string) domain.Chunk {
	return domain.Chunk{
		Text:       text,
		PageNumber: page,
		Index:      index,
		SourceFile: source,
	}
}

func TestIndexAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("empty input is a no-op", func(t *testing.T) {
		store := newMockVectorStore()
		index := newTestIndex(store)

		require.NoError(t, index.Add(ctx, nil, nil))
		assert.Empty(t, store.records)
	})

	t.Run("stores one vector per chunk with derived IDs", func(t *testing.T) {
		store := newMockVectorStore()
		index := newTestIndex(store)

		chunks := []domain.Chunk{
			testChunk("report.pdf", 0, 1, "vector databases store embeddings"),
			testChunk("report.pdf", 1, 2, "cosine distance ranks neighbours"),
		}
		require.NoError(t, index.Add(ctx, chunks, nil))

		require.Len(t, store.records, 2)
		record, ok := store.records["report.pdf_0"]
		require.True(t, ok)
		assert.Equal(t, "vector databases store embeddings", record.Document)
		assert.Equal(t, 1, record.Metadata.PageNumber)
		assert.Equal(t, 0, record.Metadata.ChunkIndex)
		assert.Equal(t, "report.pdf", record.Metadata.SourceFile)
	})

	t.Run("re-adding the same chunk overwrites", func(t *testing.T) {
		store := newMockVectorStore()
		index := newTestIndex(store)

		first := []domain.Chunk{testChunk("a.pdf", 0, 1, "old text")}
		require.NoError(t, index.Add(ctx, first, nil))
		second := []domain.Chunk{testChunk("a.pdf", 0, 1, "new text")}
		require.NoError(t, index.Add(ctx, second, nil))

		require.Len(t, store.records, 1)
		assert.Equal(t, "new text", store.records["a.pdf_0"].Document)
	})

	t.Run("nil store reports vector store unavailable", func(t *testing.T) {
		index := NewIndex(nil, NewEmbedder(newMockEmbeddingService(), 10), 5)
		err := index.Add(ctx, []domain.Chunk{testChunk("a.pdf", 0, 1, "text")}, nil)
		assert.ErrorIs(t, err, domain.ErrVectorStoreUnavailable)
	})
}

func TestIndexSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip returns the added chunk", func(t *testing.T) {
		store := newMockVectorStore()
		index := newTestIndex(store)

		chunk := testChunk("guide.pdf", 3, 2, "sqlite stores vectors as blobs")
		require.NoError(t, index.Add(ctx, []domain.Chunk{chunk}, nil))

		results, err := index.Search(ctx, chunk.Text, 1)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "guide.pdf", results[0].Metadata.SourceFile)
		assert.Equal(t, 3, results[0].Metadata.ChunkIndex)
		assert.InDelta(t, 0, results[0].Distance, 1e-6)
	})

	t.Run("empty index yields empty slice, not an error", func(t *testing.T) {
		index := newTestIndex(newMockVectorStore())

		results, err := index.Search(ctx, "anything", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("blank query yields empty slice", func(t *testing.T) {
		store := newMockVectorStore()
		index := newTestIndex(store)
		require.NoError(t, index.Add(ctx, []domain.Chunk{testChunk("a.pdf", 0, 1, "text")}, nil))

		results, err := index.Search(ctx, "   ", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("results are ascending by distance and capped at k", func(t *testing.T) {
		store := newMockVectorStore()
		index := newTestIndex(store)

		chunks := []domain.Chunk{
			testChunk("a.pdf", 0, 1, "cats are lazy"),
			testChunk("a.pdf", 1, 1, "dogs run fast"),
			testChunk("a.pdf", 2, 2, "fish swim deep"),
		}
		require.NoError(t, index.Add(ctx, chunks, nil))

		results, err := index.Search(ctx, "cats are lazy", 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.LessOrEqual(t, results[0].Distance, results[1].Distance)
		assert.Equal(t, "cats are lazy", results[0].Text)
	})

	t.Run("non-positive k selects the configured default", func(t *testing.T) {
		store := newMockVectorStore()
		index := NewIndex(store, NewEmbedder(newMockEmbeddingService(), 10), 2)

		chunks := []domain.Chunk{
			testChunk("a.pdf", 0, 1, "one"),
			testChunk("a.pdf", 1, 1, "two"),
			testChunk("a.pdf", 2, 1, "three"),
		}
		require.NoError(t, index.Add(ctx, chunks, nil))

		results, err := index.Search(ctx, "one", 0)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})
}

func TestIndexDeleteDocument(t *testing.T) {
	ctx := context.Background()
	store := newMockVectorStore()
	index := newTestIndex(store)

	require.NoError(t, index.Add(ctx, []domain.Chunk{
		testChunk("keep.pdf", 0, 1, "kept text"),
		testChunk("drop.pdf", 0, 1, "dropped text"),
		testChunk("drop.pdf", 1, 2, "more dropped text"),
	}, nil))

	require.NoError(t, index.DeleteDocument(ctx, "drop.pdf"))

	sources, err := index.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.pdf"}, sources)

	results, err := index.Search(ctx, "dropped text", 5)
	require.NoError(t, err)
	for _, result := range results {
		assert.NotEqual(t, "drop.pdf", result.Metadata.SourceFile)
	}

	// Deleting an unknown source is a no-op, not an error.
	require.NoError(t, index.DeleteDocument(ctx, "missing.pdf"))
}

func TestIndexListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("empty index yields empty list", func(t *testing.T) {
		index := newTestIndex(newMockVectorStore())
		sources, err := index.ListDocuments(ctx)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("sources are distinct and sorted", func(t *testing.T) {
		store := newMockVectorStore()
		index := newTestIndex(store)
		require.NoError(t, index.Add(ctx, []domain.Chunk{
			testChunk("b.pdf", 0, 1, "one"),
			testChunk("a.pdf", 0, 1, "two"),
			testChunk("b.pdf", 1, 1, "three"),
		}, nil))

		sources, err := index.ListDocuments(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.pdf", "b.pdf"}, sources)
	})
}
