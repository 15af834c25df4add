package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexjuris/ruling-analyzer/internal/domain"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	id := store.Create(ctx, "ruling text", "ruling.pdf")
	require.NotEmpty(t, id)

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, session.ID)
	assert.Equal(t, "ruling.pdf", session.Filename)
	assert.Equal(t, "ruling text", session.DocumentText)
	assert.NotNil(t, session.Queries)
	assert.Empty(t, session.Queries)
	assert.False(t, session.CreatedAt.IsZero())

	other := store.Create(ctx, "ruling text", "ruling.pdf")
	assert.NotEqual(t, id, other, "identical documents must still get distinct sessions")
}

func TestSessionStore_GetUnknown(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Append(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	id := store.Create(ctx, "text", "f.pdf")

	question := "what was the penalty?"
	n := store.Append(ctx, id, domain.CategoryQuestion, &question, "a fine")
	assert.Equal(t, 1, n)

	n = store.Append(ctx, id, domain.CategoryHolding, nil, "appeal dismissed")
	assert.Equal(t, 2, n)

	n = store.Append(ctx, id, domain.CategoryGeneral, nil, "a civil ruling")
	assert.Equal(t, 3, n)

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, session.Queries, 3)
	assert.Equal(t, domain.CategoryQuestion, session.Queries[0].Category)
	require.NotNil(t, session.Queries[0].Question)
	assert.Equal(t, question, *session.Queries[0].Question)
	assert.Equal(t, "a fine", session.Queries[0].Answer)
	assert.Nil(t, session.Queries[1].Question)
	assert.Equal(t, "a civil ruling", session.Queries[2].Answer)
	assert.False(t, session.Queries[0].Timestamp.IsZero())
}

func TestSessionStore_AppendUnknownIsNoOp(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	n := store.Append(ctx, "no-such-session", domain.CategoryGeneral, nil, "answer")
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, store.Count(ctx), "no session may be created as a side effect")
}

func TestSessionStore_GetReturnsSnapshot(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	id := store.Create(ctx, "text", "f.pdf")
	store.Append(ctx, id, domain.CategoryGeneral, nil, "first")

	snapshot, err := store.Get(ctx, id)
	require.NoError(t, err)
	snapshot.Queries[0].Answer = "tampered"
	snapshot.Queries = append(snapshot.Queries, domain.QueryRecord{Answer: "extra"})

	fresh, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, fresh.Queries, 1)
	assert.Equal(t, "first", fresh.Queries[0].Answer)
}

func TestSessionStore_Count(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	assert.Equal(t, 0, store.Count(ctx))
	store.Create(ctx, "a", "a.pdf")
	store.Create(ctx, "b", "b.pdf")
	assert.Equal(t, 2, store.Count(ctx))
}

func TestSessionStore_ConcurrentAppends(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	id := store.Create(ctx, "text", "f.pdf")

	const goroutines = 8
	const appendsEach = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < appendsEach; i++ {
				store.Append(ctx, id, domain.CategoryGeneral, nil, "answer")
			}
		}()
	}
	wg.Wait()

	session, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, session.Queries, goroutines*appendsEach)
}
