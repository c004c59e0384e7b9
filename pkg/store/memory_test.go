package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlandau/wavetrace/pkg/errors"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	d := &Diagram{
		ID:        "abc",
		Name:      "clock",
		Kind:      "signal",
		Source:    json.RawMessage(`{"signal":[{"name":"clk","wave":"p"}]}`),
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.Put(ctx, d))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "clock", got.Name)
	assert.Equal(t, d.Source, got.Source)

	require.NoError(t, s.Delete(ctx, "abc"))
	_, err = s.Get(ctx, "abc")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.GetCode(err))
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, s.Put(ctx, &Diagram{
			ID:        id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[2].ID)
}

func TestMemoryStore_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	err := s.Delete(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.GetCode(err))
}

func TestMemoryStore_PutCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	d := &Diagram{ID: "x", Name: "before"}
	require.NoError(t, s.Put(ctx, d))
	d.Name = "after"

	got, err := s.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "before", got.Name)
}
