package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/softspace/internal/model"
)

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(Deps{}, time.Hour)

	a := r.Create()
	b := r.Create()
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 2, r.Count())

	got, ok := r.Get(a.ID())
	require.True(t, ok)
	assert.Same(t, a, got)

	r.Remove(a.ID())
	_, ok = r.Get(a.ID())
	assert.False(t, ok)
	assert.Equal(t, 1, r.Count())
}

func TestSessionsAreIsolated(t *testing.T) {
	r := NewRegistry(Deps{}, time.Hour)
	a, b := r.Create(), r.Create()

	_, err := a.React("1", "")
	require.NoError(t, err)

	pa, _ := findPost(a.State().Posts, "1")
	pb, _ := findPost(b.State().Posts, "1")
	assert.Equal(t, 5, pa.Reactions[model.WitnessReaction])
	assert.Equal(t, 4, pb.Reactions[model.WitnessReaction])
}

func TestRegistrySweepEvictsIdle(t *testing.T) {
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	r := NewRegistry(Deps{Now: clock}, 30*time.Minute)

	idle := r.Create()
	ch, _ := idle.Subscribe()

	now = now.Add(20 * time.Minute)
	active := r.Create()

	now = now.Add(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep(now))

	_, ok := r.Get(idle.ID())
	assert.False(t, ok)
	_, ok = r.Get(active.ID())
	assert.True(t, ok)

	_, open := <-ch
	assert.False(t, open)
}

func TestSweepDisabledWithoutTTL(t *testing.T) {
	r := NewRegistry(Deps{}, 0)
	r.Create()
	assert.Zero(t, r.Sweep(time.Now().Add(24*time.Hour)))
	assert.Equal(t, 1, r.Count())
}
