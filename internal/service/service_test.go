package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/repository"
	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/internal/store"
)

func newRepo(t *testing.T) repository.ActivityRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.Activity{}))
	return repository.NewActivityRepository(db)
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestActivityFromMutation(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	a, ok := ActivityFromMutation("s1", store.Mutation{
		Kind: store.MutationCheckedIn, Actor: "Ada", PostID: "p1",
		Type: model.ContentCheckIn, Emotion: model.EmotionCalm, At: at,
	})
	require.True(t, ok)
	assert.Equal(t, model.ActivityCheckIn, a.Kind)
	assert.Equal(t, "s1", a.SessionID)
	assert.Equal(t, model.EmotionCalm, a.Emotion)
	assert.Equal(t, at, a.CreatedAt)

	_, ok = ActivityFromMutation("s1", store.Mutation{Kind: store.MutationViewChanged})
	assert.False(t, ok)
}

func TestRelayWritesAndDrainsOnStop(t *testing.T) {
	repo := newRepo(t)
	relay := NewActivityRelay(repo, 16)

	var written int
	relay.OnWritten(func(context.Context) { written++ })

	for i := 0; i < 5; i++ {
		require.True(t, relay.Enqueue(model.Activity{SessionID: "s1", Kind: model.ActivityReaction}))
	}
	stop := relay.Start(1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, stop(ctx))

	list, err := repo.ListRecent(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 5)
	assert.Equal(t, 5, written)
	assert.Zero(t, relay.QueueLen())
}

func TestRelayDropsWhenFull(t *testing.T) {
	relay := NewActivityRelay(newRepo(t), 1)

	assert.True(t, relay.Enqueue(model.Activity{Kind: model.ActivityComment}))
	assert.False(t, relay.Enqueue(model.Activity{Kind: model.ActivityComment}))
	assert.Equal(t, 1, relay.QueueLen())
}

func TestRelayListenerSkipsViewChanges(t *testing.T) {
	relay := NewActivityRelay(newRepo(t), 8)
	listen := relay.Listener("s1")

	listen(store.Mutation{Kind: store.MutationViewChanged, View: model.ViewFeed})
	listen(store.Mutation{Kind: store.MutationOnboarded, Actor: "Ada"})
	assert.Equal(t, 1, relay.QueueLen())
}

func TestPulseDefaultsWhenEmpty(t *testing.T) {
	svc := NewPulseService(newRepo(t), nil, time.Minute)
	lines, err := svc.Recent(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, router.DefaultPulse, lines)
}

func TestPulseCacheAside(t *testing.T) {
	repo := newRepo(t)
	mr, client := newRedis(t)
	svc := NewPulseService(repo, client, time.Minute)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &model.Activity{
		Kind: model.ActivityPostCreated, ActorName: "Ada", ContentType: model.ContentWriting, CreatedAt: base,
	}))
	require.NoError(t, repo.Create(ctx, &model.Activity{
		Kind: model.ActivityLogout, ActorName: "Ada", CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Create(ctx, &model.Activity{
		Kind: model.ActivityCheckIn, ActorName: "Bo", Emotion: model.EmotionCalm, CreatedAt: base.Add(2 * time.Minute),
	}))

	lines, err := svc.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bo checked in feeling Calm", "Ada shared a piece of writing"}, lines)
	assert.True(t, mr.Exists("pulse:recent:3"))

	_, err = svc.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, PulseCounters{DBLoads: 1, CacheHits: 1}, svc.Counters())

	svc.Invalidate(ctx)
	assert.False(t, mr.Exists("pulse:recent:3"))

	svc.ResetCounters()
	_, err = svc.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), svc.Counters().DBLoads)
}

func TestRelayInvalidatesPulse(t *testing.T) {
	repo := newRepo(t)
	mr, client := newRedis(t)
	pulse := NewPulseService(repo, client, time.Minute)
	ctx := context.Background()

	_, err := pulse.Recent(ctx, 3)
	require.NoError(t, err)
	require.True(t, mr.Exists("pulse:recent:3"))

	relay := NewActivityRelay(repo, 8)
	relay.OnWritten(pulse.Invalidate)
	relay.Enqueue(model.Activity{Kind: model.ActivityOnboarded, ActorName: "Cy"})
	require.NoError(t, relay.Start(1)(ctx))

	assert.False(t, mr.Exists("pulse:recent:3"))
	assert.Equal(t, []string{"Cy joined the space"}, pulse.Lines(ctx))
}

func TestPulseLine(t *testing.T) {
	line, ok := PulseLine(&model.Activity{Kind: model.ActivityReaction, ContentType: model.ContentArt})
	require.True(t, ok)
	assert.Equal(t, "Someone witnessed a piece of art", line)

	_, ok = PulseLine(&model.Activity{Kind: model.ActivityLogout, ActorName: "Ada"})
	assert.False(t, ok)
}
