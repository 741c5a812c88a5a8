package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/repository"
	"github.com/d60-Lab/softspace/internal/service"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func mustDo(err error) {
	if err != nil {
		panic(err)
	}
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
}

type scenarioResult struct {
	durations []time.Duration
	counters  service.PulseCounters
}

func main() {
	ctx := context.Background()

	ROWS := envInt("ROWS", 50000)
	READS := envInt("READS", 5000)
	WRITE_EVERY := envInt("WRITE_EVERY", 250) // 每隔多少次读写入一条动态并失效缓存

	db := must(gorm.Open(sqlite.Open("file:pulsebench?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}))
	sqlDB := must(db.DB())
	sqlDB.SetMaxOpenConns(1)
	mustDo(db.AutoMigrate(&model.Activity{}))

	fmt.Printf("Seeding %d activity rows...\n", ROWS)
	rows := make([]model.Activity, ROWS)
	base := time.Now().Add(-time.Duration(ROWS) * time.Second)
	kinds := []model.ActivityKind{
		model.ActivityPostCreated, model.ActivityCheckIn, model.ActivityComment,
		model.ActivityReaction, model.ActivityOnboarded, model.ActivityLogout,
	}
	for i := range rows {
		rows[i] = model.Activity{
			ID:          uuid.NewString(),
			SessionID:   fmt.Sprintf("s%d", i%500),
			Kind:        kinds[i%len(kinds)],
			ActorName:   fmt.Sprintf("user_%d", i%500),
			ContentType: model.CreatableContentTypes[i%len(model.CreatableContentTypes)],
			Emotion:     model.AllEmotions[i%len(model.AllEmotions)],
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
	}
	mustDo(db.CreateInBatches(&rows, 1000).Error)

	client := connectRedis(ctx)
	defer client.Close()

	repo := repository.NewActivityRepository(db)
	noCache := service.NewPulseService(repo, nil, time.Minute)
	cached := service.NewPulseService(repo, client, time.Minute)

	a := run(ctx, repo, noCache, READS, WRITE_EVERY)
	b := run(ctx, repo, cached, READS, WRITE_EVERY)

	fmt.Printf("\nCommunity pulse latency (%d reads, %d rows, write every %d reads)\n", READS, ROWS, WRITE_EVERY)
	for _, r := range []struct {
		name string
		res  scenarioResult
	}{{"No cache", a}, {"Redis cache-aside", b}} {
		fmt.Printf("%-18s avg=%v p95=%v p99=%v db_loads=%d cache_hits=%d\n",
			r.name, avg(r.res.durations), pct(r.res.durations, 0.95), pct(r.res.durations, 0.99),
			r.res.counters.DBLoads, r.res.counters.CacheHits)
	}
}

// connectRedis 优先使用 REDIS_ADDR，连不上时退回进程内 miniredis
func connectRedis(ctx context.Context) *redis.Client {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(ctx).Err(); err == nil {
			fmt.Printf("Using redis at %s\n", addr)
			return client
		}
		_ = client.Close()
		fmt.Printf("Redis at %s unreachable, falling back to miniredis\n", addr)
	}
	mr := must(miniredis.Run())
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func run(ctx context.Context, repo repository.ActivityRepository, svc *service.PulseService, reads, writeEvery int) scenarioResult {
	svc.Invalidate(ctx)
	svc.ResetCounters()

	out := make([]time.Duration, 0, reads)
	for i := 0; i < reads; i++ {
		if i > 0 && i%writeEvery == 0 {
			mustDo(repo.Create(ctx, &model.Activity{Kind: model.ActivityCheckIn, ActorName: "bench", Emotion: model.EmotionCalm}))
			svc.Invalidate(ctx)
		}
		start := time.Now()
		if _, err := svc.Recent(ctx, service.DefaultPulseSize); err != nil {
			panic(err)
		}
		out = append(out, time.Since(start))
	}
	return scenarioResult{durations: out, counters: svc.Counters()}
}

func avg(vs []time.Duration) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range vs {
		sum += v
	}
	return sum / time.Duration(len(vs))
}

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 {
		return 0
	}
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 {
		k = 0
	}
	if k >= len(xs) {
		k = len(xs) - 1
	}
	return xs[k]
}
