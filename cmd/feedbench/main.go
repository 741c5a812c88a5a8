package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/d60-Lab/softspace/config"
	"github.com/d60-Lab/softspace/internal/advisory"
	"github.com/d60-Lab/softspace/internal/app"
	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/repository"
	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/internal/service"
	"github.com/d60-Lab/softspace/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return v
		}
	}
	return def
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

// journey 单个会话的一轮完整操作：入驻、打卡、发帖、见证、评论、筛选
func journey(s *app.Session, i int, record func(op string, d time.Duration)) {
	step := func(op string, fn func() (router.Screen, error)) {
		start := time.Now()
		if _, err := fn(); err != nil {
			panic(fmt.Sprintf("%s: %v", op, err))
		}
		record(op, time.Since(start))
	}
	text := fmt.Sprintf("note %d", i)
	emotion := model.AllEmotions[i%len(model.AllEmotions)]

	step("join", s.Join)
	step("name", func() (router.Screen, error) { return s.SetName(fmt.Sprintf("bench-%d", i)) })
	for k := 0; k < 3; k++ {
		step("onboarding_next", s.OnboardingNext)
	}
	step("checkin", func() (router.Screen, error) { return s.CheckIn(emotion) })
	step("create_open", s.OpenCreate)
	step("create_select", func() (router.Screen, error) { return s.SelectType(model.ContentWriting) })
	step("create_draft", func() (router.Screen, error) { return s.UpdateDraft(app.DraftUpdate{Content: &text}) })
	step("create_submit", s.SubmitCreate)
	step("react", func() (router.Screen, error) { return s.React("2", "") })
	step("composer", func() (router.Screen, error) { return s.ToggleComposer("1") })
	step("composer_text", func() (router.Screen, error) { return s.SetCommentText(text) })
	step("comment", s.SubmitComment)
	step("filter", func() (router.Screen, error) { return s.SetFilter(model.FilterOf(model.ContentWriting)) })
	step("screen", func() (router.Screen, error) { return s.Screen(), nil })
}

func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))

	SESSIONS := envInt("SESSIONS", 2000)
	WORKERS := envInt("WORKERS", 16)
	RELAY := envInt("RELAY_WORKERS", 4)
	QUEUE := envInt("QUEUE", 50000)

	_ = db.Exec("DELETE FROM activities").Error

	repo := repository.NewActivityRepository(db)
	relay := service.NewActivityRelay(repo, QUEUE)
	stopRelay := relay.Start(RELAY)

	registry := app.NewRegistry(app.Deps{
		Advisor:  advisory.NewService(advisory.MockGenerator{}),
		Activity: relay,
	}, 0)

	var mu sync.Mutex
	byOp := map[string][]time.Duration{}
	record := func(op string, d time.Duration) {
		mu.Lock()
		byOp[op] = append(byOp[op], d)
		mu.Unlock()
	}

	landed := make([]time.Duration, 0, SESSIONS*8)
	collectDone := make(chan struct{})
	stopCollect := make(chan struct{})
	go func() {
		defer close(collectDone)
		for {
			select {
			case d := <-relay.Metrics():
				landed = append(landed, d)
			case <-stopCollect:
				for {
					select {
					case d := <-relay.Metrics():
						landed = append(landed, d)
					default:
						return
					}
				}
			}
		}
	}()

	jobs := make(chan int)
	var wg sync.WaitGroup
	begin := time.Now()
	for w := 0; w < WORKERS; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := registry.Create()
				journey(s, i, record)
				s.Wait()
			}
		}()
	}
	for i := 0; i < SESSIONS; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(begin)

	peak := relay.QueueLen()
	drainStart := time.Now()
	if err := stopRelay(context.Background()); err != nil {
		panic(err)
	}
	drain := time.Since(drainStart)

	close(stopCollect)
	<-collectDone

	counts := must(repo.CountByKind(context.Background()))

	fmt.Printf("Session journeys: sessions=%d workers=%d elapsed=%v queue_after=%d drain=%v\n",
		SESSIONS, WORKERS, elapsed, peak, drain)
	ops := make([]string, 0, len(byOp))
	for op := range byOp {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		vs := byOp[op]
		fmt.Printf("%-16s n=%-6d avg=%-10v p95=%-10v p99=%v\n", op, len(vs), avg(vs), pct(vs, 0.95), pct(vs, 0.99))
	}
	fmt.Printf("activity rows: %v\n", counts)
	fmt.Printf("relay landing (sampled %d): p50=%v p95=%v p99=%v\n",
		len(landed), pct(landed, 0.50), pct(landed, 0.95), pct(landed, 0.99))
}
