// Package app 组合根：每个会话持有一个独立的状态容器、界面状态机与订阅者，
// 所有处理函数在会话锁内串行执行，执行完成后重新渲染并推送给订阅者。
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/internal/advisory"
	"github.com/d60-Lab/softspace/internal/flow"
	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/internal/store"
	"github.com/d60-Lab/softspace/pkg/logger"
)

var (
	ErrNotOnboarding = errors.New("onboarding is not active")
	ErrCreateClosed  = errors.New("creation is not open")
	ErrSessionClosed = errors.New("session closed")
)

const (
	subscriberBuffer = 8
	unknownEmotion   = "Unknown"
)

// PulseSource 社区脉搏
type PulseSource interface {
	Lines(ctx context.Context) []string
}

// ActivitySink 接收会话状态变更
type ActivitySink interface {
	Listener(sessionID string) store.Listener
}

// Deps 会话共享的外部依赖；零值可用，全部回落为本地兜底
type Deps struct {
	Advisor         advisory.Advisor
	Pulse           PulseSource
	Activity        ActivitySink
	AdvisoryTimeout time.Duration
	Now             func() time.Time
	NewID           func() string
	Seed            func(now time.Time) []*model.Post
}

func (d Deps) withDefaults() Deps {
	if d.Advisor == nil {
		d.Advisor = advisory.NewService(nil)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Seed == nil {
		d.Seed = model.SeedPosts
	}
	return d
}

type Session struct {
	id   string
	deps Deps

	mu          sync.Mutex
	store       *store.Store
	onboarding  *flow.Onboarding
	creation    *flow.Creation
	checkInOpen bool
	feed        *flow.FeedState
	theme       *model.DailyTheme
	themeGen    flow.Generation
	pulse       []string
	subs        map[uint64]chan router.Screen
	nextSub     uint64
	lastSeen    time.Time
	closed      bool

	pending sync.WaitGroup
}

func NewSession(id string, deps Deps) *Session {
	deps = deps.withDefaults()
	opts := []store.Option{store.WithClock(deps.Now)}
	if deps.NewID != nil {
		opts = append(opts, store.WithIDGenerator(deps.NewID))
	}
	if deps.Activity != nil {
		opts = append(opts, store.WithListener(deps.Activity.Listener(id)))
	}
	s := &Session{
		id:         id,
		deps:       deps,
		store:      store.New(deps.Seed(deps.Now()), opts...),
		onboarding: flow.NewOnboarding(),
		subs:       make(map[uint64]chan router.Screen),
		lastSeen:   deps.Now(),
	}
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Screen 渲染当前界面
func (s *Session) Screen() router.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.deps.Now()
	return s.renderLocked()
}

// State 当前状态快照
func (s *Session) State() store.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Subscribe 订阅重渲染结果。发送不阻塞，消费慢的订阅者会丢帧。
func (s *Session) Subscribe() (<-chan router.Screen, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan router.Screen, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	s.nextSub++
	id := s.nextSub
	s.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close 使在途请求失效并关闭所有订阅
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.themeGen.Invalidate()
	if s.creation != nil {
		s.creation.Close()
	}
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// Wait 等待在途的异步请求结束
func (s *Session) Wait() { s.pending.Wait() }

// apply 在锁内执行 fn，处理视图切换的副作用，然后渲染并推送
func (s *Session) apply(fn func() error) (router.Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return router.Screen{}, ErrSessionClosed
	}
	s.lastSeen = s.deps.Now()
	before := s.store.View()
	err := fn()
	if after := s.store.View(); after != before {
		s.enterViewLocked(before, after)
	}
	screen := s.renderLocked()
	s.publishLocked(screen)
	return screen, err
}

func (s *Session) enterViewLocked(from, to model.ViewState) {
	if from == model.ViewDashboard {
		s.themeGen.Invalidate()
	}
	s.feed = nil
	if cfg, ok := router.FeedConfigFor(to); ok {
		s.feed = flow.NewFeedState(cfg.Filter)
	}
	switch to {
	case model.ViewOnboarding:
		s.onboarding = flow.NewOnboarding()
	case model.ViewDashboard:
		s.theme = nil
		s.fetchDashboardLocked(s.themeGen.Next())
	case model.ViewLanding:
		s.checkInOpen = false
		if s.creation != nil {
			s.creation.Close()
			s.creation = nil
		}
	}
}

func (s *Session) renderLocked() router.Screen {
	state := s.store.Snapshot()
	return router.Render(router.Input{
		View:        state.View,
		User:        state.CurrentUser,
		Posts:       state.Posts,
		Now:         s.deps.Now(),
		Onboarding:  s.onboarding,
		Feed:        s.feed,
		Creation:    s.creation,
		CheckInOpen: s.checkInOpen,
		Theme:       s.theme,
		Pulse:       s.pulse,
	})
}

func (s *Session) publishLocked(screen router.Screen) {
	for id, ch := range s.subs {
		select {
		case ch <- screen:
		default:
			logger.Debug("subscriber lagging, frame dropped",
				zap.String("session", s.id),
				zap.Uint64("subscriber", id),
			)
		}
	}
}

func (s *Session) advisoryContext() (context.Context, context.CancelFunc) {
	if s.deps.AdvisoryTimeout > 0 {
		return context.WithTimeout(context.Background(), s.deps.AdvisoryTimeout)
	}
	return context.WithCancel(context.Background())
}

// fetchDashboardLocked 异步获取主题与社区脉搏；结果只在代号仍有效时应用
func (s *Session) fetchDashboardLocked(token uint64) {
	advisor, pulse := s.deps.Advisor, s.deps.Pulse
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := s.advisoryContext()
		defer cancel()

		if pulse != nil {
			lines := pulse.Lines(ctx)
			s.resolve(func() bool {
				if !s.themeGen.IsCurrent(token) {
					return false
				}
				s.pulse = lines
				return true
			})
		}

		theme := advisor.DailyTheme(ctx)
		applied := s.resolve(func() bool {
			if !s.themeGen.IsCurrent(token) {
				return false
			}
			s.theme = &theme
			return true
		})
		if !applied {
			logger.Debug("stale daily theme discarded", zap.String("session", s.id))
		}
	}()
}

func (s *Session) fetchPromptLocked(c *flow.Creation, token uint64, emotion string) {
	advisor := s.deps.Advisor
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := s.advisoryContext()
		defer cancel()

		prompt := advisor.CreativePrompt(ctx, emotion)
		applied := s.resolve(func() bool {
			return s.creation == c && c.ResolvePrompt(token, prompt)
		})
		if !applied {
			logger.Debug("stale creative prompt discarded", zap.String("session", s.id))
		}
	}()
}

// resolve 在锁内应用异步结果；apply 返回 true 时重渲染并推送
func (s *Session) resolve(apply func() bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !apply() {
		return false
	}
	s.publishLocked(s.renderLocked())
	return true
}
