package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/pkg/logger"
)

// Registry 会话表；空闲超过 idleTTL 的会话由清理协程回收
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	deps     Deps
	idleTTL  time.Duration
}

func NewRegistry(deps Deps, idleTTL time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		deps:     deps.withDefaults(),
		idleTTL:  idleTTL,
	}
}

func (r *Registry) Create() *Session {
	s := NewSession(uuid.NewString(), r.deps)
	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.Close()
	}
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep 回收空闲会话，返回回收数量
func (r *Registry) Sweep(now time.Time) int {
	if r.idleTTL <= 0 {
		return 0
	}
	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if now.Sub(s.LastSeen()) > r.idleTTL {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()
	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		logger.Info("idle sessions evicted", zap.Int("count", len(expired)), zap.Int("remaining", r.Count()))
	}
	return len(expired)
}

// StartJanitor 周期清理，返回停止函数
func (r *Registry) StartJanitor(interval time.Duration) func() {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	stopCh := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Sweep(r.deps.Now())
			case <-stopCh:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(stopCh) }) }
}

// Close 关闭全部会话
func (r *Registry) Close() {
	r.mu.Lock()
	all := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()
	for _, s := range all {
		s.Close()
	}
}
