package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/repository"
	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/pkg/logger"
)

const (
	DefaultPulseSize = 3
	pulseKeyPrefix   = "pulse:recent:"
)

// PulseService 社区脉搏：最近动态的文字摘要，redis cache-aside，回源 gorm
type PulseService struct {
	repo  repository.ActivityRepository
	cache *redis.Client
	ttl   time.Duration

	dbLoads   atomic.Int64
	cacheHits atomic.Int64
}

// NewPulseService cache 为 nil 时每次都查库
func NewPulseService(repo repository.ActivityRepository, cache *redis.Client, ttl time.Duration) *PulseService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &PulseService{repo: repo, cache: cache, ttl: ttl}
}

// Recent 返回最多 n 条摘要；没有动态时返回静态内容
func (s *PulseService) Recent(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultPulseSize
	}
	key := fmt.Sprintf("%s%d", pulseKeyPrefix, n)
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var out []string
			if uErr := json.Unmarshal(data, &out); uErr == nil {
				s.cacheHits.Add(1)
				return out, nil
			}
		}
	}

	lines, err := s.load(ctx, n)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if payload, err := json.Marshal(lines); err == nil {
			_ = s.cache.Set(ctx, key, payload, s.ttl).Err()
		}
	}
	return lines, nil
}

// Lines 供界面使用，出错时记录日志并返回静态内容
func (s *PulseService) Lines(ctx context.Context) []string {
	lines, err := s.Recent(ctx, DefaultPulseSize)
	if err != nil {
		logger.Warn("load community pulse failed", zap.Error(err))
		return router.DefaultPulse
	}
	return lines
}

func (s *PulseService) load(ctx context.Context, n int) ([]string, error) {
	s.dbLoads.Add(1)
	// 多取一些，跳过不展示的类型
	rows, err := s.repo.ListRecent(ctx, 0, n*4)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	lines := make([]string, 0, n)
	for _, a := range rows {
		if line, ok := PulseLine(a); ok {
			lines = append(lines, line)
			if len(lines) == n {
				break
			}
		}
	}
	if len(lines) == 0 {
		return router.DefaultPulse, nil
	}
	return lines, nil
}

// Invalidate 删除所有 pulse:recent:* 缓存
func (s *PulseService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, pulseKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warn("scan pulse cache failed", zap.Error(err))
		return
	}
	if len(keys) > 0 {
		_ = s.cache.Del(ctx, keys...).Err()
	}
}

// PulseLine 把一条动态渲染成一句话；退出等动态不展示
func PulseLine(a *model.Activity) (string, bool) {
	actor := a.ActorName
	if actor == "" {
		actor = "Someone"
	}
	switch a.Kind {
	case model.ActivityOnboarded:
		return fmt.Sprintf("%s joined the space", actor), true
	case model.ActivityPostCreated:
		return fmt.Sprintf("%s shared a piece of %s", actor, strings.ToLower(string(a.ContentType))), true
	case model.ActivityCheckIn:
		return fmt.Sprintf("%s checked in feeling %s", actor, a.Emotion), true
	case model.ActivityComment:
		return fmt.Sprintf("%s left a note for someone", actor), true
	case model.ActivityReaction:
		return fmt.Sprintf("%s witnessed a piece of %s", actor, strings.ToLower(string(a.ContentType))), true
	}
	return "", false
}

// ResetCounters 清零统计
func (s *PulseService) ResetCounters() {
	s.dbLoads.Store(0)
	s.cacheHits.Store(0)
}

// Counters 返回回源与命中次数
func (s *PulseService) Counters() PulseCounters {
	return PulseCounters{DBLoads: s.dbLoads.Load(), CacheHits: s.cacheHits.Load()}
}

type PulseCounters struct {
	DBLoads   int64
	CacheHits int64
}
