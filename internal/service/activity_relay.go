package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/repository"
	"github.com/d60-Lab/softspace/internal/store"
	"github.com/d60-Lab/softspace/pkg/logger"
)

type relayJob struct {
	activity model.Activity
	enqAt    time.Time
}

// ActivityRelay 本地异步写动态流水；队列满时丢弃，不阻塞会话
type ActivityRelay struct {
	repo      repository.ActivityRepository
	ch        chan relayJob
	metricsCh chan time.Duration
	onWritten []func(context.Context)
}

func NewActivityRelay(repo repository.ActivityRepository, queueSize int) *ActivityRelay {
	if queueSize <= 0 {
		queueSize = 10000
	}
	return &ActivityRelay{
		repo:      repo,
		ch:        make(chan relayJob, queueSize),
		metricsCh: make(chan time.Duration, 4096),
	}
}

// OnWritten 注册写入成功后的回调（脉搏缓存失效）；须在 Start 之前调用
func (r *ActivityRelay) OnWritten(fn func(context.Context)) {
	r.onWritten = append(r.onWritten, fn)
}

// Start 启动 workers 个消费者，返回的函数停止消费并写完队列中剩余的条目
func (r *ActivityRelay) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 2
	}
	stopCh := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case job := <-r.ch:
					r.write(job)
				case <-stopCh:
					for {
						select {
						case job := <-r.ch:
							r.write(job)
						default:
							return
						}
					}
				}
			}
		}()
	}

	var once sync.Once
	return func(ctx context.Context) error {
		once.Do(func() { close(stopCh) })
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *ActivityRelay) write(job relayJob) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a := job.activity
	if err := r.repo.Create(ctx, &a); err != nil {
		logger.Warn("activity write failed",
			zap.String("session", a.SessionID),
			zap.String("kind", string(a.Kind)),
			zap.Error(err),
		)
		return
	}
	for _, fn := range r.onWritten {
		fn(ctx)
	}
	select {
	case r.metricsCh <- time.Since(job.enqAt):
	default:
	}
}

// Enqueue 非阻塞入队，返回是否成功
func (r *ActivityRelay) Enqueue(a model.Activity) bool {
	select {
	case r.ch <- relayJob{activity: a, enqAt: time.Now()}:
		return true
	default:
		logger.Warn("activity queue full, drop",
			zap.String("session", a.SessionID),
			zap.String("kind", string(a.Kind)),
		)
		return false
	}
}

// Listener 把会话的状态变更转成动态流水
func (r *ActivityRelay) Listener(sessionID string) store.Listener {
	return func(m store.Mutation) {
		if a, ok := ActivityFromMutation(sessionID, m); ok {
			r.Enqueue(a)
		}
	}
}

// Metrics 返回写入落地耗时的只读通道
func (r *ActivityRelay) Metrics() <-chan time.Duration { return r.metricsCh }

// QueueLen 当前队列长度（采样值）
func (r *ActivityRelay) QueueLen() int { return len(r.ch) }

var mutationKinds = map[store.MutationKind]model.ActivityKind{
	store.MutationOnboarded:   model.ActivityOnboarded,
	store.MutationPostCreated: model.ActivityPostCreated,
	store.MutationReacted:     model.ActivityReaction,
	store.MutationCommented:   model.ActivityComment,
	store.MutationCheckedIn:   model.ActivityCheckIn,
	store.MutationLoggedOut:   model.ActivityLogout,
}

// ActivityFromMutation 视图切换不记录
func ActivityFromMutation(sessionID string, m store.Mutation) (model.Activity, bool) {
	kind, ok := mutationKinds[m.Kind]
	if !ok {
		return model.Activity{}, false
	}
	return model.Activity{
		SessionID:   sessionID,
		Kind:        kind,
		ActorName:   m.Actor,
		PostID:      m.PostID,
		ContentType: m.Type,
		Emotion:     m.Emotion,
		CreatedAt:   m.At,
	}, true
}
