package flow

import "sync/atomic"

// Generation 单调递增的请求代号。异步结果携带发起时的代号，
// 代号不是最新时结果被丢弃，避免旧响应覆盖新状态。
type Generation struct {
	n atomic.Uint64
}

// Next 发起一次新请求，之前的代号全部失效
func (g *Generation) Next() uint64 { return g.n.Add(1) }

func (g *Generation) Current() uint64 { return g.n.Load() }

// Invalidate 让所有在途请求失效（界面离开时调用）
func (g *Generation) Invalidate() { g.n.Add(1) }

func (g *Generation) IsCurrent(token uint64) bool {
	return token != 0 && token == g.n.Load()
}
