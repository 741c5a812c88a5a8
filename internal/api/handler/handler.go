package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/softspace/internal/advisory"
	"github.com/d60-Lab/softspace/internal/api/middleware"
	"github.com/d60-Lab/softspace/internal/app"
	"github.com/d60-Lab/softspace/internal/flow"
	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/pkg/response"
)

// PulseReader 社区脉搏
type PulseReader interface {
	Lines(ctx context.Context) []string
}

type Handler struct {
	registry  *app.Registry
	tokens    *middleware.TokenIssuer
	advisor   advisory.Advisor
	pulse     PulseReader
	heartbeat time.Duration
}

type Option func(*Handler)

// WithHeartbeat SSE 心跳间隔
func WithHeartbeat(d time.Duration) Option { return func(h *Handler) { h.heartbeat = d } }

func WithPulse(p PulseReader) Option { return func(h *Handler) { h.pulse = p } }

func New(registry *app.Registry, tokens *middleware.TokenIssuer, advisor advisory.Advisor, opts ...Option) *Handler {
	h := &Handler{
		registry:  registry,
		tokens:    tokens,
		advisor:   advisor,
		heartbeat: 15 * time.Second,
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// 流程中的输入错误返回 400
var inputErrors = []error{
	flow.ErrNameRequired,
	flow.ErrNotCreatable,
	flow.ErrSelectTypeFirst,
	flow.ErrEmotionRequired,
	flow.ErrContentRequired,
	flow.ErrRecordingNotMusic,
}

// respond 成功时返回最新界面
func respond(c *gin.Context, screen router.Screen, err error) {
	if err == nil {
		response.Success(c, screen)
		return
	}
	switch {
	case errors.Is(err, app.ErrSessionClosed):
		response.Unauthorized(c, "session expired")
	case errors.Is(err, app.ErrNotOnboarding), errors.Is(err, app.ErrCreateClosed):
		response.Conflict(c, err.Error())
	case isInputError(err):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}

func isInputError(err error) bool {
	for _, target := range inputErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func session(c *gin.Context) *app.Session { return middleware.SessionFrom(c) }
