package handler

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/pkg/logger"
	"github.com/d60-Lab/softspace/pkg/response"
)

type sessionResponse struct {
	Token     string        `json:"token"`
	SessionID string        `json:"session_id"`
	Screen    router.Screen `json:"screen"`
}

// CreateSession 创建会话
// @Summary 创建会话
// @Description 每个会话拥有独立的内存状态，返回会话令牌与初始界面
// @Tags 会话
// @Produce json
// @Success 201 {object} response.Response{data=sessionResponse}
// @Failure 500 {object} response.Response
// @Router /api/v1/sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	s := h.registry.Create()
	token, err := h.tokens.Issue(s.ID())
	if err != nil {
		h.registry.Remove(s.ID())
		response.InternalError(c, err)
		return
	}
	logger.Info("session created", zap.String("session", s.ID()), zap.Int("active", h.registry.Count()))
	response.Created(c, sessionResponse{Token: token, SessionID: s.ID(), Screen: s.Screen()})
}

// Screen 当前界面
// @Summary 渲染当前界面
// @Tags 会话
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 401 {object} response.Response
// @Router /api/v1/screen [get]
func (h *Handler) Screen(c *gin.Context) {
	response.Success(c, session(c).Screen())
}

// Events 界面推送
// @Summary 订阅界面重渲染（SSE）
// @Description 连接后立即推送一次 screen 事件，之后每次状态变化推送一次；定期发送 ping
// @Tags 会话
// @Produce text/event-stream
// @Param token query string false "会话令牌（EventSource 无法设置请求头）"
// @Success 200 {object} router.Screen
// @Failure 401 {object} response.Response
// @Router /api/v1/events [get]
func (h *Handler) Events(c *gin.Context) {
	s := session(c)
	frames, cancel := s.Subscribe()
	defer cancel()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	c.SSEvent("screen", s.Screen())
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case screen, ok := <-frames:
			if !ok {
				return false
			}
			c.SSEvent("screen", screen)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"at": time.Now().Unix()})
			return true
		case <-ctx.Done():
			return false
		}
	})
	logger.Debug("event stream closed", zap.String("session", s.ID()))
}

// Health 存活探针
// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Success 200 {object} response.Response
// @Router /healthz [get]
func (h *Handler) Health(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok", "sessions": h.registry.Count()})
}
