package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/pkg/response"
)

// Theme 每日主题，服务不可用时返回固定主题
// @Summary 每日主题
// @Tags 内容建议
// @Produce json
// @Success 200 {object} response.Response{data=model.DailyTheme}
// @Router /api/v1/theme [get]
func (h *Handler) Theme(c *gin.Context) {
	response.Success(c, h.advisor.DailyTheme(c.Request.Context()))
}

// Prompt 创作提示
// @Summary 创作提示
// @Tags 内容建议
// @Produce json
// @Param emotion query string false "当前情绪"
// @Success 200 {object} response.Response{data=map[string]string}
// @Failure 400 {object} response.Response
// @Router /api/v1/prompt [get]
func (h *Handler) Prompt(c *gin.Context) {
	emotion := c.DefaultQuery("emotion", "Unknown")
	if emotion != "Unknown" {
		if _, err := model.ParseEmotion(emotion); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	response.Success(c, gin.H{"emotion": emotion, "prompt": h.advisor.CreativePrompt(c.Request.Context(), emotion)})
}

// Pulse 社区脉搏
// @Summary 社区最近动态
// @Tags 内容建议
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/pulse [get]
func (h *Handler) Pulse(c *gin.Context) {
	if h.pulse == nil {
		response.Success(c, router.DefaultPulse)
		return
	}
	response.Success(c, h.pulse.Lines(c.Request.Context()))
}
