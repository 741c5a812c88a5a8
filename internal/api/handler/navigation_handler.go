package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/pkg/response"
)

type navigateRequest struct {
	View string `json:"view" binding:"required,view"`
}

// Navigate 侧边栏导航；需要登录，不允许的迁移保持当前界面
// @Summary 侧边栏导航
// @Tags 导航
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body navigateRequest true "目标视图"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/navigate [post]
func (h *Handler) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).Navigate(model.ViewState(req.View))
	respond(c, screen, err)
}

// NavigateToFeed 首页进入社区
// @Summary 首页进入社区信息流
// @Tags 导航
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/navigate/feed [post]
func (h *Handler) NavigateToFeed(c *gin.Context) {
	screen, err := session(c).NavigateToFeed()
	respond(c, screen, err)
}

// Logout 退出，仅个人页可用；帖子保留
// @Summary 退出
// @Tags 导航
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	screen, err := session(c).Logout()
	respond(c, screen, err)
}

// OpenCheckIn 打开打卡弹窗
// @Summary 打开打卡弹窗
// @Tags 打卡
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/checkin/open [post]
func (h *Handler) OpenCheckIn(c *gin.Context) {
	screen, err := session(c).OpenCheckIn()
	respond(c, screen, err)
}

// CloseCheckIn 关闭打卡弹窗（"Skip for now"）
// @Summary 关闭打卡弹窗
// @Tags 打卡
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/checkin/close [post]
func (h *Handler) CloseCheckIn(c *gin.Context) {
	screen, err := session(c).CloseCheckIn()
	respond(c, screen, err)
}

// CheckIn 打卡
// @Summary 记录当前情绪并发布打卡帖
// @Tags 打卡
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body emotionRequest true "情绪"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/checkin [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var req emotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).CheckIn(model.EmotionType(req.Emotion))
	respond(c, screen, err)
}
