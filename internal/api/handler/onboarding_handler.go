package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/pkg/response"
)

type nameRequest struct {
	Name string `json:"name" binding:"max=64"`
}

type emotionRequest struct {
	Emotion string `json:"emotion" binding:"required,emotion"`
}

type contentTypeRequest struct {
	Type string `json:"type" binding:"required,content_type"`
}

// Join 进入入驻流程
// @Summary 从首屏进入入驻
// @Tags 入驻
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/join [post]
func (h *Handler) Join(c *gin.Context) {
	screen, err := session(c).Join()
	respond(c, screen, err)
}

// GetOnboarding 入驻流程状态
// @Summary 入驻流程状态
// @Tags 入驻
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=flow.OnboardingView}
// @Failure 409 {object} response.Response
// @Router /api/v1/onboarding [get]
func (h *Handler) GetOnboarding(c *gin.Context) {
	view, err := session(c).Onboarding()
	if err != nil {
		response.Conflict(c, err.Error())
		return
	}
	response.Success(c, view)
}

// SetName 第一步：名字
// @Summary 设置名字
// @Tags 入驻
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body nameRequest true "名字"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/onboarding/name [put]
func (h *Handler) SetName(c *gin.Context) {
	var req nameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).SetName(req.Name)
	respond(c, screen, err)
}

// SelectEmotion 第二步：情绪（可选，单选）
// @Summary 选择情绪
// @Tags 入驻
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body emotionRequest true "情绪"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/onboarding/emotion [put]
func (h *Handler) SelectEmotion(c *gin.Context) {
	var req emotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).SelectEmotion(model.EmotionType(req.Emotion))
	respond(c, screen, err)
}

// TogglePreference 第三步：创作偏好（多选）
// @Summary 切换创作偏好
// @Tags 入驻
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body contentTypeRequest true "内容类型"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/onboarding/preferences [post]
func (h *Handler) TogglePreference(c *gin.Context) {
	var req contentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).TogglePreference(model.ContentType(req.Type))
	respond(c, screen, err)
}

// OnboardingNext 下一步；最后一步完成入驻
// @Summary 入驻下一步
// @Tags 入驻
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/onboarding/next [post]
func (h *Handler) OnboardingNext(c *gin.Context) {
	screen, err := session(c).OnboardingNext()
	respond(c, screen, err)
}

// OnboardingBack 上一步
// @Summary 入驻上一步
// @Tags 入驻
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/onboarding/back [post]
func (h *Handler) OnboardingBack(c *gin.Context) {
	screen, err := session(c).OnboardingBack()
	respond(c, screen, err)
}
