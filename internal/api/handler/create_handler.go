package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/softspace/internal/app"
	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/pkg/response"
)

type draftRequest struct {
	Content     *string `json:"content"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Emotion     *string `json:"emotion" binding:"omitempty,emotion"`
}

// OpenCreate 打开创作弹窗并异步请求创作提示
// @Summary 打开创作弹窗
// @Tags 创作
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/create/open [post]
func (h *Handler) OpenCreate(c *gin.Context) {
	screen, err := session(c).OpenCreate()
	respond(c, screen, err)
}

// CloseCreate 关闭创作弹窗，丢弃在途的提示请求
// @Summary 关闭创作弹窗
// @Tags 创作
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/create/close [post]
func (h *Handler) CloseCreate(c *gin.Context) {
	screen, err := session(c).CloseCreate()
	respond(c, screen, err)
}

// GetCreation 创作草稿状态
// @Summary 创作草稿状态
// @Tags 创作
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=flow.CreationView}
// @Failure 409 {object} response.Response
// @Router /api/v1/create [get]
func (h *Handler) GetCreation(c *gin.Context) {
	view, err := session(c).Creation()
	if err != nil {
		response.Conflict(c, err.Error())
		return
	}
	response.Success(c, view)
}

// SelectType 选择作品类型
// @Summary 选择作品类型（Art/Writing/Music）
// @Tags 创作
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body contentTypeRequest true "内容类型"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/create/select [post]
func (h *Handler) SelectType(c *gin.Context) {
	var req contentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).SelectType(model.ContentType(req.Type))
	respond(c, screen, err)
}

// BackToSelect 返回类型选择
// @Summary 返回类型选择
// @Tags 创作
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/create/back [post]
func (h *Handler) BackToSelect(c *gin.Context) {
	screen, err := session(c).BackToSelect()
	respond(c, screen, err)
}

// RecordAudio 模拟录音
// @Summary 模拟录音（仅 Music）
// @Tags 创作
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/create/record [post]
func (h *Handler) RecordAudio(c *gin.Context) {
	screen, err := session(c).RecordAudio()
	respond(c, screen, err)
}

// UpdateDraft 更新草稿，未传字段保持不变
// @Summary 更新草稿
// @Tags 创作
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body draftRequest true "草稿字段"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/create/draft [patch]
func (h *Handler) UpdateDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u := app.DraftUpdate{Content: req.Content, Description: req.Description}
	if req.Emotion != nil {
		e := model.EmotionType(*req.Emotion)
		u.Emotion = &e
	}
	screen, err := session(c).UpdateDraft(u)
	respond(c, screen, err)
}

// SubmitCreate 发布作品并进入信息流
// @Summary 发布作品
// @Tags 创作
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/create/submit [post]
func (h *Handler) SubmitCreate(c *gin.Context) {
	screen, err := session(c).SubmitCreate()
	respond(c, screen, err)
}
