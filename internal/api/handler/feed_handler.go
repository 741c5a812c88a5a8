package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/pkg/response"
)

type filterRequest struct {
	Filter string `json:"filter" binding:"required,filter"`
}

type reactionRequest struct {
	Label string `json:"label" binding:"max=32"`
}

type composerTextRequest struct {
	Text string `json:"text" binding:"max=2000"`
}

// SetFilter 信息流筛选；固定类型的空间忽略
// @Summary 设置信息流筛选
// @Tags 信息流
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body filterRequest true "筛选（ALL 或内容类型）"
// @Success 200 {object} response.Response{data=router.Screen}
// @Failure 400 {object} response.Response
// @Router /api/v1/feed/filter [put]
func (h *Handler) SetFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).SetFilter(model.Filter(req.Filter))
	respond(c, screen, err)
}

// React 见证一条帖子；不去重
// @Summary 对帖子做出反应
// @Tags 信息流
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path string true "帖子ID"
// @Param request body reactionRequest false "反应标签，默认 witness"
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/posts/{id}/reactions [post]
func (h *Handler) React(c *gin.Context) {
	var req reactionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	screen, err := session(c).React(c.Param("id"), req.Label)
	respond(c, screen, err)
}

// ToggleComposer 打开或关闭某条帖子的评论框
// @Summary 切换评论框
// @Tags 信息流
// @Produce json
// @Security SessionToken
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/posts/{id}/composer [post]
func (h *Handler) ToggleComposer(c *gin.Context) {
	screen, err := session(c).ToggleComposer(c.Param("id"))
	respond(c, screen, err)
}

// SetCommentText 评论框内容
// @Summary 更新评论框内容
// @Tags 信息流
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body composerTextRequest true "评论内容"
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/composer/text [put]
func (h *Handler) SetCommentText(c *gin.Context) {
	var req composerTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	screen, err := session(c).SetCommentText(req.Text)
	respond(c, screen, err)
}

// SubmitComment 发送评论；空白内容忽略
// @Summary 发送评论
// @Tags 信息流
// @Produce json
// @Security SessionToken
// @Success 200 {object} response.Response{data=router.Screen}
// @Router /api/v1/composer/submit [post]
func (h *Handler) SubmitComment(c *gin.Context) {
	screen, err := session(c).SubmitComment()
	respond(c, screen, err)
}
