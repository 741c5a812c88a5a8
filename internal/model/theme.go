package model

// DailyTheme 每日主题，进入首页时获取，不持久化
type DailyTheme struct {
	Title      string `json:"title" validate:"required"`
	Prompt     string `json:"prompt" validate:"required"`
	Invitation string `json:"invitation" validate:"required"`
}
