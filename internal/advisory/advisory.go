package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/d60-Lab/softspace/config"
	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/pkg/logger"
)

const FallbackPrompt = "What wants to be expressed right now?"

// FallbackTheme 服务不可用时的固定主题
var FallbackTheme = model.DailyTheme{
	Title:      "Presence Without Performance",
	Prompt:     "What is a feeling you are carrying today that doesn't need a name?",
	Invitation: "Create something small that honors your current state.",
}

var (
	ErrEmptyResponse = errors.New("advisory: empty response")
	ErrMalformed     = errors.New("advisory: malformed theme")
)

// Advisor 提供每日主题与创作提示，失败时静默降级，不向调用方暴露错误
type Advisor interface {
	DailyTheme(ctx context.Context) model.DailyTheme
	CreativePrompt(ctx context.Context, emotion string) string
}

// Generator 底层文本生成；Theme 返回 JSON 文本
type Generator interface {
	Theme(ctx context.Context) (string, error)
	Prompt(ctx context.Context, emotion string) (string, error)
}

type Service struct {
	gen      Generator
	validate *validator.Validate
}

var _ Advisor = (*Service)(nil)

// NewService gen 为 nil 表示未配置凭证，所有请求直接返回兜底内容
func NewService(gen Generator) *Service {
	return &Service{gen: gen, validate: validator.New()}
}

// New 按配置选择生成器：mock、Gemini 或无凭证兜底
func New(ctx context.Context, cfg config.AdvisoryConfig) (*Service, error) {
	switch {
	case cfg.Mock:
		logger.Info("advisory uses mock generator")
		return NewService(MockGenerator{}), nil
	case cfg.APIKey == "":
		logger.Info("no advisory api key configured, using fallback content")
		return NewService(nil), nil
	}
	gen, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	return NewService(gen), nil
}

func (s *Service) Enabled() bool { return s.gen != nil }

func (s *Service) DailyTheme(ctx context.Context) model.DailyTheme {
	if s.gen == nil {
		return FallbackTheme
	}
	text, err := s.gen.Theme(ctx)
	if err != nil {
		s.report("daily theme request failed", err)
		return FallbackTheme
	}
	theme, err := s.parseTheme(text)
	if err != nil {
		s.report("daily theme response rejected", err)
		return FallbackTheme
	}
	return theme
}

func (s *Service) CreativePrompt(ctx context.Context, emotion string) string {
	if s.gen == nil {
		return FallbackPrompt
	}
	text, err := s.gen.Prompt(ctx, emotion)
	if err != nil {
		s.report("creative prompt request failed", err, zap.String("emotion", emotion))
		return FallbackPrompt
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackPrompt
	}
	return text
}

func (s *Service) parseTheme(text string) (model.DailyTheme, error) {
	text = cleanJSON(text)
	if text == "" {
		return model.DailyTheme{}, ErrEmptyResponse
	}
	var theme model.DailyTheme
	if err := json.Unmarshal([]byte(text), &theme); err != nil {
		return model.DailyTheme{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := s.validate.Struct(theme); err != nil {
		return model.DailyTheme{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return theme, nil
}

func (s *Service) report(msg string, err error, fields ...zap.Field) {
	logger.Error(msg, append(fields, zap.Error(err))...)
	sentry.CaptureException(err)
}

func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
