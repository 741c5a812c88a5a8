package flow

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/d60-Lab/softspace/internal/model"
)

// CreationStep 创作流程步骤
type CreationStep string

const (
	StepSelect CreationStep = "SELECT"
	StepCreate CreationStep = "CREATE"
)

var (
	ErrNotCreatable      = errors.New("content type cannot be created directly")
	ErrSelectTypeFirst   = errors.New("choose a content type first")
	ErrEmotionRequired   = errors.New("an emotion must be attached")
	ErrContentRequired   = errors.New("writing needs some words")
	ErrRecordingNotMusic = errors.New("recording is only available for sound")
)

// ArtPlaceholder 生成随机占位图地址（没有真实上传管线）
func ArtPlaceholder() string {
	return fmt.Sprintf("https://picsum.photos/600/400?random=%d", rand.Int63())
}

// Creation 创作弹窗的本地状态机：SELECT -> CREATE -> 提交
type Creation struct {
	step        CreationStep
	selected    model.ContentType
	content     string
	description string
	emotion     *model.EmotionType

	prompt        string
	promptLoading bool
	promptGen     Generation

	placeholder func() string
}

// NewCreation 打开弹窗：重置草稿，情绪默认取用户最近一次打卡，
// 并返回本次提示语请求的代号
func NewCreation(current *model.EmotionType) (*Creation, uint64) {
	c := &Creation{
		step:          StepSelect,
		selected:      model.ContentWriting,
		promptLoading: true,
		placeholder:   ArtPlaceholder,
	}
	if current != nil {
		e := *current
		c.emotion = &e
	}
	return c, c.promptGen.Next()
}

// WithPlaceholder 替换占位图生成器（测试用）
func (c *Creation) WithPlaceholder(gen func() string) *Creation {
	c.placeholder = gen
	return c
}

// ResolvePrompt 应用异步返回的提示语；代号过期时丢弃并返回 false
func (c *Creation) ResolvePrompt(token uint64, prompt string) bool {
	if !c.promptGen.IsCurrent(token) {
		return false
	}
	c.prompt = prompt
	c.promptLoading = false
	return true
}

// Close 使在途提示语请求失效
func (c *Creation) Close() { c.promptGen.Invalidate() }

func (c *Creation) Step() CreationStep { return c.step }

func (c *Creation) Select(t model.ContentType) error {
	if !t.Creatable() {
		return ErrNotCreatable
	}
	c.selected = t
	c.step = StepCreate
	return nil
}

func (c *Creation) Back() { c.step = StepSelect }

func (c *Creation) SetContent(s string) { c.content = s }

func (c *Creation) SetDescription(s string) { c.description = s }

func (c *Creation) SetEmotion(e model.EmotionType) { c.emotion = &e }

// RecordAudio 模拟录音
func (c *Creation) RecordAudio() error {
	if c.selected != model.ContentMusic {
		return ErrRecordingNotMusic
	}
	c.content = model.RecordedAudio
	return nil
}

func (c *Creation) CanSubmit() bool {
	return c.validate() == nil
}

func (c *Creation) validate() error {
	if c.step != StepCreate {
		return ErrSelectTypeFirst
	}
	if c.selected == model.ContentWriting && c.content == "" {
		return ErrContentRequired
	}
	if c.emotion == nil {
		return ErrEmotionRequired
	}
	return nil
}

// Submit 生成草稿；图片与声音为空时替换为占位内容
func (c *Creation) Submit() (model.Draft, error) {
	if err := c.validate(); err != nil {
		return model.Draft{}, err
	}
	raw := c.content
	switch {
	case c.selected == model.ContentArt && raw == "":
		raw = c.placeholder()
	case c.selected == model.ContentMusic && raw == "":
		raw = model.MusicPlaceholder
	}
	content, err := model.NewContent(c.selected, raw)
	if err != nil {
		return model.Draft{}, err
	}
	return model.Draft{Content: content, Description: c.description, Emotion: *c.emotion}, nil
}

// CreationView 渲染用的只读视图
type CreationView struct {
	Step           CreationStep        `json:"step"`
	Prompt         string              `json:"prompt,omitempty"`
	PromptLoading  bool                `json:"prompt_loading"`
	Selected       model.ContentType   `json:"selected"`
	Content        string              `json:"content"`
	Description    string              `json:"description"`
	Emotion        *model.EmotionType  `json:"emotion,omitempty"`
	CanSubmit      bool                `json:"can_submit"`
	TypeOptions    []model.ContentType `json:"type_options"`
	EmotionOptions []model.EmotionType `json:"emotion_options"`
}

func (c *Creation) View() CreationView {
	v := CreationView{
		Step:           c.step,
		Prompt:         c.prompt,
		PromptLoading:  c.promptLoading,
		Selected:       c.selected,
		Content:        c.content,
		Description:    c.description,
		CanSubmit:      c.CanSubmit(),
		TypeOptions:    model.CreatableContentTypes,
		EmotionOptions: model.AllEmotions,
	}
	if c.emotion != nil {
		e := *c.emotion
		v.Emotion = &e
	}
	return v
}
