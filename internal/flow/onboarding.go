package flow

import (
	"errors"

	"github.com/d60-Lab/softspace/internal/model"
)

const (
	StepName        = 1
	StepEmotion     = 2
	StepPreferences = 3
)

var ErrNameRequired = errors.New("name is required before continuing")

// OnboardingResult 三步累积的结果，由组合根据此构造用户
type OnboardingResult struct {
	Name        string
	Emotion     *model.EmotionType
	Preferences []model.ContentType
}

// Onboarding 入驻三步流程：名字、情绪（可选）、偏好（可选，多选）
type Onboarding struct {
	step        int
	name        string
	emotion     *model.EmotionType
	preferences []model.ContentType
}

func NewOnboarding() *Onboarding { return &Onboarding{step: StepName} }

func (o *Onboarding) Step() int { return o.step }

func (o *Onboarding) Name() string { return o.name }

func (o *Onboarding) SetName(name string) { o.name = name }

// SelectEmotion 单选
func (o *Onboarding) SelectEmotion(e model.EmotionType) {
	o.emotion = &e
}

// TogglePreference 切换偏好集合成员
func (o *Onboarding) TogglePreference(t model.ContentType) {
	for i, p := range o.preferences {
		if p == t {
			o.preferences = append(o.preferences[:i], o.preferences[i+1:]...)
			return
		}
	}
	o.preferences = append(o.preferences, t)
}

// CanAdvance 第一步名字为空时禁用"下一步"
func (o *Onboarding) CanAdvance() bool {
	return o.step != StepName || o.name != ""
}

func (o *Onboarding) CanGoBack() bool { return o.step > StepName }

// Next 前进一步；在最后一步调用时返回累积结果
func (o *Onboarding) Next() (*OnboardingResult, error) {
	if !o.CanAdvance() {
		return nil, ErrNameRequired
	}
	if o.step < StepPreferences {
		o.step++
		return nil, nil
	}
	res := &OnboardingResult{
		Name:        model.NormalizeName(o.name),
		Preferences: append([]model.ContentType{}, o.preferences...),
	}
	if o.emotion != nil {
		e := *o.emotion
		res.Emotion = &e
	}
	return res, nil
}

// Back 第二、三步可以后退；第一步返回 false
func (o *Onboarding) Back() bool {
	if !o.CanGoBack() {
		return false
	}
	o.step--
	return true
}

// OnboardingView 渲染用的只读视图
type OnboardingView struct {
	Step              int                 `json:"step"`
	Name              string              `json:"name"`
	Emotion           *model.EmotionType  `json:"emotion,omitempty"`
	Preferences       []model.ContentType `json:"preferences"`
	CanAdvance        bool                `json:"can_advance"`
	CanGoBack         bool                `json:"can_go_back"`
	NextLabel         string              `json:"next_label"`
	EmotionOptions    []model.EmotionType `json:"emotion_options"`
	PreferenceOptions []model.ContentType `json:"preference_options"`
}

func (o *Onboarding) View() OnboardingView {
	v := OnboardingView{
		Step:              o.step,
		Name:              o.name,
		Preferences:       append([]model.ContentType{}, o.preferences...),
		CanAdvance:        o.CanAdvance(),
		CanGoBack:         o.CanGoBack(),
		NextLabel:         "Next",
		EmotionOptions:    model.AllEmotions,
		PreferenceOptions: model.AllContentTypes,
	}
	if o.step == StepPreferences {
		v.NextLabel = "Enter Space"
	}
	if o.emotion != nil {
		e := *o.emotion
		v.Emotion = &e
	}
	return v
}
