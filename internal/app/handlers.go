package app

import (
	"github.com/d60-Lab/softspace/internal/flow"
	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/router"
)

// navigate 经路由批准后切换视图；不允许的迁移静默忽略
func (s *Session) navigate(ev router.Event) {
	if next, ok := router.Next(s.store.View(), ev, s.store.SignedIn()); ok {
		s.store.SetView(next)
	}
}

func (s *Session) Join() (router.Screen, error) {
	return s.apply(func() error {
		s.navigate(router.Join())
		return nil
	})
}

func (s *Session) onboardingStep(fn func(o *flow.Onboarding) error) (router.Screen, error) {
	return s.apply(func() error {
		if s.store.View() != model.ViewOnboarding {
			return ErrNotOnboarding
		}
		return fn(s.onboarding)
	})
}

// Onboarding 入驻流程当前状态
func (s *Session) Onboarding() (flow.OnboardingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.View() != model.ViewOnboarding {
		return flow.OnboardingView{}, ErrNotOnboarding
	}
	return s.onboarding.View(), nil
}

func (s *Session) SetName(name string) (router.Screen, error) {
	return s.onboardingStep(func(o *flow.Onboarding) error {
		o.SetName(name)
		return nil
	})
}

func (s *Session) SelectEmotion(e model.EmotionType) (router.Screen, error) {
	return s.onboardingStep(func(o *flow.Onboarding) error {
		o.SelectEmotion(e)
		return nil
	})
}

func (s *Session) TogglePreference(t model.ContentType) (router.Screen, error) {
	return s.onboardingStep(func(o *flow.Onboarding) error {
		o.TogglePreference(t)
		return nil
	})
}

func (s *Session) OnboardingBack() (router.Screen, error) {
	return s.onboardingStep(func(o *flow.Onboarding) error {
		o.Back()
		return nil
	})
}

// OnboardingNext 前进一步；最后一步完成入驻并进入首页
func (s *Session) OnboardingNext() (router.Screen, error) {
	return s.onboardingStep(func(o *flow.Onboarding) error {
		res, err := o.Next()
		if err != nil || res == nil {
			return err
		}
		if _, ok := router.Next(s.store.View(), router.OnboardingFinished(), s.store.SignedIn()); !ok {
			return nil
		}
		s.store.CompleteOnboarding(model.User{
			Name:               res.Name,
			CreativePreference: res.Preferences,
			CurrentEmotion:     res.Emotion,
		})
		return nil
	})
}

// Navigate 侧边栏导航
func (s *Session) Navigate(target model.ViewState) (router.Screen, error) {
	return s.apply(func() error {
		s.navigate(router.Sidebar(target))
		return nil
	})
}

// NavigateToFeed 首页上的"进入社区"
func (s *Session) NavigateToFeed() (router.Screen, error) {
	return s.apply(func() error {
		s.navigate(router.NavigateFeed())
		return nil
	})
}

func (s *Session) OpenCheckIn() (router.Screen, error) {
	return s.apply(func() error {
		if s.store.SignedIn() {
			s.checkInOpen = true
		}
		return nil
	})
}

func (s *Session) CloseCheckIn() (router.Screen, error) {
	return s.apply(func() error {
		s.checkInOpen = false
		return nil
	})
}

// CheckIn 打卡后关闭弹窗
func (s *Session) CheckIn(e model.EmotionType) (router.Screen, error) {
	return s.apply(func() error {
		if _, ok := s.store.CheckIn(e); ok {
			s.checkInOpen = false
		}
		return nil
	})
}

// OpenCreate 打开创作弹窗并请求创作提示；已打开时不重置
func (s *Session) OpenCreate() (router.Screen, error) {
	return s.apply(func() error {
		user := s.store.CurrentUser()
		if user == nil || s.creation != nil {
			return nil
		}
		c, token := flow.NewCreation(user.CurrentEmotion)
		s.creation = c
		emotion := unknownEmotion
		if user.CurrentEmotion != nil {
			emotion = string(*user.CurrentEmotion)
		}
		s.fetchPromptLocked(c, token, emotion)
		return nil
	})
}

func (s *Session) CloseCreate() (router.Screen, error) {
	return s.apply(func() error {
		if s.creation != nil {
			s.creation.Close()
			s.creation = nil
		}
		return nil
	})
}

// Creation 创作弹窗当前状态
func (s *Session) Creation() (flow.CreationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creation == nil {
		return flow.CreationView{}, ErrCreateClosed
	}
	return s.creation.View(), nil
}

func (s *Session) creationStep(fn func(c *flow.Creation) error) (router.Screen, error) {
	return s.apply(func() error {
		if s.creation == nil {
			return ErrCreateClosed
		}
		return fn(s.creation)
	})
}

func (s *Session) SelectType(t model.ContentType) (router.Screen, error) {
	return s.creationStep(func(c *flow.Creation) error { return c.Select(t) })
}

func (s *Session) BackToSelect() (router.Screen, error) {
	return s.creationStep(func(c *flow.Creation) error {
		c.Back()
		return nil
	})
}

// DraftUpdate 草稿的部分更新，nil 字段保持不变
type DraftUpdate struct {
	Content     *string
	Description *string
	Emotion     *model.EmotionType
}

func (s *Session) UpdateDraft(u DraftUpdate) (router.Screen, error) {
	return s.creationStep(func(c *flow.Creation) error {
		if u.Content != nil {
			c.SetContent(*u.Content)
		}
		if u.Description != nil {
			c.SetDescription(*u.Description)
		}
		if u.Emotion != nil {
			c.SetEmotion(*u.Emotion)
		}
		return nil
	})
}

func (s *Session) RecordAudio() (router.Screen, error) {
	return s.creationStep(func(c *flow.Creation) error { return c.RecordAudio() })
}

// SubmitCreate 发布作品，成功后关闭弹窗并进入信息流
func (s *Session) SubmitCreate() (router.Screen, error) {
	return s.creationStep(func(c *flow.Creation) error {
		draft, err := c.Submit()
		if err != nil {
			return err
		}
		if _, ok := router.Next(s.store.View(), router.PostCreated(), s.store.SignedIn()); !ok {
			return nil
		}
		if _, ok := s.store.CreatePost(draft); !ok {
			return nil
		}
		c.Close()
		s.creation = nil
		return nil
	})
}

// SetFilter 锁定的空间或非信息流界面忽略
func (s *Session) SetFilter(f model.Filter) (router.Screen, error) {
	return s.apply(func() error {
		if s.feed != nil {
			s.feed.SetFilter(f)
		}
		return nil
	})
}

func (s *Session) ToggleComposer(postID string) (router.Screen, error) {
	return s.apply(func() error {
		if s.feed != nil {
			s.feed.ToggleComposer(postID)
		}
		return nil
	})
}

func (s *Session) SetCommentText(text string) (router.Screen, error) {
	return s.apply(func() error {
		if s.feed != nil && s.feed.ComposingID() != "" {
			s.feed.SetText(text)
		}
		return nil
	})
}

// SubmitComment 空白内容不提交
func (s *Session) SubmitComment() (router.Screen, error) {
	return s.apply(func() error {
		if s.feed == nil {
			return nil
		}
		if postID, text, ok := s.feed.Submit(); ok {
			s.store.Comment(postID, text)
		}
		return nil
	})
}

// React label 为空时使用 witness
func (s *Session) React(postID, label string) (router.Screen, error) {
	if label == "" {
		label = model.WitnessReaction
	}
	return s.apply(func() error {
		s.store.React(postID, label)
		return nil
	})
}

// Logout 只能从个人页退出
func (s *Session) Logout() (router.Screen, error) {
	return s.apply(func() error {
		if _, ok := router.Next(s.store.View(), router.Logout(), s.store.SignedIn()); ok {
			s.store.Logout()
		}
		return nil
	})
}
