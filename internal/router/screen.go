package router

import (
	"fmt"
	"strings"
	"time"

	"github.com/d60-Lab/softspace/internal/flow"
	"github.com/d60-Lab/softspace/internal/model"
)

// Kind 界面类型
type Kind string

const (
	KindLanding     Kind = "landing"
	KindOnboarding  Kind = "onboarding"
	KindDashboard   Kind = "dashboard"
	KindFeed        Kind = "feed"
	KindProfile     Kind = "profile"
	KindEmpty       Kind = "empty"
	KindPlaceholder Kind = "placeholder"
)

const (
	themeLoadingTitle = "Loading stillness..."
	emptyFeedMessage  = "No reflections found here yet."
	placeholderText   = "Page under construction..."
)

// Input 渲染所需的全部只读数据
type Input struct {
	View  model.ViewState
	User  *model.User
	Posts []*model.Post
	Now   time.Time

	Onboarding  *flow.Onboarding
	Feed        *flow.FeedState
	Creation    *flow.Creation // nil 表示创作弹窗关闭
	CheckInOpen bool
	Theme       *model.DailyTheme // nil 表示仍在加载
	Pulse       []string
}

// Screen 一次完整渲染的结果
type Screen struct {
	Kind  Kind            `json:"kind"`
	View  model.ViewState `json:"view"`
	Nav   []NavItem       `json:"nav,omitempty"`
	Modal *Modal          `json:"modal,omitempty"`

	Landing     *LandingScreen       `json:"landing,omitempty"`
	Onboarding  *flow.OnboardingView `json:"onboarding,omitempty"`
	Dashboard   *DashboardScreen     `json:"dashboard,omitempty"`
	Feed        *FeedScreen          `json:"feed,omitempty"`
	Profile     *ProfileScreen       `json:"profile,omitempty"`
	Placeholder string               `json:"placeholder,omitempty"`
}

type NavItem struct {
	Label  string          `json:"label"`
	View   model.ViewState `json:"view"`
	Active bool            `json:"active"`
}

// Modal 当前打开的弹窗（同一时间最多一个展示）
type Modal struct {
	Name     string              `json:"name"` // "create" | "checkin"
	Create   *flow.CreationView  `json:"create,omitempty"`
	Title    string              `json:"title,omitempty"`
	Emotions []model.EmotionType `json:"emotions,omitempty"`
}

type LandingScreen struct {
	Headline string   `json:"headline"`
	Tagline  string   `json:"tagline"`
	Actions  []string `json:"actions"`
}

type DashboardScreen struct {
	Greeting       string             `json:"greeting"`
	Theme          *model.DailyTheme  `json:"theme,omitempty"`
	ThemeLoading   bool               `json:"theme_loading"`
	ThemeTitle     string             `json:"theme_title"`
	CurrentEmotion *model.EmotionType `json:"current_emotion,omitempty"`
	Pulse          []string           `json:"pulse"`
}

type FeedScreen struct {
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Filter        model.Filter   `json:"filter"`
	ShowSelector  bool           `json:"show_selector"`
	FilterOptions []model.Filter `json:"filter_options,omitempty"`
	Posts         []*model.Post  `json:"posts"`
	EmptyMessage  string         `json:"empty_message,omitempty"`
	ComposingID   string         `json:"composing_id,omitempty"`
	ComposerText  string         `json:"composer_text,omitempty"`
	CanSend       bool           `json:"can_send"`
}

type ProfileScreen struct {
	User           *model.User   `json:"user"`
	EmotionLine    string        `json:"emotion_line"`
	TotalReactions int           `json:"total_reactions"`
	Posts          []ProfileItem `json:"posts"`
	EmptyMessage   string        `json:"empty_message,omitempty"`
}

// ProfileItem 个人页的历史条目：文字作品展示正文，其余展示说明
type ProfileItem struct {
	ID      string            `json:"id"`
	Type    model.ContentType `json:"type"`
	Emotion model.EmotionType `json:"emotion"`
	Date    string            `json:"date"`
	Text    string            `json:"text"`
}

var navLabels = map[model.ViewState]string{
	model.ViewDashboard:    "Home",
	model.ViewFeed:         "Community Feed",
	model.ViewSpaceArt:     "Art Space",
	model.ViewSpaceWriting: "Writing Space",
	model.ViewSpaceMusic:   "Sound Space",
	model.ViewProfile:      "Profile",
}

// DefaultPulse 没有社区动态时展示的内容
var DefaultPulse = []string{
	"Sarah shared a poem about 'Drifting'",
	`New reflection in "Art as Healing"`,
	"Weekly circle starts in 2 hours",
}

// Render 渲染当前视图。需要登录的视图在没有用户时返回空界面，
// 未知视图返回占位界面。
func Render(in Input) Screen {
	s := Screen{View: in.View}
	switch in.View {
	case model.ViewLanding:
		s.Kind = KindLanding
		s.Landing = &LandingScreen{
			Headline: "A space to feel, create, and share without performance.",
			Tagline:  "You don't need to explain. Noticing is enough. Join a community built on witnessing, not rating.",
			Actions:  []string{"Enter the Community", "Read Philosophy"},
		}
		return s
	case model.ViewOnboarding:
		s.Kind = KindOnboarding
		o := in.Onboarding
		if o == nil {
			o = flow.NewOnboarding()
		}
		v := o.View()
		s.Onboarding = &v
		return s
	}

	if !in.View.Valid() {
		s.Kind = KindPlaceholder
		s.Placeholder = placeholderText
		return s
	}
	if in.User == nil {
		s.Kind = KindEmpty
		return s
	}

	s.Nav = nav(in.View)
	s.Modal = modal(in)
	switch in.View {
	case model.ViewDashboard:
		s.Kind = KindDashboard
		s.Dashboard = dashboard(in)
	case model.ViewProfile:
		s.Kind = KindProfile
		s.Profile = profile(in)
	default:
		cfg, _ := FeedConfigFor(in.View)
		s.Kind = KindFeed
		s.Feed = feed(in, cfg)
	}
	return s
}

func nav(active model.ViewState) []NavItem {
	items := make([]NavItem, 0, len(SidebarTargets))
	for _, v := range SidebarTargets {
		items = append(items, NavItem{Label: navLabels[v], View: v, Active: v == active})
	}
	return items
}

func modal(in Input) *Modal {
	switch {
	case in.Creation != nil:
		v := in.Creation.View()
		return &Modal{Name: "create", Create: &v}
	case in.CheckInOpen:
		return &Modal{Name: "checkin", Title: "How is the weather inside?", Emotions: model.AllEmotions}
	}
	return nil
}

// Greeting 按小时返回问候语
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func dashboard(in Input) *DashboardScreen {
	d := &DashboardScreen{
		Greeting:       fmt.Sprintf("%s, %s.", Greeting(in.Now), in.User.Name),
		Theme:          in.Theme,
		ThemeLoading:   in.Theme == nil,
		ThemeTitle:     themeLoadingTitle,
		CurrentEmotion: in.User.CurrentEmotion,
		Pulse:          in.Pulse,
	}
	if in.Theme != nil {
		d.ThemeTitle = in.Theme.Title
	}
	if len(d.Pulse) == 0 {
		d.Pulse = DefaultPulse
	}
	return d
}

func feed(in Input, cfg FeedConfig) *FeedScreen {
	state := in.Feed
	if state == nil {
		state = flow.NewFeedState(cfg.Filter)
	}
	posts := flow.ApplyFilter(in.Posts, state.Filter())
	f := &FeedScreen{
		Title:        cfg.Title,
		Subtitle:     cfg.Subtitle,
		Filter:       state.Filter(),
		ShowSelector: !state.Locked(),
		Posts:        posts,
		ComposingID:  state.ComposingID(),
		ComposerText: state.Text(),
		CanSend:      state.CanSubmit(),
	}
	if f.Posts == nil {
		f.Posts = []*model.Post{}
	}
	if f.ShowSelector {
		f.FilterOptions = model.FilterOptions
	}
	if len(posts) == 0 {
		f.EmptyMessage = emptyFeedMessage
	}
	return f
}

func profile(in Input) *ProfileScreen {
	p := &ProfileScreen{User: in.User, Posts: []ProfileItem{}}
	if in.User.CurrentEmotion != nil {
		p.EmotionLine = fmt.Sprintf("Allowing the %s to just be here.", strings.ToLower(string(*in.User.CurrentEmotion)))
	} else {
		p.EmotionLine = "No emotion checked in yet today."
	}
	for _, post := range in.Posts {
		if post.AuthorID != in.User.ID {
			continue
		}
		p.TotalReactions += post.TotalReactions()
		text := post.Description
		if post.Type() == model.ContentWriting {
			text = post.Content.Raw()
		}
		p.Posts = append(p.Posts, ProfileItem{
			ID:      post.ID,
			Type:    post.Type(),
			Emotion: post.Emotion,
			Date:    post.Timestamp.Format("2006-01-02"),
			Text:    text,
		})
	}
	if len(p.Posts) == 0 {
		p.EmptyMessage = "You haven't shared anything yet."
	}
	return p
}
