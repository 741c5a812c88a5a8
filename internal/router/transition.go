// Package router 视图状态机与界面渲染。
//
// Next 实现迁移表，Render 是 (视图, 用户, 帖子, 本地界面状态) 的纯函数。
package router

import "github.com/d60-Lab/softspace/internal/model"

// EventKind 触发视图迁移的界面事件
type EventKind string

const (
	EventJoin               EventKind = "join"
	EventOnboardingFinished EventKind = "onboarding_finished"
	EventNavigateFeed       EventKind = "navigate_feed"
	EventSidebar            EventKind = "sidebar"
	EventPostCreated        EventKind = "post_created"
	EventLogout             EventKind = "logout"
)

type Event struct {
	Kind   EventKind
	Target model.ViewState // 仅 EventSidebar 使用
}

func Join() Event               { return Event{Kind: EventJoin} }
func OnboardingFinished() Event { return Event{Kind: EventOnboardingFinished} }
func NavigateFeed() Event       { return Event{Kind: EventNavigateFeed} }
func PostCreated() Event        { return Event{Kind: EventPostCreated} }
func Logout() Event             { return Event{Kind: EventLogout} }

func Sidebar(target model.ViewState) Event {
	return Event{Kind: EventSidebar, Target: target}
}

// SidebarTargets 侧边栏可选的视图
var SidebarTargets = []model.ViewState{
	model.ViewDashboard, model.ViewFeed, model.ViewSpaceArt,
	model.ViewSpaceWriting, model.ViewSpaceMusic, model.ViewProfile,
}

func isSidebarTarget(v model.ViewState) bool {
	for _, t := range SidebarTargets {
		if t == v {
			return true
		}
	}
	return false
}

func authenticated(v model.ViewState) bool {
	return isSidebarTarget(v)
}

// Next 按迁移表计算下一个视图；不允许的迁移返回 (from, false)
func Next(from model.ViewState, ev Event, signedIn bool) (model.ViewState, bool) {
	switch ev.Kind {
	case EventJoin:
		if from == model.ViewLanding {
			return model.ViewOnboarding, true
		}
	case EventOnboardingFinished:
		if from == model.ViewOnboarding {
			return model.ViewDashboard, true
		}
	case EventNavigateFeed:
		if from == model.ViewDashboard && signedIn {
			return model.ViewFeed, true
		}
	case EventSidebar:
		if signedIn && authenticated(from) && isSidebarTarget(ev.Target) {
			return ev.Target, true
		}
	case EventPostCreated:
		if signedIn && authenticated(from) {
			return model.ViewFeed, true
		}
	case EventLogout:
		if from == model.ViewProfile {
			return model.ViewLanding, true
		}
	}
	return from, false
}

// FeedConfig 信息流的展示参数；三个 SPACE_* 视图是固定筛选的 FEED
type FeedConfig struct {
	Filter   model.ContentType
	Title    string
	Subtitle string
}

func (c FeedConfig) Locked() bool { return c.Filter != "" }

// FeedConfigFor 返回视图对应的信息流配置；非信息流视图返回 false
func FeedConfigFor(v model.ViewState) (FeedConfig, bool) {
	switch v {
	case model.ViewFeed:
		return FeedConfig{Title: "Community Flow"}, true
	case model.ViewSpaceArt:
		return FeedConfig{Filter: model.ContentArt, Title: "Art Space", Subtitle: "Visual expressions of the inner world."}, true
	case model.ViewSpaceWriting:
		return FeedConfig{Filter: model.ContentWriting, Title: "Writing Space", Subtitle: "Words that need to be witnessed."}, true
	case model.ViewSpaceMusic:
		return FeedConfig{Filter: model.ContentMusic, Title: "Sound Space", Subtitle: "Listen to the frequency of the community."}, true
	}
	return FeedConfig{}, false
}
