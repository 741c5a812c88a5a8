// Package store 会话级应用状态容器：当前视图、当前用户与帖子集合。
//
// Store 不是并发安全的，调用方（组合根）负责串行化访问。所有变更都经由
// 具名操作完成；不满足前置条件的操作静默忽略。
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/softspace/internal/model"
)

// MutationKind 变更类型
type MutationKind string

const (
	MutationOnboarded   MutationKind = "onboarded"
	MutationPostCreated MutationKind = "post_created"
	MutationReacted     MutationKind = "reacted"
	MutationCommented   MutationKind = "commented"
	MutationCheckedIn   MutationKind = "checked_in"
	MutationLoggedOut   MutationKind = "logged_out"
	MutationViewChanged MutationKind = "view_changed"
)

// Mutation 一次成功变更的描述，交给监听者（动态流水、重渲染）
type Mutation struct {
	Kind    MutationKind
	Actor   string // 当前用户名，未登录时为空
	PostID  string
	Type    model.ContentType
	Emotion model.EmotionType
	Label   string
	View    model.ViewState
	At      time.Time
}

// Listener 变更监听；在变更完成后同步调用
type Listener func(Mutation)

// State 状态快照（深拷贝）
type State struct {
	View        model.ViewState
	CurrentUser *model.User
	Posts       []*model.Post
}

type Store struct {
	view  model.ViewState
	user  *model.User
	posts []*model.Post

	now       func() time.Time
	newID     func() string
	listeners []Listener
}

type Option func(*Store)

func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

func WithIDGenerator(gen func() string) Option { return func(s *Store) { s.newID = gen } }

func WithListener(l Listener) Option {
	return func(s *Store) { s.listeners = append(s.listeners, l) }
}

// New 用种子帖子初始化，视图为 LANDING。种子会被深拷贝。
func New(seed []*model.Post, opts ...Option) *Store {
	s := &Store{
		view:  model.ViewLanding,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	s.posts = make([]*model.Post, 0, len(seed))
	for _, p := range seed {
		s.posts = append(s.posts, p.Clone())
	}
	return s
}

// AddListener 注册变更监听
func (s *Store) AddListener(l Listener) { s.listeners = append(s.listeners, l) }

func (s *Store) View() model.ViewState { return s.view }

// CurrentUser 返回当前用户副本；未登录时为 nil
func (s *Store) CurrentUser() *model.User { return s.user.Clone() }

func (s *Store) SignedIn() bool { return s.user != nil }

// Posts 按规范顺序（最新在前）返回帖子副本
func (s *Store) Posts() []*model.Post {
	out := make([]*model.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// Post 按 ID 查找帖子副本
func (s *Store) Post(id string) (*model.Post, bool) {
	if p := s.find(id); p != nil {
		return p.Clone(), true
	}
	return nil, false
}

// PostsBy 某作者的帖子，保持集合顺序
func (s *Store) PostsBy(authorID string) []*model.Post {
	var out []*model.Post
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (s *Store) Snapshot() State {
	return State{View: s.view, CurrentUser: s.CurrentUser(), Posts: s.Posts()}
}

// SetView 切换视图；只应由路由批准的迁移调用
func (s *Store) SetView(v model.ViewState) {
	if s.view == v {
		return
	}
	s.view = v
	s.emit(Mutation{Kind: MutationViewChanged, View: v})
}

// CompleteOnboarding 设置当前用户并进入 DASHBOARD；空名字回落为 Wanderer
func (s *Store) CompleteOnboarding(u model.User) model.User {
	u.Name = model.NormalizeName(u.Name)
	if u.ID == "" {
		u.ID = s.newID()
	}
	s.user = u.Clone()
	s.view = model.ViewDashboard
	s.emit(Mutation{Kind: MutationOnboarded, View: s.view})
	return *s.user.Clone()
}

// CreatePost 需要已登录用户；新帖置顶并跳转 FEED
func (s *Store) CreatePost(d model.Draft) (*model.Post, bool) {
	if s.user == nil || d.Content == nil {
		return nil, false
	}
	p := &model.Post{
		ID:          s.newID(),
		AuthorID:    s.user.ID,
		AuthorName:  s.user.Name,
		Content:     d.Content,
		Description: d.Description,
		Emotion:     d.Emotion,
		Timestamp:   s.now(),
		Reactions:   map[string]int{},
		Comments:    []model.Comment{},
	}
	s.prepend(p)
	s.view = model.ViewFeed
	s.emit(Mutation{Kind: MutationPostCreated, PostID: p.ID, Type: p.Type(), Emotion: p.Emotion, View: s.view})
	return p.Clone(), true
}

// React 对帖子的某个反应计数加一；不要求登录，也不去重
func (s *Store) React(postID, label string) bool {
	p := s.find(postID)
	if p == nil {
		return false
	}
	if p.Reactions == nil {
		p.Reactions = map[string]int{}
	}
	p.Reactions[label]++
	s.emit(Mutation{Kind: MutationReacted, PostID: p.ID, Type: p.Type(), Label: label})
	return true
}

// Comment 追加评论。文本不做校验，调用方负责拒绝空白内容。
func (s *Store) Comment(postID, text string) (model.Comment, bool) {
	if s.user == nil {
		return model.Comment{}, false
	}
	p := s.find(postID)
	if p == nil {
		return model.Comment{}, false
	}
	c := model.Comment{ID: s.newID(), AuthorName: s.user.Name, Text: text, Timestamp: s.now()}
	p.Comments = append(p.Comments, c)
	s.emit(Mutation{Kind: MutationCommented, PostID: p.ID, Type: p.Type()})
	return c, true
}

// CheckIn 更新当前情绪并置顶一条打卡帖，两者同时生效
func (s *Store) CheckIn(e model.EmotionType) (*model.Post, bool) {
	if s.user == nil {
		return nil, false
	}
	p := &model.Post{
		ID:          s.newID(),
		AuthorID:    s.user.ID,
		AuthorName:  s.user.Name,
		Content:     model.CheckInContent{},
		Description: fmt.Sprintf("Checked in feeling %s.", e),
		Emotion:     e,
		Timestamp:   s.now(),
		Reactions:   map[string]int{},
		Comments:    []model.Comment{},
	}
	emotion := e
	s.user.CurrentEmotion = &emotion
	s.prepend(p)
	s.emit(Mutation{Kind: MutationCheckedIn, PostID: p.ID, Type: model.ContentCheckIn, Emotion: e})
	return p.Clone(), true
}

// Logout 清除当前用户并回到 LANDING，帖子保留
func (s *Store) Logout() {
	actor := ""
	if s.user != nil {
		actor = s.user.Name
	}
	s.user = nil
	s.view = model.ViewLanding
	s.emitAs(actor, Mutation{Kind: MutationLoggedOut, View: s.view})
}

func (s *Store) find(id string) *model.Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) prepend(p *model.Post) {
	s.posts = append([]*model.Post{p}, s.posts...)
}

func (s *Store) emit(m Mutation) {
	actor := ""
	if s.user != nil {
		actor = s.user.Name
	}
	s.emitAs(actor, m)
}

func (s *Store) emitAs(actor string, m Mutation) {
	if len(s.listeners) == 0 {
		return
	}
	m.Actor = actor
	if m.At.IsZero() {
		m.At = s.now()
	}
	for _, l := range s.listeners {
		l(m)
	}
}
