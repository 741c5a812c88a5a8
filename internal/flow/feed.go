package flow

import (
	"strings"

	"github.com/d60-Lab/softspace/internal/model"
)

// FeedState 信息流界面实例的本地状态：筛选器与评论输入框。
// 以固定类型创建时筛选器锁定且不展示。
type FeedState struct {
	filter      model.Filter
	locked      bool
	composingID string
	text        string
}

// NewFeedState initial 为空表示不锁定，从 ALL 开始
func NewFeedState(initial model.ContentType) *FeedState {
	if initial == "" {
		return &FeedState{filter: model.FilterAll}
	}
	return &FeedState{filter: model.FilterOf(initial), locked: true}
}

func (f *FeedState) Filter() model.Filter { return f.filter }

func (f *FeedState) Locked() bool { return f.locked }

// SetFilter 锁定时忽略并返回 false
func (f *FeedState) SetFilter(filter model.Filter) bool {
	if f.locked || !filter.Valid() {
		return false
	}
	f.filter = filter
	return true
}

// ToggleComposer 同一时间只有一个帖子处于评论状态；再次点击同一帖子则关闭
func (f *FeedState) ToggleComposer(postID string) {
	if f.composingID == postID {
		f.composingID = ""
	} else {
		f.composingID = postID
	}
	f.text = ""
}

func (f *FeedState) ComposingID() string { return f.composingID }

func (f *FeedState) Text() string { return f.text }

func (f *FeedState) SetText(s string) { f.text = s }

func (f *FeedState) CanSubmit() bool {
	return f.composingID != "" && strings.TrimSpace(f.text) != ""
}

// Submit 文本去空白后非空才提交；成功后清空并关闭输入框。
// 返回的文本保持原样。
func (f *FeedState) Submit() (postID, text string, ok bool) {
	if !f.CanSubmit() {
		return "", "", false
	}
	postID, text = f.composingID, f.text
	f.composingID, f.text = "", ""
	return postID, text, true
}

// ApplyFilter 按类型精确筛选，保持原有顺序；ALL 原样返回
func ApplyFilter(posts []*model.Post, filter model.Filter) []*model.Post {
	if filter == model.FilterAll {
		return posts
	}
	out := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		if filter.Matches(p.Type()) {
			out = append(out, p)
		}
	}
	return out
}
