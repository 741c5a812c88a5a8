package model

import (
	"encoding/json"
	"time"
)

// WitnessReaction 产品中"见证"反应的标签
const WitnessReaction = "witness"

// Comment 帖子下的评论，只追加
type Comment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Post 内容主体；除 Reactions 与 Comments 外创建后不可变
type Post struct {
	ID          string
	AuthorID    string
	AuthorName  string // 创建时冗余，作者改名不回写
	Content     Content
	Description string
	Emotion     EmotionType
	Timestamp   time.Time
	Reactions   map[string]int
	Comments    []Comment
}

// Draft 创作流程提交的内容，不含服务端合成字段
type Draft struct {
	Content     Content
	Description string
	Emotion     EmotionType
}

func (p *Post) Type() ContentType {
	if p.Content == nil {
		return ""
	}
	return p.Content.Type()
}

// TotalReactions 所有反应计数之和
func (p *Post) TotalReactions() int {
	n := 0
	for _, c := range p.Reactions {
		n += c
	}
	return n
}

// Clone 深拷贝，快照与渲染使用
func (p *Post) Clone() *Post {
	c := *p
	c.Reactions = make(map[string]int, len(p.Reactions))
	for k, v := range p.Reactions {
		c.Reactions[k] = v
	}
	c.Comments = append(make([]Comment, 0, len(p.Comments)), p.Comments...)
	return &c
}

type postWire struct {
	ID          string         `json:"id"`
	AuthorID    string         `json:"author_id"`
	AuthorName  string         `json:"author_name"`
	Type        ContentType    `json:"type"`
	Content     string         `json:"content"`
	Description string         `json:"description,omitempty"`
	Emotion     EmotionType    `json:"emotion"`
	Timestamp   time.Time      `json:"timestamp"`
	Reactions   map[string]int `json:"reactions"`
	Comments    []Comment      `json:"comments"`
}

func (p Post) MarshalJSON() ([]byte, error) {
	w := postWire{
		ID:          p.ID,
		AuthorID:    p.AuthorID,
		AuthorName:  p.AuthorName,
		Type:        p.Type(),
		Description: p.Description,
		Emotion:     p.Emotion,
		Timestamp:   p.Timestamp,
		Reactions:   p.Reactions,
		Comments:    p.Comments,
	}
	if p.Content != nil {
		w.Content = p.Content.Raw()
	}
	if w.Reactions == nil {
		w.Reactions = map[string]int{}
	}
	if w.Comments == nil {
		w.Comments = []Comment{}
	}
	return json.Marshal(w)
}

func (p *Post) UnmarshalJSON(data []byte) error {
	var w postWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	content, err := NewContent(w.Type, w.Content)
	if err != nil {
		return err
	}
	*p = Post{
		ID:          w.ID,
		AuthorID:    w.AuthorID,
		AuthorName:  w.AuthorName,
		Content:     content,
		Description: w.Description,
		Emotion:     w.Emotion,
		Timestamp:   w.Timestamp,
		Reactions:   w.Reactions,
		Comments:    w.Comments,
	}
	return nil
}
