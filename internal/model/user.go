package model

import "strings"

// DefaultUserName 未填写名字时的默认称呼
const DefaultUserName = "Wanderer"

// User 会话内的本地身份（仅展示名，无鉴权）
type User struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	CreativePreference []ContentType `json:"creative_preference"`
	CurrentEmotion     *EmotionType  `json:"current_emotion,omitempty"`
}

// NormalizeName 空白名字回落为 Wanderer
func NormalizeName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultUserName
	}
	return name
}

// HasEmotion reports whether the user has checked in at least once.
func (u *User) HasEmotion() bool { return u != nil && u.CurrentEmotion != nil }

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.CreativePreference != nil {
		c.CreativePreference = append([]ContentType(nil), u.CreativePreference...)
	}
	if u.CurrentEmotion != nil {
		e := *u.CurrentEmotion
		c.CurrentEmotion = &e
	}
	return &c
}
