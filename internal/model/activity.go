package model

import "time"

// ActivityKind 活动类型
type ActivityKind string

const (
	ActivityOnboarded   ActivityKind = "onboarded"
	ActivityPostCreated ActivityKind = "post_created"
	ActivityCheckIn     ActivityKind = "checkin"
	ActivityComment     ActivityKind = "comment"
	ActivityReaction    ActivityKind = "reaction"
	ActivityLogout      ActivityKind = "logout"
)

// Activity 社区动态流水（只写，用于社区脉搏展示，不回读会话状态）
type Activity struct {
	ID          string       `gorm:"primaryKey;type:varchar(36)"`
	SessionID   string       `gorm:"type:varchar(36);index:idx_activity_session"`
	Kind        ActivityKind `gorm:"type:varchar(16);index:idx_activity_kind"`
	ActorName   string       `gorm:"type:varchar(64)"`
	PostID      string       `gorm:"type:varchar(36)"`
	ContentType ContentType  `gorm:"type:varchar(16)"`
	Emotion     EmotionType  `gorm:"type:varchar(16)"`
	CreatedAt   time.Time    `gorm:"index"`
}

func (Activity) TableName() string { return "activities" }
