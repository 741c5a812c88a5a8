package model

import "time"

// SeedPosts 返回每个会话初始的示例帖子（最新在前），每次调用都是新副本
func SeedPosts(now time.Time) []*Post {
	return []*Post{
		{
			ID:          "1",
			AuthorID:    "a1",
			AuthorName:  "Elara",
			Content:     ArtContent{URL: "https://picsum.photos/600/400?grayscale"},
			Description: "Feeling the grey today, but finding texture in it.",
			Emotion:     EmotionHeavy,
			Timestamp:   now.Add(-time.Hour),
			Reactions:   map[string]int{WitnessReaction: 4},
			Comments:    []Comment{},
		},
		{
			ID:          "2",
			AuthorID:    "a2",
			AuthorName:  "Jonas",
			Content:     WritingContent{Text: "The water doesn't ask to flow,\nit simply surrenders to gravity.\nI am trying to learn the weight of my own allowing."},
			Description: "Morning scribble.",
			Emotion:     EmotionCalm,
			Timestamp:   now.Add(-2 * time.Hour),
			Reactions:   map[string]int{WitnessReaction: 8},
			Comments:    []Comment{},
		},
		{
			ID:          "3",
			AuthorID:    "a3",
			AuthorName:  "Mira",
			Content:     MusicContent{Ref: MusicPlaceholder},
			Description: "A melody for the unsure moments.",
			Emotion:     EmotionUnsure,
			Timestamp:   now.Add(-12000 * time.Second),
			Reactions:   map[string]int{WitnessReaction: 2},
			Comments:    []Comment{},
		},
	}
}
