package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContent(t *testing.T) {
	c, err := NewContent(ContentArt, "https://example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, ArtContent{URL: "https://example.com/a.png"}, c)

	c, err = NewContent(ContentCheckIn, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "", c.Raw())
	assert.Equal(t, ContentCheckIn, c.Type())

	_, err = NewContent("Video", "x")
	assert.Error(t, err)
}

func TestPostJSONWireShape(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := Post{
		ID: "p1", AuthorID: "u1", AuthorName: "Ada",
		Content: MusicContent{Ref: MusicPlaceholder},
		Emotion: EmotionCalm, Timestamp: ts,
	}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Music", raw["type"])
	assert.Equal(t, MusicPlaceholder, raw["content"])
	assert.Equal(t, map[string]any{}, raw["reactions"])
	assert.Equal(t, []any{}, raw["comments"])
	assert.NotContains(t, raw, "description")

	var back Post
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, MusicContent{Ref: MusicPlaceholder}, back.Content)
	assert.True(t, back.Timestamp.Equal(ts))
}

func TestPostCloneIsDeep(t *testing.T) {
	p := SeedPosts(time.Now())[0]
	c := p.Clone()
	c.Reactions[WitnessReaction]++
	c.Comments = append(c.Comments, Comment{ID: "c"})
	assert.Equal(t, 4, p.Reactions[WitnessReaction])
	assert.Empty(t, p.Comments)
}

func TestEnums(t *testing.T) {
	_, err := ParseEmotion("Calm")
	assert.NoError(t, err)
	_, err = ParseEmotion("calm")
	assert.Error(t, err)

	assert.True(t, FilterAll.Matches(ContentMusic))
	assert.True(t, FilterOf(ContentArt).Matches(ContentArt))
	assert.False(t, FilterOf(ContentArt).Matches(ContentWriting))
	assert.False(t, ContentCheckIn.Creatable())
	assert.False(t, ViewOnboarding.RequiresUser())
	assert.True(t, ViewSpaceMusic.RequiresUser())
	assert.False(t, ViewState("SETTINGS").Valid())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, DefaultUserName, NormalizeName(""))
	assert.Equal(t, DefaultUserName, NormalizeName("   "))
	assert.Equal(t, "Ada", NormalizeName("Ada"))
}
