package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/softspace/internal/model"
)

func TestOnboardingNameGatesFirstStep(t *testing.T) {
	o := NewOnboarding()
	assert.False(t, o.CanAdvance())
	_, err := o.Next()
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Equal(t, StepName, o.Step())

	o.SetName("Ada")
	res, err := o.Next()
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, StepEmotion, o.Step())
}

func TestOnboardingFullRun(t *testing.T) {
	o := NewOnboarding()
	o.SetName("Ada")
	_, _ = o.Next()
	o.SelectEmotion(model.EmotionAnxious)
	o.SelectEmotion(model.EmotionCurious)
	_, _ = o.Next()

	o.TogglePreference(model.ContentArt)
	o.TogglePreference(model.ContentMusic)
	o.TogglePreference(model.ContentArt)
	assert.Equal(t, "Enter Space", o.View().NextLabel)

	res, err := o.Next()
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Ada", res.Name)
	require.NotNil(t, res.Emotion)
	assert.Equal(t, model.EmotionCurious, *res.Emotion)
	assert.Equal(t, []model.ContentType{model.ContentMusic}, res.Preferences)
}

func TestOnboardingOptionalSteps(t *testing.T) {
	o := NewOnboarding()
	o.SetName("Ada")
	_, _ = o.Next()
	_, _ = o.Next()
	res, err := o.Next()
	require.NoError(t, err)
	assert.Nil(t, res.Emotion)
	assert.Empty(t, res.Preferences)
}

func TestOnboardingBack(t *testing.T) {
	o := NewOnboarding()
	assert.False(t, o.Back())

	o.SetName("Ada")
	_, _ = o.Next()
	_, _ = o.Next()
	assert.True(t, o.Back())
	assert.Equal(t, StepEmotion, o.Step())
	assert.True(t, o.Back())
	assert.Equal(t, StepName, o.Step())
	assert.Equal(t, "Ada", o.Name())
}
