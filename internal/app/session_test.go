package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/softspace/internal/advisory"
	"github.com/d60-Lab/softspace/internal/flow"
	"github.com/d60-Lab/softspace/internal/model"
	"github.com/d60-Lab/softspace/internal/router"
	"github.com/d60-Lab/softspace/internal/store"
)

var fixedNow = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

// gatedAdvisor 每次调用都阻塞，直到测试放行对应的那一次
type gatedAdvisor struct {
	mu      sync.Mutex
	themes  []chan model.DailyTheme
	prompts []chan string
	emotion []string
	calls   chan struct{}
}

func newGatedAdvisor() *gatedAdvisor {
	return &gatedAdvisor{calls: make(chan struct{}, 16)}
}

func (a *gatedAdvisor) DailyTheme(ctx context.Context) model.DailyTheme {
	g := make(chan model.DailyTheme, 1)
	a.mu.Lock()
	a.themes = append(a.themes, g)
	a.mu.Unlock()
	a.calls <- struct{}{}
	select {
	case t := <-g:
		return t
	case <-ctx.Done():
		return advisory.FallbackTheme
	}
}

func (a *gatedAdvisor) CreativePrompt(ctx context.Context, emotion string) string {
	g := make(chan string, 1)
	a.mu.Lock()
	a.prompts = append(a.prompts, g)
	a.emotion = append(a.emotion, emotion)
	a.mu.Unlock()
	a.calls <- struct{}{}
	select {
	case p := <-g:
		return p
	case <-ctx.Done():
		return advisory.FallbackPrompt
	}
}

func (a *gatedAdvisor) theme(i int) chan model.DailyTheme {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.themes[i]
}

func (a *gatedAdvisor) prompt(i int) chan string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prompts[i]
}

func (a *gatedAdvisor) waitCall(t *testing.T) {
	t.Helper()
	select {
	case <-a.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("advisor was not called")
	}
}

type staticPulse []string

func (p staticPulse) Lines(context.Context) []string { return p }

type recordingSink struct {
	mu   sync.Mutex
	kind []store.MutationKind
}

func (r *recordingSink) Listener(string) store.Listener {
	return func(m store.Mutation) {
		r.mu.Lock()
		r.kind = append(r.kind, m.Kind)
		r.mu.Unlock()
	}
}

func newTestSession(deps Deps) *Session {
	deps.Now = func() time.Time { return fixedNow }
	return NewSession("s-test", deps)
}

// onboard 走完三步入驻
func onboard(t *testing.T, s *Session, name string) router.Screen {
	t.Helper()
	_, err := s.Join()
	require.NoError(t, err)
	_, err = s.SetName(name)
	require.NoError(t, err)
	var screen router.Screen
	for i := 0; i < 3; i++ {
		screen, err = s.OnboardingNext()
		require.NoError(t, err)
	}
	return screen
}

func TestOnboardingJourney(t *testing.T) {
	s := newTestSession(Deps{Pulse: staticPulse{"Ada shared a piece of art"}})

	assert.Equal(t, router.KindLanding, s.Screen().Kind)
	_, err := s.OnboardingNext()
	assert.ErrorIs(t, err, ErrNotOnboarding)

	_, err = s.Join()
	require.NoError(t, err)
	_, err = s.OnboardingNext()
	assert.ErrorIs(t, err, flow.ErrNameRequired)

	_, err = s.SetName("Ada")
	require.NoError(t, err)
	_, err = s.OnboardingNext()
	require.NoError(t, err)
	_, err = s.SelectEmotion(model.EmotionTender)
	require.NoError(t, err)
	_, err = s.OnboardingNext()
	require.NoError(t, err)
	_, err = s.TogglePreference(model.ContentMusic)
	require.NoError(t, err)
	screen, err := s.OnboardingNext()
	require.NoError(t, err)

	assert.Equal(t, router.KindDashboard, screen.Kind)
	assert.True(t, screen.Dashboard.ThemeLoading)
	assert.Equal(t, "Good morning, Ada.", screen.Dashboard.Greeting)

	s.Wait()
	screen = s.Screen()
	require.NotNil(t, screen.Dashboard.Theme)
	assert.Equal(t, advisory.FallbackTheme, *screen.Dashboard.Theme)
	assert.Equal(t, []string{"Ada shared a piece of art"}, screen.Dashboard.Pulse)

	user := s.State().CurrentUser
	require.NotNil(t, user)
	assert.Equal(t, []model.ContentType{model.ContentMusic}, user.CreativePreference)
	require.NotNil(t, user.CurrentEmotion)
	assert.Equal(t, model.EmotionTender, *user.CurrentEmotion)
}

func TestBlankNameBecomesWanderer(t *testing.T) {
	s := newTestSession(Deps{})
	_, err := s.Join()
	require.NoError(t, err)
	_, err = s.SetName("   ")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = s.OnboardingNext()
		require.NoError(t, err)
	}
	s.Wait()
	assert.Equal(t, model.DefaultUserName, s.State().CurrentUser.Name)
}

func TestStaleThemeDiscarded(t *testing.T) {
	adv := newGatedAdvisor()
	s := newTestSession(Deps{Advisor: adv})

	onboard(t, s, "Ada")
	adv.waitCall(t)

	_, err := s.NavigateToFeed()
	require.NoError(t, err)
	_, err = s.Navigate(model.ViewDashboard)
	require.NoError(t, err)
	adv.waitCall(t)

	adv.theme(1) <- model.DailyTheme{Title: "Fresh", Prompt: "p", Invitation: "i"}
	adv.theme(0) <- model.DailyTheme{Title: "Stale", Prompt: "p", Invitation: "i"}
	s.Wait()

	screen := s.Screen()
	require.NotNil(t, screen.Dashboard)
	assert.Equal(t, "Fresh", screen.Dashboard.ThemeTitle)
}

func TestThemeIgnoredAfterLeavingDashboard(t *testing.T) {
	adv := newGatedAdvisor()
	s := newTestSession(Deps{Advisor: adv})

	onboard(t, s, "Ada")
	adv.waitCall(t)
	_, err := s.Navigate(model.ViewProfile)
	require.NoError(t, err)

	adv.theme(0) <- model.DailyTheme{Title: "Late", Prompt: "p", Invitation: "i"}
	s.Wait()

	_, err = s.Navigate(model.ViewDashboard)
	require.NoError(t, err)
	screen := s.Screen()
	assert.True(t, screen.Dashboard.ThemeLoading)
	assert.Equal(t, "Loading stillness...", screen.Dashboard.ThemeTitle)

	adv.waitCall(t)
	adv.theme(1) <- advisory.FallbackTheme
	s.Wait()
}

func TestStalePromptDiscarded(t *testing.T) {
	adv := newGatedAdvisor()
	s := newTestSession(Deps{Advisor: adv})
	onboard(t, s, "Ada")
	adv.waitCall(t)
	adv.theme(0) <- advisory.FallbackTheme

	_, err := s.OpenCreate()
	require.NoError(t, err)
	adv.waitCall(t)
	_, err = s.CloseCreate()
	require.NoError(t, err)
	_, err = s.OpenCreate()
	require.NoError(t, err)
	adv.waitCall(t)

	adv.prompt(0) <- "old prompt"
	adv.prompt(1) <- "new prompt"
	s.Wait()

	view, err := s.Creation()
	require.NoError(t, err)
	assert.Equal(t, "new prompt", view.Prompt)
	assert.False(t, view.PromptLoading)
	assert.Equal(t, []string{"Unknown", "Unknown"}, adv.emotion)
}

func TestSubscribersReceiveRenders(t *testing.T) {
	s := newTestSession(Deps{})
	ch, cancel := s.Subscribe()

	_, err := s.Join()
	require.NoError(t, err)
	select {
	case screen := <-ch:
		assert.Equal(t, router.KindOnboarding, screen.Kind)
	case <-time.After(time.Second):
		t.Fatal("no screen published")
	}

	cancel()
	_, ok := <-ch
	assert.False(t, ok)
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	s := newTestSession(Deps{})
	_, cancel := s.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*3; i++ {
			_, _ = s.React("1", "")
		}
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publishing blocked on a full subscriber")
	}
	post, ok := findPost(s.State().Posts, "1")
	require.True(t, ok)
	assert.Equal(t, 4+subscriberBuffer*3, post.Reactions[model.WitnessReaction])
}

func TestGatedOperationsAreSilent(t *testing.T) {
	s := newTestSession(Deps{})
	before := s.State()

	screen, err := s.Navigate(model.ViewFeed)
	require.NoError(t, err)
	assert.Equal(t, router.KindLanding, screen.Kind)

	_, err = s.OpenCheckIn()
	require.NoError(t, err)
	_, err = s.CheckIn(model.EmotionCalm)
	require.NoError(t, err)
	_, err = s.OpenCreate()
	require.NoError(t, err)
	_, err = s.Logout()
	require.NoError(t, err)

	assert.Equal(t, before, s.State())
	_, err = s.SelectType(model.ContentArt)
	assert.ErrorIs(t, err, ErrCreateClosed)
}

func TestLogoutOnlyFromProfile(t *testing.T) {
	s := newTestSession(Deps{})
	onboard(t, s, "Ada")
	s.Wait()

	_, err := s.Logout()
	require.NoError(t, err)
	assert.Equal(t, model.ViewDashboard, s.State().View)

	_, err = s.Navigate(model.ViewProfile)
	require.NoError(t, err)
	screen, err := s.Logout()
	require.NoError(t, err)
	assert.Equal(t, router.KindLanding, screen.Kind)
	assert.Nil(t, s.State().CurrentUser)
	assert.Len(t, s.State().Posts, 3)
}

func TestCheckInClosesModal(t *testing.T) {
	s := newTestSession(Deps{})
	onboard(t, s, "Ada")
	s.Wait()

	screen, err := s.OpenCheckIn()
	require.NoError(t, err)
	require.NotNil(t, screen.Modal)
	assert.Equal(t, "checkin", screen.Modal.Name)

	screen, err = s.CheckIn(model.EmotionHeavy)
	require.NoError(t, err)
	assert.Nil(t, screen.Modal)
	assert.Equal(t, model.EmotionHeavy, *screen.Dashboard.CurrentEmotion)

	posts := s.State().Posts
	require.Len(t, posts, 4)
	assert.Equal(t, model.ContentCheckIn, posts[0].Type())
}

func TestCreateFlowPublishesToFeed(t *testing.T) {
	s := newTestSession(Deps{})
	onboard(t, s, "Ada")
	s.Wait()

	_, err := s.OpenCreate()
	require.NoError(t, err)
	s.Wait()

	_, err = s.SelectType(model.ContentCheckIn)
	assert.ErrorIs(t, err, flow.ErrNotCreatable)
	_, err = s.SelectType(model.ContentWriting)
	require.NoError(t, err)
	_, err = s.SubmitCreate()
	assert.ErrorIs(t, err, flow.ErrContentRequired)

	text, desc, emotion := "small rain", "evening", model.EmotionCalm
	_, err = s.UpdateDraft(DraftUpdate{Content: &text, Description: &desc})
	require.NoError(t, err)
	_, err = s.SubmitCreate()
	assert.ErrorIs(t, err, flow.ErrEmotionRequired)

	_, err = s.UpdateDraft(DraftUpdate{Emotion: &emotion})
	require.NoError(t, err)
	screen, err := s.SubmitCreate()
	require.NoError(t, err)

	assert.Equal(t, router.KindFeed, screen.Kind)
	assert.Nil(t, screen.Modal)
	require.NotEmpty(t, screen.Feed.Posts)
	first := screen.Feed.Posts[0]
	assert.Equal(t, "Ada", first.AuthorName)
	assert.Equal(t, "small rain", first.Content.Raw())
	assert.Equal(t, model.EmotionCalm, first.Emotion)
}

func TestRecordAudio(t *testing.T) {
	s := newTestSession(Deps{})
	onboard(t, s, "Ada")
	_, err := s.OpenCreate()
	require.NoError(t, err)
	s.Wait()

	_, err = s.RecordAudio()
	assert.ErrorIs(t, err, flow.ErrRecordingNotMusic)
	_, err = s.SelectType(model.ContentMusic)
	require.NoError(t, err)
	_, err = s.RecordAudio()
	require.NoError(t, err)

	view, err := s.Creation()
	require.NoError(t, err)
	assert.Equal(t, model.RecordedAudio, view.Content)
}

func TestLockedSpaceIgnoresFilter(t *testing.T) {
	s := newTestSession(Deps{})
	onboard(t, s, "Ada")
	s.Wait()

	screen, err := s.Navigate(model.ViewSpaceArt)
	require.NoError(t, err)
	assert.False(t, screen.Feed.ShowSelector)

	screen, err = s.SetFilter(model.FilterOf(model.ContentWriting))
	require.NoError(t, err)
	assert.Equal(t, model.FilterOf(model.ContentArt), screen.Feed.Filter)
	require.Len(t, screen.Feed.Posts, 1)
	assert.Equal(t, "1", screen.Feed.Posts[0].ID)

	screen, err = s.Navigate(model.ViewFeed)
	require.NoError(t, err)
	assert.Equal(t, model.FilterAll, screen.Feed.Filter)
	screen, err = s.SetFilter(model.FilterOf(model.ContentMusic))
	require.NoError(t, err)
	require.Len(t, screen.Feed.Posts, 1)
	assert.Equal(t, "3", screen.Feed.Posts[0].ID)
}

func TestCommentComposer(t *testing.T) {
	s := newTestSession(Deps{})
	onboard(t, s, "Ada")
	s.Wait()
	_, err := s.NavigateToFeed()
	require.NoError(t, err)

	_, err = s.ToggleComposer("2")
	require.NoError(t, err)
	_, err = s.SetCommentText("   ")
	require.NoError(t, err)
	screen, err := s.SubmitComment()
	require.NoError(t, err)
	assert.Equal(t, "2", screen.Feed.ComposingID)

	_, err = s.SetCommentText("  thank you  ")
	require.NoError(t, err)
	screen, err = s.SubmitComment()
	require.NoError(t, err)
	assert.Empty(t, screen.Feed.ComposingID)

	post, ok := findPost(s.State().Posts, "2")
	require.True(t, ok)
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "  thank you  ", post.Comments[0].Text)
	assert.Equal(t, "Ada", post.Comments[0].AuthorName)
}

func TestActivitySinkSeesMutations(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(Deps{Activity: sink})
	onboard(t, s, "Ada")
	s.Wait()
	_, err := s.CheckIn(model.EmotionCalm)
	require.NoError(t, err)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Contains(t, sink.kind, store.MutationOnboarded)
	assert.Contains(t, sink.kind, store.MutationCheckedIn)
}

func TestClosedSessionRejectsOperations(t *testing.T) {
	s := newTestSession(Deps{})
	ch, _ := s.Subscribe()
	s.Close()

	_, ok := <-ch
	assert.False(t, ok)
	_, err := s.Join()
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func findPost(posts []*model.Post, id string) (*model.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
