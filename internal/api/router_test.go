package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/softspace/config"
	"github.com/d60-Lab/softspace/internal/advisory"
	"github.com/d60-Lab/softspace/internal/api/handler"
	"github.com/d60-Lab/softspace/internal/api/middleware"
	"github.com/d60-Lab/softspace/internal/app"
	"github.com/d60-Lab/softspace/internal/router"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t        *testing.T
	engine   http.Handler
	registry *app.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	require.NoError(t, handler.RegisterValidators())

	cfg := &config.Config{Server: config.ServerConfig{Mode: "test"}}
	adv := advisory.NewService(nil)
	registry := app.NewRegistry(app.Deps{Advisor: adv}, time.Hour)
	tokens := middleware.NewTokenIssuer("test-secret", time.Hour)
	h := handler.New(registry, tokens, adv, handler.WithHeartbeat(50*time.Millisecond))

	engine := NewRouter(cfg, Deps{
		Handler:  h,
		Registry: registry,
		Tokens:   tokens,
		Limiter:  middleware.NewKeyedLimiter(0, 0),
	})
	t.Cleanup(registry.Close)
	return &testServer{t: t, engine: engine, registry: registry}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (s *testServer) screen(method, path, token string, body interface{}) router.Screen {
	s.t.Helper()
	code, env := s.do(method, path, token, body)
	require.Equal(s.t, http.StatusOK, code, env.Message)
	var screen router.Screen
	require.NoError(s.t, json.Unmarshal(env.Data, &screen))
	return screen
}

func (s *testServer) newSession() (token, id string) {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(s.t, http.StatusCreated, code)
	var data struct {
		Token     string        `json:"token"`
		SessionID string        `json:"session_id"`
		Screen    router.Screen `json:"screen"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(s.t, data.Token)
	assert.Equal(s.t, router.KindLanding, data.Screen.Kind)
	return data.Token, data.SessionID
}

func (s *testServer) onboard(token, name string) router.Screen {
	s.t.Helper()
	s.screen(http.MethodPost, "/api/v1/join", token, nil)
	s.screen(http.MethodPut, "/api/v1/onboarding/name", token, map[string]string{"name": name})
	s.screen(http.MethodPost, "/api/v1/onboarding/next", token, nil)
	s.screen(http.MethodPost, "/api/v1/onboarding/next", token, nil)
	return s.screen(http.MethodPost, "/api/v1/onboarding/next", token, nil)
}

func TestHealthAndSessionCreation(t *testing.T) {
	srv := newTestServer(t)
	code, _ := srv.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, code)

	token, id := srv.newSession()
	_, ok := srv.registry.Get(id)
	assert.True(t, ok)

	screen := srv.screen(http.MethodGet, "/api/v1/screen", token, nil)
	assert.Equal(t, router.KindLanding, screen.Kind)
}

func TestSessionRequired(t *testing.T) {
	srv := newTestServer(t)
	code, env := srv.do(http.MethodGet, "/api/v1/screen", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "missing session token", env.Message)

	code, _ = srv.do(http.MethodPost, "/api/v1/join", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestOnboardingOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token, _ := srv.newSession()

	code, _ := srv.do(http.MethodPut, "/api/v1/onboarding/name", token, map[string]string{"name": "Ada"})
	assert.Equal(t, http.StatusConflict, code)

	srv.screen(http.MethodPost, "/api/v1/join", token, nil)
	code, env := srv.do(http.MethodPost, "/api/v1/onboarding/next", token, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Message, "name")

	code, _ = srv.do(http.MethodPut, "/api/v1/onboarding/emotion", token, map[string]string{"emotion": "Grumpy"})
	assert.Equal(t, http.StatusBadRequest, code)

	screen := srv.onboard(token, "Ada")
	assert.Equal(t, router.KindDashboard, screen.Kind)
	assert.True(t, strings.HasSuffix(screen.Dashboard.Greeting, ", Ada."), screen.Dashboard.Greeting)
}

func TestFeedInteractions(t *testing.T) {
	srv := newTestServer(t)
	token, _ := srv.newSession()
	srv.onboard(token, "Ada")

	code, _ := srv.do(http.MethodPost, "/api/v1/navigate", token, map[string]string{"view": "NOWHERE"})
	assert.Equal(t, http.StatusBadRequest, code)

	screen := srv.screen(http.MethodPost, "/api/v1/navigate", token, map[string]string{"view": "FEED"})
	require.Equal(t, router.KindFeed, screen.Kind)
	assert.Len(t, screen.Feed.Posts, 3)

	code, _ = srv.do(http.MethodPut, "/api/v1/feed/filter", token, map[string]string{"filter": "Poetry"})
	assert.Equal(t, http.StatusBadRequest, code)
	screen = srv.screen(http.MethodPut, "/api/v1/feed/filter", token, map[string]string{"filter": "Writing"})
	require.Len(t, screen.Feed.Posts, 1)
	assert.Equal(t, "2", screen.Feed.Posts[0].ID)

	screen = srv.screen(http.MethodPost, "/api/v1/posts/2/reactions", token, nil)
	assert.Equal(t, 9, screen.Feed.Posts[0].Reactions["witness"])

	srv.screen(http.MethodPost, "/api/v1/posts/2/composer", token, nil)
	srv.screen(http.MethodPut, "/api/v1/composer/text", token, map[string]string{"text": "I see you"})
	screen = srv.screen(http.MethodPost, "/api/v1/composer/submit", token, nil)
	require.Len(t, screen.Feed.Posts[0].Comments, 1)
	assert.Equal(t, "I see you", screen.Feed.Posts[0].Comments[0].Text)

	// 未知帖子静默忽略
	srv.screen(http.MethodPost, "/api/v1/posts/missing/reactions", token, map[string]string{"label": "witness"})
}

func TestCheckInAndCreate(t *testing.T) {
	srv := newTestServer(t)
	token, id := srv.newSession()
	srv.onboard(token, "Ada")

	code, _ := srv.do(http.MethodPost, "/api/v1/create/select", token, map[string]string{"type": "Art"})
	assert.Equal(t, http.StatusConflict, code)

	screen := srv.screen(http.MethodPost, "/api/v1/checkin/open", token, nil)
	require.NotNil(t, screen.Modal)
	screen = srv.screen(http.MethodPost, "/api/v1/checkin", token, map[string]string{"emotion": "Calm"})
	assert.Nil(t, screen.Modal)

	screen = srv.screen(http.MethodPost, "/api/v1/create/open", token, nil)
	require.NotNil(t, screen.Modal)
	assert.Equal(t, "create", screen.Modal.Name)

	sess, ok := srv.registry.Get(id)
	require.True(t, ok)
	sess.Wait()

	code, _ = srv.do(http.MethodPost, "/api/v1/create/select", token, map[string]string{"type": "Check-in"})
	assert.Equal(t, http.StatusBadRequest, code)
	srv.screen(http.MethodPost, "/api/v1/create/select", token, map[string]string{"type": "Art"})
	screen = srv.screen(http.MethodPost, "/api/v1/create/submit", token, nil)

	require.Equal(t, router.KindFeed, screen.Kind)
	first := screen.Feed.Posts[0]
	assert.Equal(t, "Ada", first.AuthorName)
	assert.Equal(t, "Calm", string(first.Emotion))
	assert.True(t, strings.HasPrefix(first.Content.Raw(), "https://picsum.photos/600/400?random="))
}

func TestAdvisoryEndpoints(t *testing.T) {
	srv := newTestServer(t)

	code, env := srv.do(http.MethodGet, "/api/v1/theme", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), advisory.FallbackTheme.Title)

	code, env = srv.do(http.MethodGet, "/api/v1/prompt?emotion=Calm", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), advisory.FallbackPrompt)

	code, _ = srv.do(http.MethodGet, "/api/v1/prompt?emotion=calm", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = srv.do(http.MethodGet, "/api/v1/pulse", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), router.DefaultPulse[0])
}

func TestEventStream(t *testing.T) {
	srv := newTestServer(t)
	token, _ := srv.newSession()

	ts := httptest.NewServer(srv.engine)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/v1/events?token="+token, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	lines := make(chan string, 64)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(resp.Body)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	waitEvent := func(name string) string {
		t.Helper()
		for {
			select {
			case line, ok := <-lines:
				require.True(t, ok, "stream closed before %s", name)
				if line == "event:"+name {
					data := <-lines
					return strings.TrimPrefix(data, "data:")
				}
			case <-ctx.Done():
				t.Fatalf("timed out waiting for %s", name)
			}
		}
	}

	first := waitEvent("screen")
	assert.Contains(t, first, `"kind":"landing"`)

	srv.screen(http.MethodPost, "/api/v1/join", token, nil)
	next := waitEvent("screen")
	assert.Contains(t, next, `"kind":"onboarding"`)

	waitEvent("ping")
}
