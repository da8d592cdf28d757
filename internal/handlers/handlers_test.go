package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicwriting/internal/llm"
	"magicwriting/internal/logger"
	"magicwriting/internal/models"
	"magicwriting/internal/security"
	"magicwriting/internal/service"
	"magicwriting/internal/session"
	"magicwriting/internal/templates"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// fixedCompleter always answers with the same text
type fixedCompleter struct {
	text  string
	calls int
}

func (f *fixedCompleter) Complete(context.Context, []llm.Message) (string, error) {
	f.calls++
	return f.text, nil
}

type testEnv struct {
	handler  http.Handler
	sessions *session.Manager
	signer   *security.SessionSigner
	csrf     *security.CSRFGenerator
}

type envOptions struct {
	completer service.Completer
	rate      int
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()
	log := logger.NewNop()

	signer, err := security.NewSessionSigner([]byte(testSecret))
	require.NoError(t, err)
	csrf, err := security.NewCSRFGenerator([]byte(testSecret))
	require.NoError(t, err)
	if opts.rate == 0 {
		opts.rate = 100
	}
	limiter := security.NewRateLimiter(opts.rate, time.Minute)
	t.Cleanup(limiter.Stop)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	email, err := service.NewEmailService(context.Background(), "us-east-1", "", "", "", log)
	require.NoError(t, err)

	assistant := service.NewAssistantService(opts.completer, service.AssistantOptions{
		MaxAttempts:    1,
		InitialBackoff: time.Millisecond,
	}, log)
	games := service.NewGameService(rand.New(rand.NewSource(7)))
	sessions := session.NewManager(session.NewMemoryStore(), time.Hour, log)
	rd := NewRenderer(tmpl, csrf, assistant, log)

	h := &Handlers{
		Middleware: NewMiddleware(sessions, signer, csrf, limiter, log),
		Pages:      NewPageHandler(rd, sessions, email),
		Writing:    NewWritingHandler(rd, assistant),
		Library:    NewLibraryHandler(rd, assistant),
		Evaluate:   NewEvaluateHandler(rd, assistant, email),
		Games:      NewGamesHandler(rd, games),
		API:        NewAPIHandler(rd, assistant, games, email, csrf),
	}
	return &testEnv{handler: Logging(log, h.Routes()), sessions: sessions, signer: signer, csrf: csrf}
}

// client is one browser: it keeps the session cookie between requests
type client struct {
	t      *testing.T
	env    *testEnv
	cookie *http.Cookie
}

func (e *testEnv) client(t *testing.T) *client {
	return &client{t: t, env: e}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.env.handler.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName {
			if ck.MaxAge < 0 {
				c.cookie = nil
			} else {
				c.cookie = ck
			}
		}
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

// post submits a form, adding the session's CSRF token
func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	if form.Get(CSRFFormField) == "" {
		form.Set(CSRFFormField, c.csrfToken())
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func (c *client) postJSON(path string, body any) *httptest.ResponseRecorder {
	data, err := json.Marshal(body)
	require.NoError(c.t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *client) sessionID() string {
	c.t.Helper()
	if c.cookie == nil {
		c.get("/")
	}
	require.NotNil(c.t, c.cookie, "no session cookie")
	id, err := c.env.signer.Verify(c.cookie.Value)
	require.NoError(c.t, err)
	return id
}

func (c *client) csrfToken() string {
	token, err := c.env.csrf.GenerateToken(c.sessionID())
	require.NoError(c.t, err)
	return token
}

func (c *client) session() *models.Session {
	sess, err := c.env.sessions.Load(context.Background(), c.sessionID())
	require.NoError(c.t, err)
	require.NotNil(c.t, sess)
	return sess
}

func TestHomeCreatesSessionAndShowsOfflineBadge(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, c.cookie)
	assert.True(t, c.cookie.HttpOnly)
	assert.Contains(t, rec.Body.String(), "离线模式")
	assert.Equal(t, models.PageHome, c.session().Page)

	// the same cookie keeps the same session
	id := c.sessionID()
	c.get("/history")
	assert.Equal(t, id, c.sessionID())
	assert.Equal(t, models.PageHistory, c.session().Page)
}

func TestOnlineModeHasNoOfflineBadge(t *testing.T) {
	c := newTestEnv(t, envOptions{completer: &fixedCompleter{text: "hello"}}).client(t)
	rec := c.get("/")
	assert.NotContains(t, rec.Body.String(), "离线模式")
}

func TestUnknownPathIsNotFound(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)
	assert.Equal(t, http.StatusNotFound, c.get("/nope").Code)
}

func TestTamperedCookieStartsNewSession(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)
	c.get("/")
	first := c.sessionID()

	c.cookie = &http.Cookie{Name: SessionCookieName, Value: c.cookie.Value + "x"}
	c.get("/")
	assert.NotEqual(t, first, c.sessionID())
}

func TestFormPostRequiresCSRFToken(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)
	c.get("/")

	rec := c.post("/writing/example", url.Values{CSRFFormField: {"forged"}, "topic": {"My Pet"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, c.session().WritingHistory)
}

func TestGenerateExampleOffline(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.post("/writing/example", url.Values{"topic": {"My Pet"}, "grade": {"Grade 3-4"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Today I want to write about My Pet.")

	sess := c.session()
	require.Len(t, sess.WritingHistory, 1)
	assert.Equal(t, models.WritingExample, sess.WritingHistory[0].Kind)
	assert.Equal(t, "My Pet", sess.WritingHistory[0].Topic)
	assert.Equal(t, "Grade 3-4", sess.Form.WritingGrade)
}

func TestGenerateExampleRequiresTopic(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.post("/writing/example", url.Values{"topic": {"   "}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "请先输入写作主题")
	assert.Empty(t, c.session().WritingHistory)
}

func TestSaveDraftAndSubmit(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.post("/writing/draft", url.Values{"topic": {"My Family"}, "content": {"I love my mum."}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "草稿已保存！")

	rec = c.post("/writing/submit", url.Values{"topic": {"My Family"}, "content": {"I love my dad."}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/evaluate", rec.Header().Get("Location"))

	rec = c.get("/evaluate")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "I love my dad.")

	sess := c.session()
	require.Len(t, sess.WritingHistory, 1)
	assert.Equal(t, models.WritingDraft, sess.WritingHistory[0].Kind)
}

func TestEvaluateOnlineExtractsScore(t *testing.T) {
	fc := &fixedCompleter{text: "总评分：88/100\n内容：26/30\n结构：22/25\n词汇：22/25\n语法：18/20\n很好！"}
	c := newTestEnv(t, envOptions{completer: fc}).client(t)

	rec := c.post("/evaluate", url.Values{"topic": {"My Pet"}, "content": {"I have a dog."}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "88/100")
	assert.Equal(t, 1, fc.calls)

	sess := c.session()
	require.Len(t, sess.EvaluationHistory, 1)
	res := sess.EvaluationHistory[0]
	assert.Equal(t, 88, res.TotalScore)
	require.Len(t, res.CategoryScores, 4)
	assert.Equal(t, 26, res.CategoryScores[0].Score)

	rec = c.get("/evaluate?result=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "88/100")
	assert.Equal(t, http.StatusNotFound, c.get("/evaluate?result=3").Code)
}

func TestEvaluateOfflineUsesDefaultScore(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.post("/evaluate", url.Values{"topic": {"Grade 100 Day"}, "content": {"We had 100 balloons."}})
	require.Equal(t, http.StatusOK, rec.Code)

	sess := c.session()
	require.Len(t, sess.EvaluationHistory, 1)
	assert.Equal(t, service.DefaultScore, sess.EvaluationHistory[0].TotalScore)
}

func TestEvaluateRequiresEssay(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.post("/evaluate", url.Values{"topic": {"My Pet"}, "content": {""}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, c.session().EvaluationHistory)
}

func TestEmailReportWhenDisabled(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)
	c.post("/evaluate", url.Values{"topic": {"My Pet"}, "content": {"I have a dog."}})

	rec := c.post("/evaluate/0/email", url.Values{"email": {"parent@example.com"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "邮件功能未开启")

	assert.Equal(t, http.StatusNotFound, c.post("/evaluate/5/email", url.Values{"email": {"parent@example.com"}}).Code)
}

func TestLibraryPages(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.get("/vocabulary?topic=" + url.QueryEscape("My Pet Dog"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rabbit")
	assert.Equal(t, "My Pet Dog", c.session().Form.SearchTopic)
	assert.Equal(t, models.PageVocabulary, c.session().Page)

	rec = c.get("/phrases?theme=school")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PagePhrases, c.session().Page)

	rec = c.get("/sentences?theme=dinosaurs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown theme")

	rec = c.get("/sentences")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "?theme=animals")
}

func TestRecommendVocabularyOffline(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.post("/vocabulary/recommend", url.Values{"topic": {"My Pet"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "推荐的词汇")
}

func TestWordGameRound(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.get("/games?game=word_puzzle")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.GameWordPuzzle, c.session().Form.SelectedGame)

	rec = c.post("/games/start", url.Values{"game": {"word_puzzle"}, "theme": {"food"}})
	require.Equal(t, http.StatusOK, rec.Code)

	round := c.session().Game
	require.NotNil(t, round)
	assert.Equal(t, models.ThemeFood, round.Theme)
	assert.NotContains(t, rec.Body.String(), "value=\""+round.CorrectAnswer+"\"")

	rec = c.post("/games/answer", url.Values{"answer": {strings.ToLower(round.CorrectAnswer) + " "}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "正确！")
	assert.Equal(t, models.PointsPerCorrectAnswer, c.session().GameScore)

	// a second answer to the same round earns nothing
	rec = c.post("/games/answer", url.Values{"answer": {round.CorrectAnswer}})
	assert.Contains(t, rec.Body.String(), "这一题已经回答过了")
	assert.Equal(t, models.PointsPerCorrectAnswer, c.session().GameScore)
}

func TestResetDiscardsSession(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	c := env.client(t)
	c.post("/writing/example", url.Values{"topic": {"My Pet"}})
	id := c.sessionID()

	rec := c.post("/session/reset", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Nil(t, c.cookie)

	gone, err := env.sessions.Load(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	c.get("/")
	assert.NotEqual(t, id, c.sessionID())
	assert.Empty(t, c.session().WritingHistory)
}

func TestSessionsAreIsolated(t *testing.T) {
	env := newTestEnv(t, envOptions{})
	alice := env.client(t)
	bob := env.client(t)

	alice.post("/writing/example", url.Values{"topic": {"My School"}})
	bob.get("/")

	assert.Len(t, alice.session().WritingHistory, 1)
	assert.Empty(t, bob.session().WritingHistory)
	assert.NotEqual(t, alice.sessionID(), bob.sessionID())
}

func TestAPIStatusAndThemes(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.get("/api/status")
	require.Equal(t, http.StatusOK, rec.Code)
	var status statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "offline", status.Mode)
	assert.False(t, status.Online)
	assert.False(t, status.Email)

	rec = c.get("/api/themes")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"theme":"animals"`)
}

func TestAPIContent(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.get("/api/vocabulary?topic=" + url.QueryEscape("my pet"))
	require.Equal(t, http.StatusOK, rec.Code)
	var vocab contentResponse[models.VocabularyEntry]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vocab))
	assert.Equal(t, models.ThemeAnimals, vocab.Theme)
	assert.NotEmpty(t, vocab.Entries)

	rec = c.get("/api/phrases?theme=bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"theme"`)

	rec = c.get("/api/sentences")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"theme":"general"`)
}

func TestAPIGenerate(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("task=example"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	assert.Equal(t, http.StatusUnsupportedMediaType, c.do(req).Code)

	rec := c.postJSON("/api/generate", generateRequest{Task: "example", Topic: "My Pet", Grade: "Grade 1-2"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "example", resp.Task)
	assert.Equal(t, "offline", resp.Mode)
	assert.Contains(t, resp.Text, "My Pet")
	assert.Len(t, c.session().WritingHistory, 1)

	rec = c.postJSON("/api/generate", generateRequest{Task: "poem", Topic: "My Pet"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.postJSON("/api/generate", generateRequest{Task: "example", Topic: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"topic"`)
}

func TestAPIEvaluate(t *testing.T) {
	c := newTestEnv(t, envOptions{completer: &fixedCompleter{text: "Score: 64\nKeep going."}}).client(t)

	rec := c.postJSON("/api/evaluate", generateRequest{Topic: "My Pet", Content: "I have a cat."})
	require.Equal(t, http.StatusOK, rec.Code)
	var result models.EvaluationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 64, result.TotalScore)
	assert.Len(t, result.CategoryScores, 4)
	assert.Len(t, c.session().EvaluationHistory, 1)
}

func TestAPIGameNeverLeaksAnswer(t *testing.T) {
	c := newTestEnv(t, envOptions{}).client(t)

	rec := c.postJSON("/api/games/start", startGameRequest{Game: "vocab_quiz", Theme: "animals"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"answer"`)

	round := c.session().Game
	require.NotNil(t, round)
	require.Len(t, round.Options, 4)

	rec = c.get("/api/session")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"answer"`)

	rec = c.postJSON("/api/games/answer", answerRequest{Answer: round.CorrectAnswer})
	require.Equal(t, http.StatusOK, rec.Code)
	var answer models.GameAnswer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &answer))
	assert.True(t, answer.Correct)
	assert.Equal(t, 10, answer.GameScore)

	rec = c.postJSON("/api/games/answer", answerRequest{Answer: round.CorrectAnswer})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = c.postJSON("/api/games/start", startGameRequest{Game: "chess"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerationIsRateLimited(t *testing.T) {
	c := newTestEnv(t, envOptions{rate: 1}).client(t)

	body := generateRequest{Task: "example", Topic: "My Pet"}
	require.Equal(t, http.StatusOK, c.postJSON("/api/generate", body).Code)

	rec := c.postJSON("/api/generate", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}
