package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"magicwriting/internal/library"
	"magicwriting/internal/models"
	"magicwriting/internal/security"
	"magicwriting/internal/service"
	"magicwriting/internal/validation"
)

// maxRequestBody caps JSON request bodies; essays are at most MaxEssayLength runes
const maxRequestBody = 64 << 10

// APIHandler exposes the same operations as the HTML pages as JSON
type APIHandler struct {
	assistant *service.AssistantService
	games     *service.GameService
	email     *service.EmailService
	csrf      *security.CSRFGenerator
	rd        *Renderer
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(rd *Renderer, assistant *service.AssistantService, games *service.GameService, email *service.EmailService, csrf *security.CSRFGenerator) *APIHandler {
	return &APIHandler{rd: rd, assistant: assistant, games: games, email: email, csrf: csrf}
}

func (h *APIHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, apiError{Error: ErrInvalidRequest})
		return false
	}
	return true
}

func (h *APIHandler) session(w http.ResponseWriter, r *http.Request) *models.Session {
	sess := GetSessionFromContext(r.Context())
	if sess == nil {
		respondJSONError(w, h.rd.log, http.StatusInternalServerError, ErrSessionUnavailable, "", nil)
	}
	return sess
}

func respondValidation(w http.ResponseWriter, err error) {
	body := apiError{Error: err.Error()}
	var verr validation.ValidationError
	if errors.As(err, &verr) {
		body = apiError{Error: verr.Message, Field: verr.Field}
	}
	respondJSON(w, http.StatusBadRequest, body)
}

// Status reports whether generation is online
func (h *APIHandler) Status(w http.ResponseWriter, r *http.Request) {
	mode := h.assistant.Mode()
	respondJSON(w, http.StatusOK, statusResponse{
		Mode:   string(mode),
		Online: mode == service.ModeOnline,
		Email:  h.email.IsEnabled(),
	})
}

// Themes lists the browseable themes
func (h *APIHandler) Themes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, library.Themes())
}

// contentLookup resolves ?topic= or ?theme= into a theme
func contentLookup(r *http.Request) (topic string, theme models.Theme, err error) {
	q := r.URL.Query()
	topic = strings.TrimSpace(q.Get("topic"))
	if topic != "" {
		if err := validation.ValidateTopic(topic); err != nil {
			return "", "", err
		}
		return topic, library.ResolveTheme(topic), nil
	}
	if q.Get("theme") == "" {
		return "", models.ThemeGeneral, nil
	}
	theme, err = validation.ValidateTheme(q.Get("theme"))
	return "", theme, err
}

func serveContent[T any](w http.ResponseWriter, r *http.Request, search func(string) []T, forTheme func(models.Theme) []T) {
	topic, theme, err := contentLookup(r)
	if err != nil {
		respondValidation(w, err)
		return
	}
	entries := forTheme(theme)
	if topic != "" {
		entries = search(topic)
	}
	respondJSON(w, http.StatusOK, contentResponse[T]{Topic: topic, Theme: theme, Entries: entries})
}

func (h *APIHandler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	serveContent(w, r, library.SearchVocabulary, library.VocabularyForTheme)
}

func (h *APIHandler) Phrases(w http.ResponseWriter, r *http.Request) {
	serveContent(w, r, library.SearchPhrases, library.PhrasesForTheme)
}

func (h *APIHandler) Sentences(w http.ResponseWriter, r *http.Request) {
	serveContent(w, r, library.SearchSentencePatterns, library.SentencePatternsForTheme)
}

// parseGeneration validates a generate or evaluate request body
func parseGeneration(req generateRequest, needEssay bool) (service.GenerationRequest, error) {
	topic := strings.TrimSpace(req.Topic)
	if err := validation.ValidateTopic(topic); err != nil {
		return service.GenerationRequest{}, err
	}
	grade, err := validation.ValidateGrade(req.Grade)
	if err != nil {
		return service.GenerationRequest{}, err
	}
	if needEssay {
		if err := validation.ValidateEssay(req.Content); err != nil {
			return service.GenerationRequest{}, err
		}
	}
	return service.GenerationRequest{Topic: topic, Grade: grade, Essay: req.Content}, nil
}

// Generate runs one of the generation tasks
func (h *APIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}
	var body generateRequest
	if !h.decode(w, r, &body) {
		return
	}
	task, ok := models.ParseTask(body.Task)
	if !ok {
		respondJSON(w, http.StatusBadRequest, apiError{Error: "unknown task", Field: "task"})
		return
	}
	req, err := parseGeneration(body, task == models.TaskEvaluateEssay)
	if err != nil {
		respondValidation(w, err)
		return
	}

	gen := h.assistant.Generate(r.Context(), task, req)
	if task == models.TaskGenerateExample {
		sess.AddWriting(models.WritingRecord{
			Kind:      models.WritingExample,
			Topic:     req.Topic,
			Grade:     string(req.Grade),
			Content:   gen.Text,
			Timestamp: time.Now(),
		})
	}
	respondJSON(w, http.StatusOK, generateResponse{
		Task:     task.String(),
		Mode:     string(h.assistant.Mode()),
		Text:     gen.Text,
		Warnings: gen.Warnings,
	})
}

// Evaluate scores an essay and records it in the session history
func (h *APIHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}
	var body generateRequest
	if !h.decode(w, r, &body) {
		return
	}
	req, err := parseGeneration(body, true)
	if err != nil {
		respondValidation(w, err)
		return
	}
	result := h.assistant.Evaluate(r.Context(), req)
	sess.AddEvaluation(result)
	respondJSON(w, http.StatusOK, result)
}

// StartGame deals a new round. The answer is never sent.
func (h *APIHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}
	var body startGameRequest
	if !h.decode(w, r, &body) {
		return
	}
	game, ok := models.ParseGameType(body.Game)
	if !ok {
		respondJSON(w, http.StatusBadRequest, apiError{Error: "unknown game", Field: "game"})
		return
	}
	theme := sess.Form.GameTheme
	if body.Theme != "" {
		t, err := validation.ValidateTheme(body.Theme)
		if err != nil {
			respondValidation(w, err)
			return
		}
		theme = t
	}

	round, err := h.games.NewRound(game, theme)
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, apiError{Error: gameErrorMessage(err)})
		return
	}
	sess.Form.SelectedGame = game
	sess.Form.GameTheme = theme
	sess.Game = round
	respondJSON(w, http.StatusOK, round.Public())
}

// AnswerGame checks an answer to the open round
func (h *APIHandler) AnswerGame(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}
	var body answerRequest
	if !h.decode(w, r, &body) {
		return
	}
	result, err := h.games.CheckAnswer(sess, body.Answer)
	if err != nil {
		respondJSON(w, http.StatusConflict, apiError{Error: gameErrorMessage(err)})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Session returns the caller's session state
func (h *APIHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	if sess == nil {
		return
	}
	token, err := h.csrf.GenerateToken(sess.ID)
	if err != nil {
		respondJSONError(w, h.rd.log, http.StatusInternalServerError, ErrInternalServerError, "Failed to generate CSRF token", err)
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{
		ID:                sess.ID,
		Page:              sess.Page,
		GameScore:         sess.GameScore,
		WritingHistory:    sess.WritingHistory,
		EvaluationHistory: sess.EvaluationHistory,
		Game:              sess.Game.Public(),
		CSRFToken:         token,
		ExpiresAt:         sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
