package handlers

import "net/http"

// Handlers groups every handler the server mounts
type Handlers struct {
	Middleware *Middleware
	Pages      *PageHandler
	Writing    *WritingHandler
	Library    *LibraryHandler
	Evaluate   *EvaluateHandler
	Games      *GamesHandler
	API        *APIHandler
}

// Routes registers the HTML pages and the JSON API on a new mux and wraps it
// with the session middleware. Logging is left to the caller.
func (h *Handlers) Routes() http.Handler {
	mw := h.Middleware
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /", h.Pages.Home)
	mux.HandleFunc("GET /history", h.Pages.History)
	mux.HandleFunc("POST /session/reset", mw.CSRFProtect(h.Pages.Reset))

	// Writing workshop
	mux.HandleFunc("GET /writing", h.Writing.ShowWriting)
	mux.HandleFunc("POST /writing/example", mw.RateLimit(mw.CSRFProtect(h.Writing.GenerateExample)))
	mux.HandleFunc("POST /writing/draft", mw.CSRFProtect(h.Writing.SaveDraft))
	mux.HandleFunc("POST /writing/submit", mw.CSRFProtect(h.Writing.SubmitForEvaluation))

	// Content library
	mux.HandleFunc("GET /vocabulary", h.Library.Vocabulary)
	mux.HandleFunc("GET /phrases", h.Library.Phrases)
	mux.HandleFunc("GET /sentences", h.Library.Sentences)
	mux.HandleFunc("POST /vocabulary/recommend", mw.RateLimit(mw.CSRFProtect(h.Library.RecommendVocabulary)))
	mux.HandleFunc("POST /sentences/recommend", mw.RateLimit(mw.CSRFProtect(h.Library.RecommendSentences)))

	// Evaluation
	mux.HandleFunc("GET /evaluate", h.Evaluate.ShowEvaluate)
	mux.HandleFunc("POST /evaluate", mw.RateLimit(mw.CSRFProtect(h.Evaluate.Evaluate)))
	mux.HandleFunc("POST /evaluate/{index}/email", mw.RateLimit(mw.CSRFProtect(h.Evaluate.EmailReport)))

	// Games
	mux.HandleFunc("GET /games", h.Games.ShowGames)
	mux.HandleFunc("POST /games/start", mw.CSRFProtect(h.Games.StartRound))
	mux.HandleFunc("POST /games/answer", mw.CSRFProtect(h.Games.Answer))

	// JSON API
	mux.HandleFunc("GET /api/status", h.API.Status)
	mux.HandleFunc("GET /api/themes", h.API.Themes)
	mux.HandleFunc("GET /api/vocabulary", h.API.Vocabulary)
	mux.HandleFunc("GET /api/phrases", h.API.Phrases)
	mux.HandleFunc("GET /api/sentences", h.API.Sentences)
	mux.HandleFunc("GET /api/session", h.API.Session)
	mux.HandleFunc("POST /api/generate", mw.RateLimit(RequireJSON(h.API.Generate)))
	mux.HandleFunc("POST /api/evaluate", mw.RateLimit(RequireJSON(h.API.Evaluate)))
	mux.HandleFunc("POST /api/games/start", RequireJSON(h.API.StartGame))
	mux.HandleFunc("POST /api/games/answer", RequireJSON(h.API.AnswerGame))

	return mw.Session(mux)
}
