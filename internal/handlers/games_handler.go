package handlers

import (
	"errors"
	"net/http"

	"magicwriting/internal/models"
	"magicwriting/internal/service"
	"magicwriting/internal/validation"
)

// GamesHandler serves the writing games
type GamesHandler struct {
	rd    *Renderer
	games *service.GameService
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(rd *Renderer, games *service.GameService) *GamesHandler {
	return &GamesHandler{rd: rd, games: games}
}

func (h *GamesHandler) view(sess *models.Session) GamesViewData {
	selected := sess.Form.SelectedGame
	return GamesViewData{
		PageData:   h.rd.pageData(sess, models.PageGames, "游戏乐园"),
		Games:      buildGameOptions(selected),
		Selected:   selected,
		ShowThemes: selected == models.GameWordPuzzle || selected == models.GameVocabQuiz,
		Themes:     buildGameThemes(sess.Form.GameTheme),
		Round:      sess.Game.Public(),
	}
}

// ShowGames renders the game menu. ?game= selects a game and clears any open round.
func (h *GamesHandler) ShowGames(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	if raw := r.URL.Query().Get("game"); raw != "" {
		game, ok := models.ParseGameType(raw)
		if !ok {
			http.Error(w, ErrInvalidRequest, http.StatusBadRequest)
			return
		}
		if game != sess.Form.SelectedGame {
			sess.Game = nil
		}
		sess.Form.SelectedGame = game
	}
	h.rd.render(w, "games.tmpl", h.view(sess))
}

// StartRound deals a new round of the selected game
func (h *GamesHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	game, ok := models.ParseGameType(r.FormValue("game"))
	if !ok {
		game = sess.Form.SelectedGame
	}
	sess.Form.SelectedGame = game
	if raw := r.FormValue("theme"); raw != "" {
		if theme, err := validation.ValidateTheme(raw); err == nil {
			sess.Form.GameTheme = theme
		}
	}

	round, err := h.games.NewRound(game, sess.Form.GameTheme)
	if err != nil {
		data := h.view(sess)
		data.Error = gameErrorMessage(err)
		h.rd.render(w, "games.tmpl", data)
		return
	}
	sess.Game = round
	h.rd.render(w, "games.tmpl", h.view(sess))
}

// Answer checks the answer to the open round
func (h *GamesHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	result, err := h.games.CheckAnswer(sess, r.FormValue("answer"))
	data := h.view(sess)
	if err != nil {
		data.Error = gameErrorMessage(err)
	} else {
		data.Answer = &result
	}
	h.rd.render(w, "games.tmpl", data)
}

func gameErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrUnknownGame):
		return "请先选择游戏类型"
	case errors.Is(err, service.ErrNoActiveRound):
		return "请先开始新一题"
	case errors.Is(err, service.ErrRoundAnswered):
		return "这一题已经回答过了，请开始新一题"
	case errors.Is(err, service.ErrNotEnoughWords):
		return "这个主题的单词不够，请换一个主题"
	default:
		return ErrInternalServerError
	}
}
