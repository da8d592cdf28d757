package handlers

import (
	"net/http"
	"strings"

	"magicwriting/internal/library"
	"magicwriting/internal/models"
	"magicwriting/internal/service"
	"magicwriting/internal/validation"
)

// libraryPage describes one of the three content browsing pages
type libraryPage struct {
	page          models.Page
	title         string
	heading       string
	path          string
	recommendPath string
	task          models.Task
	fill          func(d *LibraryViewData, theme models.Theme, topic string)
}

var (
	vocabularyPage = libraryPage{
		page:          models.PageVocabulary,
		title:         "词汇学习",
		heading:       "📖 主题词汇学习",
		path:          "/vocabulary",
		recommendPath: "/vocabulary/recommend",
		task:          models.TaskRecommendVocabulary,
		fill: func(d *LibraryViewData, theme models.Theme, topic string) {
			if topic != "" {
				d.Vocabulary = library.SearchVocabulary(topic)
				return
			}
			d.Vocabulary = library.VocabularyForTheme(theme)
		},
	}
	phrasesPage = libraryPage{
		page:    models.PagePhrases,
		title:   "常用短语",
		heading: "💬 常用短语",
		path:    "/phrases",
		fill: func(d *LibraryViewData, theme models.Theme, topic string) {
			if topic != "" {
				d.Phrases = library.SearchPhrases(topic)
				return
			}
			d.Phrases = library.PhrasesForTheme(theme)
		},
	}
	sentencesPage = libraryPage{
		page:          models.PageSentences,
		title:         "句型学习",
		heading:       "🔤 句型学习",
		path:          "/sentences",
		recommendPath: "/sentences/recommend",
		task:          models.TaskRecommendSentences,
		fill: func(d *LibraryViewData, theme models.Theme, topic string) {
			if topic != "" {
				d.Patterns = library.SearchSentencePatterns(topic)
				return
			}
			d.Patterns = library.SentencePatternsForTheme(theme)
		},
	}
)

// LibraryHandler serves vocabulary, phrase and sentence pattern lookups
type LibraryHandler struct {
	rd        *Renderer
	assistant *service.AssistantService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(rd *Renderer, assistant *service.AssistantService) *LibraryHandler {
	return &LibraryHandler{rd: rd, assistant: assistant}
}

func (h *LibraryHandler) Vocabulary(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, vocabularyPage)
}

func (h *LibraryHandler) Phrases(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, phrasesPage)
}

func (h *LibraryHandler) Sentences(w http.ResponseWriter, r *http.Request) {
	h.show(w, r, sentencesPage)
}

func (h *LibraryHandler) RecommendVocabulary(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, vocabularyPage)
}

func (h *LibraryHandler) RecommendSentences(w http.ResponseWriter, r *http.Request) {
	h.recommend(w, r, sentencesPage)
}

// lookup builds the view for either a topic search or a theme button
func (h *LibraryHandler) lookup(sess *models.Session, p libraryPage, topic, themeParam string) (LibraryViewData, error) {
	data := LibraryViewData{
		PageData: h.rd.pageData(sess, p.page, p.title),
		Heading:  p.heading,
		Path:     p.path,
		Topic:    topic,
		Themes:   library.Themes(),
	}

	switch {
	case topic != "":
		if err := validation.ValidateTopic(topic); err != nil {
			return data, err
		}
		sess.Form.SearchTopic = topic
		data.Theme = library.ResolveTheme(topic)
		data.RecommendPath = p.recommendPath
	case themeParam != "":
		theme, err := validation.ValidateTheme(themeParam)
		if err != nil {
			return data, err
		}
		data.Theme = theme
	default:
		return data, nil
	}

	data.Searched = true
	data.ThemeLabel = library.ThemeLabel(data.Theme)
	p.fill(&data, data.Theme, topic)
	return data, nil
}

func (h *LibraryHandler) show(w http.ResponseWriter, r *http.Request, p libraryPage) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	q := r.URL.Query()
	data, err := h.lookup(sess, p, strings.TrimSpace(q.Get("topic")), q.Get("theme"))
	if err != nil {
		data.Error = validationMessage(err)
	}
	h.rd.render(w, "library.tmpl", data)
}

// recommend asks the assistant for more material on the searched topic
func (h *LibraryHandler) recommend(w http.ResponseWriter, r *http.Request, p libraryPage) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	topic := strings.TrimSpace(r.FormValue("topic"))
	if topic == "" {
		topic = sess.Form.SearchTopic
	}
	data, err := h.lookup(sess, p, topic, "")
	if err == nil && topic == "" {
		err = validation.ValidateTopic(topic)
	}
	if err != nil {
		data.Error = validationMessage(err)
		h.rd.render(w, "library.tmpl", data)
		return
	}

	grade, _ := validation.ValidateGrade(sess.Form.WritingGrade)
	gen := h.assistant.Generate(r.Context(), p.task, service.GenerationRequest{Topic: topic, Grade: grade})
	data.Recommendation = &gen
	data.Warnings = gen.Warnings
	h.rd.render(w, "library.tmpl", data)
}
