package handlers

import (
	"net/http"
	"strings"
	"time"

	"magicwriting/internal/models"
	"magicwriting/internal/service"
	"magicwriting/internal/validation"
)

// WritingHandler serves the writing workshop
type WritingHandler struct {
	rd        *Renderer
	assistant *service.AssistantService
}

// NewWritingHandler creates a new writing handler
func NewWritingHandler(rd *Renderer, assistant *service.AssistantService) *WritingHandler {
	return &WritingHandler{rd: rd, assistant: assistant}
}

func (h *WritingHandler) view(sess *models.Session) WritingViewData {
	return WritingViewData{
		PageData:    h.rd.pageData(sess, models.PageWriting, "写作工坊"),
		Topic:       sess.Form.WritingTopic,
		Draft:       sess.Form.WritingDraft,
		GradeSelect: gradeSelect(sess.Form.WritingGrade),
	}
}

// readWritingForm copies the writing form into the session
func readWritingForm(r *http.Request, sess *models.Session) (models.GradeBand, error) {
	if err := r.ParseForm(); err != nil {
		return "", err
	}
	sess.Form.WritingTopic = strings.TrimSpace(r.FormValue("topic"))
	sess.Form.WritingDraft = r.FormValue("content")
	grade, _ := validation.ValidateGrade(r.FormValue("grade"))
	sess.Form.WritingGrade = string(grade)
	return grade, nil
}

// ShowWriting renders the writing workshop
func (h *WritingHandler) ShowWriting(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	h.rd.render(w, "writing.tmpl", h.view(sess))
}

// GenerateExample produces an example essay for the topic
func (h *WritingHandler) GenerateExample(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	grade, err := readWritingForm(r, sess)
	if err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	data := h.view(sess)
	if err := validation.ValidateTopic(sess.Form.WritingTopic); err != nil {
		data.Error = validationMessage(err)
		h.rd.render(w, "writing.tmpl", data)
		return
	}

	gen := h.assistant.Generate(r.Context(), models.TaskGenerateExample, service.GenerationRequest{
		Topic: sess.Form.WritingTopic,
		Grade: grade,
	})
	sess.AddWriting(models.WritingRecord{
		Kind:      models.WritingExample,
		Topic:     sess.Form.WritingTopic,
		Grade:     string(grade),
		Content:   gen.Text,
		Timestamp: time.Now(),
	})

	data.Example = &gen
	data.Warnings = gen.Warnings
	h.rd.render(w, "writing.tmpl", data)
}

// SaveDraft stores the current draft in the session history
func (h *WritingHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	grade, err := readWritingForm(r, sess)
	if err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	data := h.view(sess)
	if err := validation.ValidateEssay(sess.Form.WritingDraft); err != nil {
		data.Error = validationMessage(err)
		h.rd.render(w, "writing.tmpl", data)
		return
	}

	sess.AddWriting(models.WritingRecord{
		Kind:      models.WritingDraft,
		Topic:     sess.Form.WritingTopic,
		Grade:     string(grade),
		Content:   sess.Form.WritingDraft,
		Timestamp: time.Now(),
	})
	data.Success = "草稿已保存！"
	h.rd.render(w, "writing.tmpl", data)
}

// SubmitForEvaluation carries the draft over to the evaluation page
func (h *WritingHandler) SubmitForEvaluation(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	if _, err := readWritingForm(r, sess); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	topicErr := validation.ValidateTopic(sess.Form.WritingTopic)
	essayErr := validation.ValidateEssay(sess.Form.WritingDraft)
	if topicErr != nil || essayErr != nil {
		data := h.view(sess)
		if topicErr != nil {
			data.Error = validationMessage(topicErr)
		} else {
			data.Error = validationMessage(essayErr)
		}
		h.rd.render(w, "writing.tmpl", data)
		return
	}

	http.Redirect(w, r, "/evaluate", http.StatusSeeOther)
}
