package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"magicwriting/internal/models"
	"magicwriting/internal/service"
	"magicwriting/internal/validation"
)

// EvaluateHandler scores essays and emails reports
type EvaluateHandler struct {
	rd        *Renderer
	assistant *service.AssistantService
	email     *service.EmailService
}

// NewEvaluateHandler creates a new evaluate handler
func NewEvaluateHandler(rd *Renderer, assistant *service.AssistantService, email *service.EmailService) *EvaluateHandler {
	return &EvaluateHandler{rd: rd, assistant: assistant, email: email}
}

func (h *EvaluateHandler) view(sess *models.Session) EvaluateViewData {
	return EvaluateViewData{
		PageData:     h.rd.pageData(sess, models.PageEvaluate, "作品评价"),
		Topic:        sess.Form.WritingTopic,
		Content:      sess.Form.WritingDraft,
		GradeSelect:  gradeSelect(sess.Form.WritingGrade),
		ResultIndex:  -1,
		EmailEnabled: h.email.IsEnabled(),
	}
}

// resultAt returns the evaluation stored at the given history position
func resultAt(sess *models.Session, raw string) (int, *models.EvaluationResult, bool) {
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(sess.EvaluationHistory) {
		return 0, nil, false
	}
	return i, &sess.EvaluationHistory[i], true
}

// ShowEvaluate renders the evaluation form, prefilled from the writing workshop.
// ?result=N shows an earlier result from the history.
func (h *EvaluateHandler) ShowEvaluate(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	data := h.view(sess)
	if raw := r.URL.Query().Get("result"); raw != "" {
		i, res, ok := resultAt(sess, raw)
		if !ok {
			http.NotFound(w, r)
			return
		}
		data.Result = res
		data.ResultIndex = i
		data.Topic = res.Topic
		data.GradeSelect = gradeSelect(res.Grade)
	}
	h.rd.render(w, "evaluate.tmpl", data)
}

// Evaluate scores the submitted essay and records the result
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	topic := strings.TrimSpace(r.FormValue("topic"))
	content := r.FormValue("content")
	grade, _ := validation.ValidateGrade(r.FormValue("grade"))
	sess.Form.WritingTopic = topic
	sess.Form.WritingDraft = content
	sess.Form.WritingGrade = string(grade)

	data := h.view(sess)
	if err := validation.ValidateTopic(topic); err != nil {
		data.Error = validationMessage(err)
		h.rd.render(w, "evaluate.tmpl", data)
		return
	}
	if err := validation.ValidateEssay(content); err != nil {
		data.Error = validationMessage(err)
		h.rd.render(w, "evaluate.tmpl", data)
		return
	}

	result := h.assistant.Evaluate(r.Context(), service.GenerationRequest{
		Topic: topic,
		Grade: grade,
		Essay: content,
	})
	sess.AddEvaluation(result)

	data.Result = &sess.EvaluationHistory[len(sess.EvaluationHistory)-1]
	data.ResultIndex = len(sess.EvaluationHistory) - 1
	data.Warnings = result.Warnings
	h.rd.render(w, "evaluate.tmpl", data)
}

// EmailReport sends a stored evaluation to a parent's address
func (h *EvaluateHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	sess := h.rd.sessionOr500(w, r)
	if sess == nil {
		return
	}
	i, res, ok := resultAt(sess, r.PathValue("index"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	data := h.view(sess)
	data.Result = res
	data.ResultIndex = i
	data.Topic = res.Topic

	to := strings.TrimSpace(r.FormValue("email"))
	if err := validation.ValidateEmail(to); err != nil {
		data.Error = validationMessage(err)
		h.rd.render(w, "evaluate.tmpl", data)
		return
	}

	err := h.email.SendEvaluationReport(r.Context(), to, *res)
	switch {
	case errors.Is(err, service.ErrEmailDisabled):
		data.Error = "邮件功能未开启"
	case err != nil:
		h.rd.log.Error("Failed to send evaluation report", "error", err)
		data.Error = "邮件发送失败，请稍后再试"
	default:
		data.Success = "报告已发送到 " + to
	}
	h.rd.render(w, "evaluate.tmpl", data)
}
