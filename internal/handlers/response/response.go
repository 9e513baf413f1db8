package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"feedback-main/internal/contextutil"
	"feedback-main/internal/export"
	"feedback-main/internal/form"
	"feedback-main/internal/kafka"
	"feedback-main/internal/response"
	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/response"
	"feedback-main/internal/types/validation"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ResponseHandler struct {
	Logger        *zap.SugaredLogger
	ResponseRepo  response.ResponseRepo
	FormRepo      form.FormRepo
	EventProducer kafka.EventProducer
}

func NewResponseHandler(
	l *zap.SugaredLogger,
	rr response.ResponseRepo,
	fr form.FormRepo,
	ep kafka.EventProducer,
) *ResponseHandler {
	return &ResponseHandler{
		Logger:        l,
		ResponseRepo:  rr,
		FormRepo:      fr,
		EventProducer: ep,
	}
}

func formID(r *http.Request) (string, bool) {
	id := mux.Vars(r)["form_id"]
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// List handles GET /api/responses/, только ответы на формы вызывающего
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	responses, err := h.ResponseRepo.List(r.Context(), userID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(responses); err != nil {
		h.Logger.Errorf("failed to encode responses: %v", err)
		return
	}

	h.Logger.Infof("listed %d responses for user %d", len(responses), userID)
}

// Submit handles POST /api/responses/form/{form_id}/
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r)
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrFormNotFound, http.StatusNotFound, h.Logger)
		return
	}

	var input types.SubmitResponse
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := validation.Struct(input); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	resp, err := h.ResponseRepo.Create(r.Context(), id, input.Answers)
	if err != nil {
		switch {
		case errors.Is(err, myErr.ErrFormNotFound):
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
		case errors.Is(err, myErr.ErrForeignQuestion):
			myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		default:
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		}
		return
	}

	// событие уходит после коммита, ошибка отправки ответ не отменяет
	event := kafka.NewResponseSubmitted(resp.FormID, resp.ID, len(resp.Answers), resp.SubmittedAt)
	if err := h.EventProducer.SendEvent(r.Context(), event); err != nil {
		h.Logger.Warnf("failed to send response_submitted event for response %s: %v", resp.ID, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Logger.Errorf("failed to encode response: %v", err)
		return
	}

	h.Logger.Infof("response %s submitted to form %s", resp.ID, id)
}

// ownedForm - форма из пути с любым is_active, если вызывающий ее создатель
func (h *ResponseHandler) ownedForm(w http.ResponseWriter, r *http.Request) (*form.FeedbackForm, bool) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return nil, false
	}

	id, ok := formID(r)
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrFormNotFound, http.StatusNotFound, h.Logger)
		return nil, false
	}

	f, err := h.FormRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, myErr.ErrFormNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return nil, false
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return nil, false
	}

	if f.CreatorID != userID {
		myErr.SendErrorTo(w, myErr.ErrForbidden, http.StatusForbidden, h.Logger)
		return nil, false
	}

	return f, true
}

// ListByForm handles GET /api/responses/form/{form_id}/responses/
func (h *ResponseHandler) ListByForm(w http.ResponseWriter, r *http.Request) {
	f, ok := h.ownedForm(w, r)
	if !ok {
		return
	}

	responses, err := h.ResponseRepo.ListByForm(r.Context(), f.ID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(responses); err != nil {
		h.Logger.Errorf("failed to encode responses: %v", err)
		return
	}

	h.Logger.Infof("listed %d responses of form %s", len(responses), f.ID)
}

// Export handles GET /api/responses/form/{form_id}/export/
func (h *ResponseHandler) Export(w http.ResponseWriter, r *http.Request) {
	f, ok := h.ownedForm(w, r)
	if !ok {
		return
	}

	responses, err := h.ResponseRepo.ListByForm(r.Context(), f.ID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}
	if len(responses) == 0 {
		myErr.SendErrorTo(w, myErr.ErrNoResponses, http.StatusNotFound, h.Logger)
		return
	}

	// собираем в буфер, чтобы при ошибке еще можно было ответить JSON
	var buf bytes.Buffer
	if err := export.Write(&buf, f.Questions, responses); err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", export.ContentDisposition(f.Title))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.Logger.Errorf("failed to write export of form %s: %v", f.ID, err)
		return
	}

	h.Logger.Infof("exported %d responses of form %s", len(responses), f.ID)
}
