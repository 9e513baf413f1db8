package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"feedback-main/internal/contextutil"
	elastic "feedback-main/internal/elastic_search"
	"feedback-main/internal/form"
	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/form"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type FormHandler struct {
	Logger   *zap.SugaredLogger
	FormRepo form.FormRepo
	Index    elastic.FormIndex
}

func NewFormHandler(l *zap.SugaredLogger, fr form.FormRepo, index elastic.FormIndex) *FormHandler {
	return &FormHandler{
		Logger:   l,
		FormRepo: fr,
		Index:    index,
	}
}

// formID достает id формы из пути. Невалидный uuid - это несуществующая форма
func formID(r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// List handles GET /api/forms/
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	forms, err := h.FormRepo.List(r.Context())
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(forms); err != nil {
		h.Logger.Errorf("failed to encode forms: %v", err)
		return
	}

	h.Logger.Infof("listed %d forms", len(forms))
}

// Create handles POST /api/forms/
func (h *FormHandler) Create(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	var input types.CreateForm
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := input.Validate(); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	f, err := h.FormRepo.Create(r.Context(), creatorID, input)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(f); err != nil {
		h.Logger.Errorf("failed to encode form: %v", err)
		return
	}

	h.Logger.Infof("form created: %s by user %d", f.ID, creatorID)
}

// Get handles GET /api/forms/{id}/
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r)
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrFormNotFound, http.StatusNotFound, h.Logger)
		return
	}

	f, err := h.FormRepo.GetActiveByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, myErr.ErrFormNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(f); err != nil {
		h.Logger.Errorf("failed to encode form: %v", err)
		return
	}

	h.Logger.Infof("fetched form by id: %s", id)
}

// ownedActiveForm - активная форма из пути, если вызывающий ее создатель.
// Иначе сам отвечает 401/403/404 и возвращает false
func (h *FormHandler) ownedActiveForm(w http.ResponseWriter, r *http.Request) (*form.FeedbackForm, bool) {
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

	f, err := h.FormRepo.GetActiveByID(r.Context(), id)
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

// Update handles PUT /api/forms/{id}/, title обязателен
func (h *FormHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, types.UpdateForm.ValidateFull)
}

// Patch handles PATCH /api/forms/{id}/, меняются только переданные поля
func (h *FormHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, types.UpdateForm.ValidatePartial)
}

func (h *FormHandler) update(w http.ResponseWriter, r *http.Request, validate func(types.UpdateForm) error) {
	f, ok := h.ownedActiveForm(w, r)
	if !ok {
		return
	}

	var input types.UpdateForm
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := validate(input); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	updated, err := h.FormRepo.Update(r.Context(), f.ID, input)
	if err != nil {
		if errors.Is(err, myErr.ErrFormNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		h.Logger.Errorf("failed to encode form: %v", err)
		return
	}

	h.Logger.Infof("form updated: %s", f.ID)
}

// Delete handles DELETE /api/forms/{id}/
func (h *FormHandler) Delete(w http.ResponseWriter, r *http.Request) {
	f, ok := h.ownedActiveForm(w, r)
	if !ok {
		return
	}

	if err := h.FormRepo.Delete(r.Context(), f.ID); err != nil {
		if errors.Is(err, myErr.ErrFormNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	// форма уже удалена, расхождение с поиском не должно превращаться в ошибку запроса
	if err := h.Index.DeleteForm(r.Context(), f.ID); err != nil {
		h.Logger.Warnw("failed to remove form from search index", zap.Error(err), zap.String("formID", f.ID))
	}

	w.WriteHeader(http.StatusNoContent)

	h.Logger.Infof("form deleted: %s", f.ID)
}

// Questions handles GET /api/forms/{id}/questions/
func (h *FormHandler) Questions(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r)
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrFormNotFound, http.StatusNotFound, h.Logger)
		return
	}

	questions, err := h.FormRepo.Questions(r.Context(), id)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(questions); err != nil {
		h.Logger.Errorf("failed to encode questions: %v", err)
		return
	}

	h.Logger.Infof("listed %d questions of form %s", len(questions), id)
}

// Search handles GET /api/forms/search?q={query}
func (h *FormHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		myErr.SendErrorTo(w, errors.New("missing query parameter"), http.StatusBadRequest, h.Logger)
		return
	}

	docs, err := h.Index.SearchForms(r.Context(), q)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(docs); err != nil {
		h.Logger.Errorf("failed to encode search results: %v", err)
		return
	}

	h.Logger.Infof("searched forms with query: %s", q)
}
