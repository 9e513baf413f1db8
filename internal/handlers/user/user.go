package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"feedback-main/internal/contextutil"
	"feedback-main/internal/session"
	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/user"
	"feedback-main/internal/types/validation"
	"feedback-main/internal/user"

	"go.uber.org/zap"
)

type UserHandler struct {
	Logger         *zap.SugaredLogger
	UserRepository user.UserRepo
	SessionManager session.SessionRepo
}

func NewUserHandler(l *zap.SugaredLogger, ur user.UserRepo, sr session.SessionRepo) *UserHandler {
	return &UserHandler{
		Logger:         l,
		UserRepository: ur,
		SessionManager: sr,
	}
}

type userMessage struct {
	Message string       `json:"message"`
	User    user.Summary `json:"user"`
	Token   string       `json:"token,omitempty"`
}

// Register handles POST /api/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form types.CreateUser
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := validation.Struct(form); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	u, err := h.UserRepository.CreateUser(r.Context(), form)
	if err != nil {
		if errors.Is(err, myErr.ErrAlreadyExists) {
			myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
			return
		}

		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(userMessage{
		Message: "User created successfully",
		User:    u.Summary(),
	}); err != nil {
		h.Logger.Errorf("failed to encode register response: %v", err)
		return
	}

	h.Logger.Infof("user registered: %d", u.ID)
}

// Login handles POST /api/auth/login
// Токен отдается в теле и в HttpOnly cookie
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form types.LoginUser
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	if err := validation.Struct(form); err != nil {
		myErr.SendErrorTo(w, err, http.StatusBadRequest, h.Logger)
		return
	}

	u, err := h.UserRepository.CheckUser(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, myErr.ErrBadCredentials) {
			myErr.SendErrorTo(w, err, http.StatusUnauthorized, h.Logger)
			return
		}

		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	sess, err := h.SessionManager.CreateSession(r.Context(), u.ID, u.Username)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(userMessage{
		Message: "Login successful",
		User:    u.Summary(),
		Token:   sess.Token,
	}); err != nil {
		h.Logger.Errorf("failed to encode login response: %v", err)
		return
	}

	h.Logger.Infof("created session for %v", sess.ID)
}

// Logout handles POST /api/auth/logout
// Отвечает 200 и без сессии, повторный выход ошибкой не считается
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := h.SessionManager.CheckSession(r)
	if err == nil {
		if err := h.SessionManager.DeleteSession(r.Context(), sess.ID); err != nil {
			myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
			return
		}
		h.Logger.Infof("deleted session %v", sess.ID)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"message": "Logout successful"}); err != nil {
		h.Logger.Errorf("failed to encode logout response: %v", err)
	}
}

// Me handles GET /api/auth/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := contextutil.GetUserIDFromContext(r.Context())
	if !ok {
		myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, h.Logger)
		return
	}

	u, err := h.UserRepository.Info(r.Context(), userID)
	if err != nil {
		if errors.Is(err, myErr.ErrNotFound) {
			myErr.SendErrorTo(w, err, http.StatusNotFound, h.Logger)
			return
		}
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(u); err != nil {
		h.Logger.Errorf("failed to encode user: %v", err)
		return
	}

	h.Logger.Infof("get info by user: %d", u.ID)
}
