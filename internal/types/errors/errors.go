package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrDBInternal       = errors.New("database internal error")
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("username already exists")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIsExpired = errors.New("session is expired")
	ErrNoAuth           = errors.New("authorization required")
	ErrForbidden        = errors.New("you are not the creator of this form")

	ErrBadCredentials = errors.New("invalid credentials")
	ErrBadID          = errors.New("bad id")

	ErrFormNotFound    = errors.New("form not found")
	ErrNoResponses     = errors.New("no responses found for this form")
	ErrForeignQuestion = errors.New("question does not belong to this form")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")
	ErrInternal           = errors.New("internal server error")

	ErrIndexing = errors.New("indexing error")
	ErrSearch   = errors.New("search error")
)

// ErrorServer - тело ответа с ошибкой
type ErrorServer struct {
	Message string `json:"error"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "unknown error",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

// SendErrorTo отдает клиенту {"error": "..."} с нужным статусом.
// Внутренние ошибки наружу не пробрасываются: на 5xx уходит общий текст, а сама ошибка пишется в лог
func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	if statusCode >= http.StatusInternalServerError {
		if logger != nil {
			logger.Errorw("request failed", zap.Error(err))
		}
		err = ErrInternal
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil && logger != nil {
		logger.Error(errEncode)
	}
}
