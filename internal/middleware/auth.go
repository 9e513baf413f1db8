package middleware

import (
	"context"
	"net/http"

	"feedback-main/internal/session"
	myErr "feedback-main/internal/types/errors"

	"go.uber.org/zap"
)

type SessKey string

var sessKey SessKey = "sessionKey"

// Auth пускает дальше только запросы с живой сессией, остальным отвечает 401
func Auth(sm session.SessionRepo, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sm.CheckSession(r)
			if err != nil {
				myErr.SendErrorTo(w, myErr.ErrNoAuth, http.StatusUnauthorized, logger)
				return
			}

			// Пользователь активен - продлеваем сессию
			if err := sm.ExtendSession(r.Context(), sess.ID); err != nil {
				logger.Warnw("Failed to extend session", zap.Error(err), zap.String("sessionID", sess.ID))
			}

			ctx := ContextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ContextWithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessKey, s)
}

func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessKey).(*session.Session)
	return sess, ok
}
