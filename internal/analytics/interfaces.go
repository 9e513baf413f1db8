package analytics

import (
	"context"
	"time"

	"feedback-main/internal/kafka"
)

// FormStats - накопленная статистика отправок одной формы
type FormStats struct {
	FormID          string     `json:"form_id"`
	ResponsesCount  int64      `json:"responses_count"`
	AnswersCount    int64      `json:"answers_count"`
	AvgAnswers      float64    `json:"avg_answers"`
	LastSubmittedAt *time.Time `json:"last_submitted_at"`
}

// AnalyticsRepo - интерфейс репозитория статистики форм.
type AnalyticsRepo interface {
	// RecordResponse учитывает отправку один раз, повторная доставка того же response_id игнорируется
	RecordResponse(ctx context.Context, event kafka.Event) (bool, error)
	GetStats(ctx context.Context, formID string) (*FormStats, error)
}

// AnalyticsService - интерфейс сервиса аналитики.
type AnalyticsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	GetStats(ctx context.Context, formID string) (*FormStats, error)
}
