package analytics

import (
	"context"
	"database/sql"
	"errors"

	"feedback-main/internal/kafka"

	"go.uber.org/zap"
)

type Repository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

func NewRepository(db *sql.DB, logger *zap.SugaredLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) RecordResponse(ctx context.Context, event kafka.Event) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback() // nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		INSERT INTO processed_responses (response_id, form_id)
		VALUES ($1, $2)
		ON CONFLICT (response_id) DO NOTHING
	`, event.ResponseID, event.FormID)
	if err != nil {
		return false, err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if inserted == 0 {
		return false, nil
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO form_stats (form_id, responses_count, answers_count, last_submitted_at)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (form_id)
		DO UPDATE SET
			responses_count = form_stats.responses_count + 1,
			answers_count = form_stats.answers_count + EXCLUDED.answers_count,
			last_submitted_at = GREATEST(form_stats.last_submitted_at, EXCLUDED.last_submitted_at)
	`, event.FormID, event.AnswersCount, event.Timestamp)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return true, nil
}

// GetStats - для формы без отправок возвращается нулевая статистика
func (r *Repository) GetStats(ctx context.Context, formID string) (*FormStats, error) {
	stats := &FormStats{FormID: formID}

	var last sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT responses_count, answers_count, last_submitted_at
		FROM form_stats
		WHERE form_id = $1
	`, formID).Scan(&stats.ResponsesCount, &stats.AnswersCount, &last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stats, nil
		}
		return nil, err
	}

	if last.Valid {
		stats.LastSubmittedAt = &last.Time
	}
	if stats.ResponsesCount > 0 {
		stats.AvgAnswers = float64(stats.AnswersCount) / float64(stats.ResponsesCount)
	}

	return stats, nil
}
