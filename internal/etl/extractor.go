package etl

import (
	"context"
	"database/sql"

	"feedback-main/internal/form"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresExtractor struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresExtractor(db *sql.DB, logger *zap.SugaredLogger) *PostgresExtractor {
	return &PostgresExtractor{
		DB:     db,
		Logger: logger,
	}
}

const extractQuery = `
	SELECT f.id, f.title, f.description,
		COALESCE(array_agg(q.text ORDER BY q."order", q.id) FILTER (WHERE q.id IS NOT NULL), '{}')
	FROM forms f
	LEFT JOIN questions q ON q.form_id = f.id
	WHERE f.searching = FALSE AND f.is_active = TRUE
	GROUP BY f.id
	`

// ExtractNew - достает активные формы, которых еще нет в поиске или которые менялись после индексации
// Вопросы заполняются только текстом
func (e *PostgresExtractor) ExtractNew(ctx context.Context) ([]form.FeedbackForm, error) {
	rows, err := e.DB.QueryContext(ctx, extractQuery)
	if err != nil {
		e.Logger.Error("Failed to executing query", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []form.FeedbackForm

	for rows.Next() {
		var (
			f     form.FeedbackForm
			texts pq.StringArray
		)
		if err := rows.Scan(&f.ID, &f.Title, &f.Description, &texts); err != nil {
			e.Logger.Error("Failed to scan rows", zap.Error(err))
			return nil, err
		}

		f.IsActive = true
		f.Questions = make([]form.Question, 0, len(texts))
		for _, text := range texts {
			f.Questions = append(f.Questions, form.Question{FormID: f.ID, Text: text})
		}
		result = append(result, f)
	}

	if err := rows.Err(); err != nil {
		e.Logger.Error("Error during rows iteration", zap.Error(err))
		return nil, err
	}

	return result, nil
}
