package response

import (
	"context"
	"database/sql"
	"errors"

	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResponseDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewResponseDBRepository(db *sql.DB, logger *zap.SugaredLogger) *ResponseDBRepository {
	return &ResponseDBRepository{
		DB:     db,
		Logger: logger,
	}
}

// Create - ответ создается целиком или не создается вовсе
func (rr *ResponseDBRepository) Create(
	ctx context.Context,
	formID string,
	answers []types.SubmitAnswer,
) (*Response, error) {
	tx, err := rr.DB.BeginTx(ctx, nil)
	if err != nil {
		rr.Logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}
	defer tx.Rollback() // nolint:errcheck

	// FOR SHARE не дает удалить или деактивировать форму до конца транзакции
	var active bool
	err = tx.QueryRowContext(ctx, `SELECT is_active FROM forms WHERE id = $1 FOR SHARE`, formID).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrFormNotFound
		}
		rr.Logger.Error("Failed to load form", zap.Error(err), zap.String("formID", formID))
		return nil, myErr.ErrDBInternal
	}
	// неактивная форма для отправляющего не отличается от несуществующей
	if !active {
		return nil, myErr.ErrFormNotFound
	}

	questionTexts, err := rr.questionTexts(ctx, tx, formID)
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		if _, ok := questionTexts[a.Question]; !ok {
			return nil, myErr.ErrForeignQuestion
		}
	}

	resp := &Response{
		ID:      uuid.New().String(),
		FormID:  formID,
		Answers: make([]Answer, 0, len(answers)),
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO responses (id, form_id) VALUES ($1, $2) RETURNING submitted_at`,
		resp.ID, resp.FormID,
	).Scan(&resp.SubmittedAt)
	if err != nil {
		rr.Logger.Error("Failed save response to DB", zap.Error(err), zap.String("formID", formID))
		return nil, myErr.ErrDBInternal
	}

	for _, a := range answers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers (response_id, question_id, answer_text) VALUES ($1, $2, $3)`,
			resp.ID, a.Question, a.AnswerText,
		)
		if err != nil {
			rr.Logger.Error("Failed save answer to DB", zap.Error(err), zap.String("responseID", resp.ID))
			return nil, myErr.ErrDBInternal
		}

		resp.Answers = append(resp.Answers, Answer{
			Question:     a.Question,
			QuestionText: questionTexts[a.Question],
			AnswerText:   a.AnswerText,
		})
	}

	if err := tx.Commit(); err != nil {
		rr.Logger.Error("Failed to commit response", zap.Error(err), zap.String("responseID", resp.ID))
		return nil, myErr.ErrDBInternal
	}

	rr.Logger.Infof("Response %s to form %s saved with %d answers", resp.ID, formID, len(resp.Answers))

	return resp, nil
}

func (rr *ResponseDBRepository) questionTexts(ctx context.Context, tx *sql.Tx, formID string) (map[int64]string, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, text FROM questions WHERE form_id = $1`, formID)
	if err != nil {
		rr.Logger.Error("Failed to load form questions", zap.Error(err), zap.String("formID", formID))
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	texts := make(map[int64]string)
	for rows.Next() {
		var (
			id   int64
			text string
		)
		if err := rows.Scan(&id, &text); err != nil {
			rr.Logger.Error("Failed to scan question row", zap.Error(err))
			return nil, myErr.ErrDBInternal
		}
		texts[id] = text
	}

	if err := rows.Err(); err != nil {
		rr.Logger.Error("Error occurred while iterating over question rows", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}

	return texts, nil
}

const listQuery = `
	SELECT r.id, r.form_id, r.submitted_at, a.question_id, q.text, a.answer_text
	FROM responses r
	LEFT JOIN answers a ON a.response_id = r.id
	LEFT JOIN questions q ON q.id = a.question_id
	`

const listOrder = ` ORDER BY r.submitted_at, r.id, a.id`

func (rr *ResponseDBRepository) List(ctx context.Context, creatorID int64) ([]*Response, error) {
	return rr.list(ctx, listQuery+`JOIN forms f ON f.id = r.form_id WHERE f.creator_id = $1`+listOrder, creatorID)
}

func (rr *ResponseDBRepository) ListByForm(ctx context.Context, formID string) ([]*Response, error) {
	return rr.list(ctx, listQuery+`WHERE r.form_id = $1`+listOrder, formID)
}

// list собирает ответы со значениями и текстами вопросов из одного JOIN-запроса.
// Строки одного ответа идут подряд благодаря сортировке по r.id внутри submitted_at
func (rr *ResponseDBRepository) list(ctx context.Context, query string, args ...interface{}) ([]*Response, error) {
	rows, err := rr.DB.QueryContext(ctx, query, args...)
	if err != nil {
		rr.Logger.Error("Failed to get responses from DB", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	responses := []*Response{}
	var current *Response
	for rows.Next() {
		var (
			id, formID   string
			submittedAt  sql.NullTime
			questionID   sql.NullInt64
			questionText sql.NullString
			answerText   sql.NullString
		)
		if err := rows.Scan(&id, &formID, &submittedAt, &questionID, &questionText, &answerText); err != nil {
			rr.Logger.Error("Failed to scan response row from DB", zap.Error(err))
			return nil, myErr.ErrDBInternal
		}

		if current == nil || current.ID != id {
			current = &Response{
				ID:          id,
				FormID:      formID,
				SubmittedAt: submittedAt.Time,
				Answers:     []Answer{},
			}
			responses = append(responses, current)
		}

		// LEFT JOIN: у ответа без значений question_id будет NULL
		if questionID.Valid {
			current.Answers = append(current.Answers, Answer{
				Question:     questionID.Int64,
				QuestionText: questionText.String,
				AnswerText:   answerText.String,
			})
		}
	}

	if err := rows.Err(); err != nil {
		rr.Logger.Error("Error occurred while iterating over response rows from DB", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}

	return responses, nil
}
