package form

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	myErr "feedback-main/internal/types/errors"
	types "feedback-main/internal/types/form"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	formColumns     = `id, title, description, creator_id, created_at, is_active`
	questionColumns = `id, form_id, text, question_type, options, is_required, "order"`
)

type FormDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewFormDBRepository(db *sql.DB, logger *zap.SugaredLogger) *FormDBRepository {
	return &FormDBRepository{
		DB:     db,
		Logger: logger,
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanForm(row scanner) (*FeedbackForm, error) {
	f := &FeedbackForm{}
	err := row.Scan(&f.ID, &f.Title, &f.Description, &f.CreatorID, &f.CreatedAt, &f.IsActive)
	if err != nil {
		return nil, err
	}
	f.Questions = []Question{}

	return f, nil
}

func scanQuestion(row scanner) (Question, error) {
	var (
		q       Question
		options []byte
	)
	err := row.Scan(&q.ID, &q.FormID, &q.Text, &q.QuestionType, &options, &q.IsRequired, &q.Order)
	if err != nil {
		return q, err
	}
	if len(options) > 0 {
		q.Options = json.RawMessage(options)
	}

	return q, nil
}

// optionsValue - jsonb или NULL, если варианты не переданы
func optionsValue(raw json.RawMessage) interface{} {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return trimmed
}

// List - все формы вместе с вопросами, независимо от is_active
func (fr *FormDBRepository) List(ctx context.Context) ([]*FeedbackForm, error) {
	query := `SELECT ` + formColumns + ` FROM forms ORDER BY created_at DESC`

	rows, err := fr.DB.QueryContext(ctx, query)
	if err != nil {
		fr.Logger.Error("Failed to list forms", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	forms := []*FeedbackForm{}
	byID := make(map[string]*FeedbackForm)
	for rows.Next() {
		f, err := scanForm(rows)
		if err != nil {
			fr.Logger.Error("Failed to scan form row", zap.Error(err))
			return nil, myErr.ErrDBInternal
		}
		forms = append(forms, f)
		byID[f.ID] = f
	}

	if err := rows.Err(); err != nil {
		fr.Logger.Error("Error occurred while iterating over form rows", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}

	if len(forms) == 0 {
		return forms, nil
	}

	ids := make([]string, 0, len(forms))
	for _, f := range forms {
		ids = append(ids, f.ID)
	}

	questions, err := fr.questionsByForms(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		if f, ok := byID[q.FormID]; ok {
			f.Questions = append(f.Questions, q)
		}
	}

	return forms, nil
}

// questionsByForms - вопросы сразу нескольких форм одним запросом
func (fr *FormDBRepository) questionsByForms(ctx context.Context, formIDs []string) ([]Question, error) {
	query := `
	SELECT ` + questionColumns + `
	FROM questions
	WHERE form_id = ANY($1)
	ORDER BY form_id, "order", id
	`

	rows, err := fr.DB.QueryContext(ctx, query, pq.Array(formIDs))
	if err != nil {
		fr.Logger.Error("Failed to load questions", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			fr.Logger.Error("Failed to scan question row", zap.Error(err))
			return nil, myErr.ErrDBInternal
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		fr.Logger.Error("Error occurred while iterating over question rows", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}

	return questions, nil
}

// Create - создает форму и ее вопросы в порядке входного списка в одной транзакции
func (fr *FormDBRepository) Create(
	ctx context.Context,
	creatorID int64,
	cf types.CreateForm,
) (*FeedbackForm, error) {
	tx, err := fr.DB.BeginTx(ctx, nil)
	if err != nil {
		fr.Logger.Error("Failed to begin transaction", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}
	defer tx.Rollback() // nolint:errcheck

	f := &FeedbackForm{
		ID:          uuid.New().String(),
		Title:       cf.Title,
		Description: cf.Description,
		CreatorID:   creatorID,
		Questions:   make([]Question, 0, len(cf.Questions)),
	}

	formQuery := `
	INSERT INTO forms (id, title, description, creator_id)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, is_active
	`
	err = tx.QueryRowContext(ctx, formQuery, f.ID, f.Title, f.Description, f.CreatorID).
		Scan(&f.CreatedAt, &f.IsActive)
	if err != nil {
		fr.Logger.Error("Failed save form to DB", zap.Error(err), zap.String("formID", f.ID))
		return nil, myErr.ErrDBInternal
	}

	questionQuery := `
	INSERT INTO questions (form_id, text, question_type, options, is_required, "order")
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`
	for _, cq := range cf.Questions {
		q := Question{
			FormID:       f.ID,
			Text:         cq.Text,
			QuestionType: cq.QuestionType,
			IsRequired:   true,
			Order:        cq.Order,
		}
		if cq.IsRequired != nil {
			q.IsRequired = *cq.IsRequired
		}
		if v := optionsValue(cq.Options); v != nil {
			q.Options = json.RawMessage(v.(string))
		}

		err = tx.QueryRowContext(ctx, questionQuery,
			q.FormID, q.Text, q.QuestionType, optionsValue(cq.Options), q.IsRequired, q.Order,
		).Scan(&q.ID)
		if err != nil {
			fr.Logger.Error("Failed save question to DB", zap.Error(err), zap.String("formID", f.ID))
			return nil, myErr.ErrDBInternal
		}

		f.Questions = append(f.Questions, q)
	}

	if err := tx.Commit(); err != nil {
		fr.Logger.Error("Failed to commit form", zap.Error(err), zap.String("formID", f.ID))
		return nil, myErr.ErrDBInternal
	}

	fr.Logger.Infof("Form %s created with %d questions", f.ID, len(f.Questions))

	return f, nil
}

func (fr *FormDBRepository) getByID(ctx context.Context, formID string, onlyActive bool) (*FeedbackForm, error) {
	query := `SELECT ` + formColumns + ` FROM forms WHERE id = $1`
	if onlyActive {
		query += ` AND is_active = TRUE`
	}

	f, err := scanForm(fr.DB.QueryRowContext(ctx, query, formID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrFormNotFound
		}
		fr.Logger.Warnf("Error while loading form %s: %v", formID, err)
		return nil, myErr.ErrDBInternal
	}

	questions, err := fr.Questions(ctx, formID)
	if err != nil {
		return nil, err
	}
	f.Questions = questions

	return f, nil
}

func (fr *FormDBRepository) GetByID(ctx context.Context, formID string) (*FeedbackForm, error) {
	return fr.getByID(ctx, formID, false)
}

func (fr *FormDBRepository) GetActiveByID(ctx context.Context, formID string) (*FeedbackForm, error) {
	return fr.getByID(ctx, formID, true)
}

// Update - меняет переданные поля активной формы и снимает отметку об индексации
func (fr *FormDBRepository) Update(
	ctx context.Context,
	formID string,
	uf types.UpdateForm,
) (*FeedbackForm, error) {
	fields := []string{}
	args := []interface{}{}
	argID := 1

	// Динамически добавляем поля в обновление
	if uf.Title != nil {
		fields = append(fields, "title = $"+strconv.Itoa(argID))
		args = append(args, *uf.Title)
		argID++
	}
	if uf.Description != nil {
		fields = append(fields, "description = $"+strconv.Itoa(argID))
		args = append(args, *uf.Description)
		argID++
	}
	if uf.IsActive != nil {
		fields = append(fields, "is_active = $"+strconv.Itoa(argID))
		args = append(args, *uf.IsActive)
		argID++
	}

	if len(fields) == 0 {
		return fr.GetActiveByID(ctx, formID)
	}
	fields = append(fields, "searching = FALSE")

	query := "UPDATE forms SET " + strings.Join(fields, ", ") +
		" WHERE id = $" + strconv.Itoa(argID) + " AND is_active = TRUE" //nolint:gosec
	args = append(args, formID)

	result, err := fr.DB.ExecContext(ctx, query, args...)
	if err != nil {
		fr.Logger.Error("Failed to update form", zap.Error(err), zap.String("formID", formID))
		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		fr.Logger.Error("Failed to get rows affected while updating form", zap.Error(err), zap.String("formID", formID))
		return nil, myErr.ErrDBInternal
	}

	if rowsAffected != 1 {
		return nil, myErr.ErrFormNotFound
	}

	fr.Logger.Info(fmt.Sprintf("Form %s updated successfully", formID))

	// форму могли только что деактивировать, поэтому без фильтра по is_active
	return fr.GetByID(ctx, formID)
}

// Delete - удаляет активную форму, вопросы, ответы и их значения удаляются каскадно
func (fr *FormDBRepository) Delete(ctx context.Context, formID string) error {
	query := `DELETE FROM forms WHERE id = $1 AND is_active = TRUE`

	result, err := fr.DB.ExecContext(ctx, query, formID)
	if err != nil {
		fr.Logger.Error("Failed to delete form", zap.Error(err), zap.String("formID", formID))
		return myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		fr.Logger.Error("Failed to get rows affected while deleting form", zap.Error(err), zap.String("formID", formID))
		return myErr.ErrDBInternal
	}

	if rowsAffected != 1 {
		return myErr.ErrFormNotFound
	}

	fr.Logger.Info(fmt.Sprintf("Form %s deleted successfully", formID))

	return nil
}

// Questions - вопросы формы по возрастанию order, при равных order - в порядке создания
func (fr *FormDBRepository) Questions(ctx context.Context, formID string) ([]Question, error) {
	query := `
	SELECT ` + questionColumns + `
	FROM questions
	WHERE form_id = $1
	ORDER BY "order", id
	`

	rows, err := fr.DB.QueryContext(ctx, query, formID)
	if err != nil {
		fr.Logger.Error("Failed to load questions", zap.Error(err), zap.String("formID", formID))
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	questions := []Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			fr.Logger.Error("Failed to scan question row", zap.Error(err))
			return nil, myErr.ErrDBInternal
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		fr.Logger.Error("Error occurred while iterating over question rows", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}

	return questions, nil
}
