package form

import (
	"context"
	"encoding/json"
	"time"

	types "feedback-main/internal/types/form"
)

// Question - вопрос формы, порядок внутри формы задает Order
type Question struct {
	ID           int64           `json:"id"`
	FormID       string          `json:"-"`
	Text         string          `json:"text"`
	QuestionType string          `json:"question_type"`
	Options      json.RawMessage `json:"options"`
	IsRequired   bool            `json:"is_required"`
	Order        int             `json:"order"`
}

// FeedbackForm - форма обратной связи
type FeedbackForm struct {
	ID          string     `json:"id"` // uuid
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatorID   int64      `json:"creator"`
	CreatedAt   time.Time  `json:"created_at"`
	IsActive    bool       `json:"is_active"`
	Questions   []Question `json:"questions"`
}

//go:generate mockgen -source=form.go -destination=../mocks/mock_form_repo.go -package=mocks
type FormRepo interface {
	// List - все формы вместе с вопросами, независимо от is_active
	List(ctx context.Context) ([]*FeedbackForm, error)
	// Create - создает форму и ее вопросы в одной транзакции
	Create(ctx context.Context, creatorID int64, cf types.CreateForm) (*FeedbackForm, error)
	// GetByID - форма с вопросами, независимо от is_active
	GetByID(ctx context.Context, formID string) (*FeedbackForm, error)
	// GetActiveByID - форма с вопросами, ErrFormNotFound если ее нет или она неактивна
	GetActiveByID(ctx context.Context, formID string) (*FeedbackForm, error)
	// Update - меняет переданные поля активной формы
	Update(ctx context.Context, formID string, uf types.UpdateForm) (*FeedbackForm, error)
	// Delete - удаляет активную форму, вопросы и ответы удаляются каскадно
	Delete(ctx context.Context, formID string) error
	// Questions - вопросы формы по возрастанию order
	Questions(ctx context.Context, formID string) ([]Question, error)
}
