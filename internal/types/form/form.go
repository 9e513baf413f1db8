package form

import (
	"encoding/json"
	"fmt"

	"feedback-main/internal/types/validation"
)

const (
	QuestionTypeText           = "text"
	QuestionTypeMultipleChoice = "multiple_choice"
)

// CreateQuestion - описание вопроса при создании формы
type CreateQuestion struct {
	Text         string          `json:"text" validate:"required,max=500"`
	QuestionType string          `json:"question_type" validate:"required,oneof=text multiple_choice"`
	Options      json.RawMessage `json:"options,omitempty"`
	// IsRequired по умолчанию true, поэтому указатель
	IsRequired *bool `json:"is_required,omitempty"`
	Order      int   `json:"order"`
}

// CreateForm - входная схема создания формы вместе с вопросами
type CreateForm struct {
	Title       string           `json:"title" validate:"required,notblank,max=200"`
	Description string           `json:"description"`
	Questions   []CreateQuestion `json:"questions" validate:"required,dive"`
}

// Validate проверяет теги и то, что у multiple_choice есть непустой список вариантов
func (cf CreateForm) Validate() error {
	if err := validation.Struct(cf); err != nil {
		return err
	}

	for i, q := range cf.Questions {
		field := fmt.Sprintf("questions[%d].options", i)
		if q.QuestionType != QuestionTypeMultipleChoice {
			continue
		}

		var options []interface{}
		if len(q.Options) == 0 || json.Unmarshal(q.Options, &options) != nil {
			return validation.New(field, "must be a list for multiple_choice questions")
		}
		if len(options) == 0 {
			return validation.New(field, "must contain at least one option")
		}
	}

	return nil
}

// UpdateForm - поля формы для PUT/PATCH, nil означает "не менять"
type UpdateForm struct {
	Title       *string `json:"title" validate:"omitempty,min=1,notblank,max=200"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// ValidateFull - для PUT обязателен title
func (uf UpdateForm) ValidateFull() error {
	if uf.Title == nil {
		return validation.New("title", "this field is required")
	}

	return uf.ValidatePartial()
}

func (uf UpdateForm) ValidatePartial() error {
	return validation.Struct(uf)
}
