package response

import (
	"context"
	"time"

	types "feedback-main/internal/types/response"
)

// Answer - ответ на один вопрос, QuestionText подтягивается из вопроса для удобства клиента
type Answer struct {
	Question     int64  `json:"question"`
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
}

// Response - одна отправка формы
type Response struct {
	ID          string    `json:"id"` // uuid
	FormID      string    `json:"form"`
	SubmittedAt time.Time `json:"submitted_at"`
	Answers     []Answer  `json:"answers"`
}

//go:generate mockgen -source=response.go -destination=../mocks/mock_response_repo.go -package=mocks
type ResponseRepo interface {
	// Create - проверяет, что форма активна и все вопросы из нее,
	// затем создает ответ вместе со всеми значениями в одной транзакции
	Create(ctx context.Context, formID string, answers []types.SubmitAnswer) (*Response, error)
	// List - ответы на все формы, созданные creatorID
	List(ctx context.Context, creatorID int64) ([]*Response, error)
	// ListByForm - ответы одной формы по возрастанию submitted_at
	ListByForm(ctx context.Context, formID string) ([]*Response, error)
}
