package kafka

import "time"

type EventType string

const (
	ResponseSubmitted EventType = "response_submitted"
)

// Event - сообщение о новой отправке формы, читается сервисом аналитики
type Event struct {
	Type         EventType `json:"type"`
	FormID       string    `json:"form_id"`
	ResponseID   string    `json:"response_id"`
	AnswersCount int       `json:"answers_count"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewResponseSubmitted(formID, responseID string, answersCount int, submittedAt time.Time) Event {
	return Event{
		Type:         ResponseSubmitted,
		FormID:       formID,
		ResponseID:   responseID,
		AnswersCount: answersCount,
		Timestamp:    submittedAt.UTC(),
	}
}
