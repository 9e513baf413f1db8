package response

// SubmitAnswer - ответ на один вопрос
type SubmitAnswer struct {
	Question   int64  `json:"question" validate:"required"`
	AnswerText string `json:"answer_text"`
}

// SubmitResponse - входная схема отправки ответа на форму
type SubmitResponse struct {
	Answers []SubmitAnswer `json:"answers" validate:"required,dive"`
}
