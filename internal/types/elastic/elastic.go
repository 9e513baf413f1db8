package elastic

// FormDoc - структура документа формы для хранения в ES
type FormDoc struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Questions   []string `json:"questions,omitempty"`
}
