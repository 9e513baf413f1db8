package etl

import (
	"feedback-main/internal/form"
	"feedback-main/internal/types/elastic"

	"go.uber.org/zap"
)

type Transformer struct {
	Logger *zap.SugaredLogger
}

func NewTransformer(logger *zap.SugaredLogger) *Transformer {
	return &Transformer{
		Logger: logger,
	}
}

// Transform - переводит формы из PostgreSQL в FormDoc для хранения в ES
func (t *Transformer) Transform(input []form.FeedbackForm) []elastic.FormDoc {
	docs := make([]elastic.FormDoc, 0, len(input))
	for _, f := range input {
		questions := make([]string, 0, len(f.Questions))
		for _, q := range f.Questions {
			questions = append(questions, q.Text)
		}

		docs = append(docs, elastic.FormDoc{
			ID:          f.ID,
			Title:       f.Title,
			Description: f.Description,
			Questions:   questions,
		})
	}

	t.Logger.Infof("Transformed %d docs succesfully", len(input))

	return docs
}
