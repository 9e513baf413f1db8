package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"feedback-main/internal/form"
	"feedback-main/internal/response"
)

const (
	ContentType     = "text/csv"
	NoAnswer        = "No Answer"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Header - Response ID, Submitted At и по колонке на вопрос в переданном порядке
func Header(questions []form.Question) []string {
	header := make([]string, 0, len(questions)+2)
	header = append(header, "Response ID", "Submitted At")
	for i, q := range questions {
		header = append(header, fmt.Sprintf("Q%d: %s", i+1, q.Text))
	}

	return header
}

// Row - строка одного ответа. Значения берутся только из его собственных answers,
// ответы на вопросы вне questions отбрасываются.
// При нескольких значениях на один вопрос в ячейку попадает последнее
func Row(questions []form.Question, resp *response.Response) []string {
	answerByQuestion := make(map[int64]string, len(resp.Answers))
	for _, a := range resp.Answers {
		answerByQuestion[a.Question] = a.AnswerText
	}

	row := make([]string, 0, len(questions)+2)
	row = append(row, resp.ID, resp.SubmittedAt.UTC().Format(TimestampLayout))
	for _, q := range questions {
		text, ok := answerByQuestion[q.ID]
		if !ok {
			text = NoAnswer
		}
		row = append(row, text)
	}

	return row
}

// Rows - заголовок и по строке на каждый ответ в порядке responses
func Rows(questions []form.Question, responses []*response.Response) [][]string {
	rows := make([][]string, 0, len(responses)+1)
	rows = append(rows, Header(questions))
	for _, resp := range responses {
		rows = append(rows, Row(questions, resp))
	}

	return rows
}

// Write пишет CSV-документ целиком
func Write(w io.Writer, questions []form.Question, responses []*response.Response) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Rows(questions, responses)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	return nil
}

// Filename - {title}_responses.csv, кавычки и переводы строк из названия убираются,
// чтобы не сломать Content-Disposition
func Filename(title string) string {
	clean := strings.NewReplacer(`"`, "", "\r", "", "\n", "", `\`, "").Replace(title)
	return clean + "_responses.csv"
}

// ContentDisposition - заголовок для скачивания файла
func ContentDisposition(title string) string {
	return fmt.Sprintf(`attachment; filename="%s"`, Filename(title))
}
