package services

import (
	"bytes"
	"encoding/csv"
	"sort"
	"time"
)

// ResponseRow is one line of the long-format responses export.
type ResponseRow struct {
	UserID     string
	QuestionID string
	DayNumber  int
	Value      string
	AnsweredAt string // ISO8601; string for CSV simplicity
}

// ExportResponsesCSV renders a user's responses into a long-format CSV,
// ordered by day then question id for stable output.
func ExportResponsesCSV(rs []*Response) ([]byte, error) {
	rows := make([]ResponseRow, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, ResponseRow{
			UserID:     r.UserID,
			QuestionID: r.QuestionID,
			DayNumber:  r.DayNumber,
			Value:      r.DisplayValue(),
			AnsweredAt: r.AnsweredAt.Format(time.RFC3339),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DayNumber == rows[j].DayNumber {
			return rows[i].QuestionID < rows[j].QuestionID
		}
		return rows[i].DayNumber < rows[j].DayNumber
	})

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"user_id", "question_id", "day_number", "value", "answered_at"})
	for _, row := range rows {
		rec := []string{row.UserID, row.QuestionID, itoa(row.DayNumber), row.Value, row.AnsweredAt}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func itoa(i int) string {
	// local small int->string to avoid importing strconv everywhere
	if i == 0 {
		return "0"
	}
	neg := false
	if i < 0 {
		neg = true
		i = -i
	}
	var b [20]byte
	bp := len(b)
	for i > 0 {
		bp--
		b[bp] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		bp--
		b[bp] = '-'
	}
	return string(b[bp:])
}
