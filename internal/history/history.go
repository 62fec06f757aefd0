// Package history appends completed consultations to a CSV log.
package history

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spigell/skin-advisor/internal/skincare"
)

// Header is written once, when the log file is empty.
var Header = []string{"timestamp", "id", "skin_type", "issue", "answers", "recommendation", "advice"}

// Record is one completed consultation.
type Record struct {
	ID             string
	Timestamp      time.Time
	SkinType       skincare.SkinType
	Issue          skincare.Issue
	Answers        []skincare.Answer
	Recommendation string
	Advice         string
}

// Recorder persists records. Implementations only append.
type Recorder interface {
	Append(rec *Record) error
}

// FileRecorder appends records to a CSV file, creating it when missing.
type FileRecorder struct {
	path string
}

func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

func (r *FileRecorder) Path() string { return r.path }

func (r *FileRecorder) Append(rec *Record) error {
	if rec == nil {
		return fmt.Errorf("record is required")
	}

	row, err := rec.Row()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat history file: %w", err)
	}

	w := csv.NewWriter(file)
	if stat.Size() == 0 {
		if err := w.Write(Header); err != nil {
			return fmt.Errorf("writing history header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("writing history record: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing history file: %w", err)
	}

	return nil
}

// Row renders rec as CSV fields in Header order. Answers become a JSON object
// and multi-line texts are flattened with ";".
func (rec *Record) Row() ([]string, error) {
	answers := make(map[string]string, len(rec.Answers))
	for _, answer := range rec.Answers {
		answers[answer.Question] = answer.Text
	}

	encoded, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}

	return []string{
		rec.Timestamp.Format(time.RFC3339),
		rec.ID,
		string(rec.SkinType),
		string(rec.Issue),
		string(encoded),
		flatten(rec.Recommendation),
		flatten(rec.Advice),
	}, nil
}

func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", ";")
}
