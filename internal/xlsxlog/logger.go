package xlsxlog

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/mkerins/ai-friend/internal/domain"
	"github.com/xuri/excelize/v2"
)

var header = []string{"User Name", "Timestamp", "User Question", "AI Answer"}

// Logger appends conversation records to an .xlsx workbook, creating it with
// a header row on first write. Each append is a read-modify-write of the whole
// workbook, serialized by an in-process mutex. Multiple server processes
// sharing one file can still interleave and lose rows; see DESIGN.md.
type Logger struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewLogger creates a logger writing to the workbook at path
func NewLogger(path string) *Logger {
	return &Logger{
		path: path,
		now:  time.Now,
	}
}

// Path returns the workbook path
func (l *Logger) Path() string {
	return l.path
}

// Append writes one record with a fresh timestamp to the end of the workbook.
// Existing rows are never modified or reordered, and identical inputs always
// produce distinct rows.
func (l *Logger) Append(userName, question, answer string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := domain.ConversationRecord{
		UserName:  userName,
		Timestamp: l.now().Format(domain.TimestampFormat),
		Question:  question,
		Answer:    answer,
	}

	f, row, err := l.open()
	if err != nil {
		return err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to locate append row: %w", err)
	}
	values := []any{rec.UserName, rec.Timestamp, rec.Question, rec.Answer}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write log row: %w", err)
	}

	if err := f.SaveAs(l.path); err != nil {
		return fmt.Errorf("failed to save conversation log: %w", err)
	}
	return nil
}

// open loads the workbook and returns it with the 1-based index of the first
// free row. A missing file starts a new workbook with the header row; any
// other open error propagates.
func (l *Logger) open() (*excelize.File, int, error) {
	f, err := excelize.OpenFile(l.path)
	if err == nil {
		sheet := f.GetSheetName(0)
		rows, err := f.GetRows(sheet)
		if err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("failed to read conversation log: %w", err)
		}
		return f, len(rows) + 1, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return nil, 0, fmt.Errorf("failed to open conversation log: %w", err)
	}

	f = excelize.NewFile()
	sheet := f.GetSheetName(0)
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("failed to write header row: %w", err)
	}
	return f, 2, nil
}
