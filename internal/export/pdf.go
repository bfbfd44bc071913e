package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mkerins/ai-friend/internal/domain"
)

// PDFExporter renders a session transcript as a paginated PDF document.
// Text wrapping and page breaks are delegated to fpdf's automatic flow.
type PDFExporter struct{}

// NewPDFExporter creates a transcript exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

type block struct {
	bold bool
	text string
}

// transcriptBlocks builds the ordered styled blocks of the document body,
// one bold question block and one normal answer block per exchange.
func transcriptBlocks(exchanges []domain.Exchange) []block {
	blocks := make([]block, 0, 2*len(exchanges))
	for i, ex := range exchanges {
		blocks = append(blocks,
			block{bold: true, text: fmt.Sprintf("[%s]\nQ%d: %s", ex.Timestamp, i+1, ex.Question)},
			block{bold: false, text: fmt.Sprintf("A%d: %s", i+1, ex.Answer)},
		)
	}
	return blocks
}

// Export renders the transcript and returns the document bytes. A session
// with no exchanges still yields a valid one-page document with the title.
func (e *PDFExporter) Export(displayName string, exchanges []domain.Exchange) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("%s's AI Friend Conversation", displayName)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.Ln(5)

	for _, b := range transcriptBlocks(exchanges) {
		style := ""
		if b.bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.MultiCell(0, 8, tr(b.text), "", "", false)
		if !b.bold {
			pdf.Ln(3)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render transcript: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the download name for an exported transcript,
// e.g. "Ada_chat_2026-09-01_153000.pdf".
func Filename(displayName string, now time.Time) string {
	return fmt.Sprintf("%s_chat_%s.pdf", displayName, now.Format("2006-01-02_150405"))
}
