package domain

// ConversationRecord is one persisted log row. Column order in the workbook
// is UserName, Timestamp, Question, Answer.
type ConversationRecord struct {
	UserName  string
	Timestamp string
	Question  string
	Answer    string
}

// ConversationLogger appends one record per successful exchange to the
// shared conversation log. Rows are append-only and never deduplicated.
type ConversationLogger interface {
	Append(userName, question, answer string) error
}

// TranscriptExporter renders a session's exchanges into a downloadable document.
type TranscriptExporter interface {
	Export(displayName string, exchanges []Exchange) ([]byte, error)
}
