package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimestampFormat is the wall-clock format stamped on exchanges and log rows.
const TimestampFormat = "2006-01-02 15:04:05"

// Exchange is one recorded question/answer pair. Immutable once appended.
type Exchange struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

// Session holds the per-visitor display name and accumulated exchanges.
// It lives in memory only; the conversation log file is the sole durable record.
type Session struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Exchanges []Exchange `json:"exchanges"`
	CreatedAt time.Time  `json:"created_at"`
}

// SessionStore defines the interface for session state.
type SessionStore interface {
	Create() *Session
	Get(id uuid.UUID) (*Session, bool)
	// Name returns the raw display name under the store's lock.
	Name(id uuid.UUID) (string, error)
	SetName(id uuid.UUID, name string) error
	// AppendExchange stamps the current time, records the exchange at the end
	// of the session's history and returns the generated timestamp.
	AppendExchange(id uuid.UUID, question, answer string) (string, error)
	Exchanges(id uuid.UUID) ([]Exchange, error)
}
