// Package news defines the article payload that flows through both
// broker queues and its mapping onto the persisted record shapes.
package news

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrDecode wraps any failure to decode a queue message body.
var ErrDecode = errors.New("failed to decode article message")

// ArticleMessage is the unit flowing through the pipeline. The scraper
// creates it, the analyser adds the response fields, the ingestor
// terminates it in the stores. No stage mutates a message after
// handing it off; the broker is the only cross-stage medium.
type ArticleMessage struct {
	MessageID string `json:"message_id"`
	Time      string `json:"time,omitempty"` // RFC3339, set at creation
	Title     string `json:"title"`
	Content   string `json:"content"`

	// Set by the analyser. ResponseStruct is the extracted structured
	// block, kept raw so downstream stages store it verbatim.
	ResponseStruct json.RawMessage `json:"response_struct,omitempty"`
	ResponseRaw    string          `json:"response_raw,omitempty"`
}

// NewArticleMessage stamps a fresh id and creation time.
func NewArticleMessage(title, content string) *ArticleMessage {
	return &ArticleMessage{
		MessageID: uuid.NewString(),
		Time:      time.Now().UTC().Format(time.RFC3339),
		Title:     title,
		Content:   content,
	}
}

// Encode serialises the message for the wire. Round-trip stable:
// Decode(Encode(m)) == m.
func (m *ArticleMessage) Encode() ([]byte, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode article message: %w", err)
	}
	return body, nil
}

// Decode parses a queue message body. Unknown fields are ignored so
// producers may carry a superset of this schema.
func Decode(body []byte) (*ArticleMessage, error) {
	var m ArticleMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if m.MessageID == "" {
		return nil, fmt.Errorf("%w: missing message_id", ErrDecode)
	}
	return &m, nil
}
