package news

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// StructuredAnalysis is the schema the LLM is asked to emit inside the
// delimited block. Decoding is lenient; absent fields stay zero.
type StructuredAnalysis struct {
	StockCode string `json:"stock_code"`
	StockName string `json:"stock_name"`
	Analysis  struct {
		ShortTerm TermAnalysis `json:"short_term"`
		MidTerm   TermAnalysis `json:"mid_term"`
		LongTerm  TermAnalysis `json:"long_term"`
	} `json:"analysis"`
	Alerts     []string `json:"alerts"`
	Conclusion string   `json:"conclusion"`
}

// TermAnalysis scores one horizon. Score is serialised as a signed
// string ("+65", "-20") in [-100, +100].
type TermAnalysis struct {
	Score  string `json:"score"`
	Driver string `json:"driver"`
	Risk   string `json:"risk"`
}

var scorePattern = regexp.MustCompile(`[+-]?\d+`)

// ParseScore extracts the signed integer from a score string.
func ParseScore(s string) (int, bool) {
	m := scorePattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseStructured decodes a raw structured block into the analysis
// schema. Used by the trade policy; sinks keep the raw bytes.
func ParseStructured(raw json.RawMessage) (*StructuredAnalysis, error) {
	var sa StructuredAnalysis
	if err := json.Unmarshal(raw, &sa); err != nil {
		return nil, err
	}
	return &sa, nil
}

// Record is the relational row keyed by the message id. Text fields
// are trimmed on the way in; the upsert overwrites everything but the
// primary key.
type Record struct {
	ArticleID string
	Time      string
	Title     string
	Content   string
	Analysis  string
	Error     string
}

// ToRecord maps a consumed message onto its relational row. Messages
// without a structured block record the raw response under error.
func (m *ArticleMessage) ToRecord() Record {
	rec := Record{
		ArticleID: m.MessageID,
		Time:      strings.TrimSpace(m.Time),
		Title:     strings.TrimSpace(m.Title),
		Content:   strings.TrimSpace(m.Content),
	}
	if len(m.ResponseStruct) > 0 {
		rec.Analysis = string(m.ResponseStruct)
	} else {
		rec.Error = strings.TrimSpace(m.ResponseRaw)
	}
	return rec
}
