package news

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m := NewArticleMessage("Fed holds rates", "The committee voted unanimously.")
	m.ResponseStruct = json.RawMessage(`{"stock_code":"SPY"}`)
	m.ResponseRaw = "raw text"

	body, err := m.Encode()
	require.NoError(t, err)

	got, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, m.MessageID, got.MessageID)
	assert.Equal(t, m.Time, got.Time)
	assert.Equal(t, m.Title, got.Title)
	assert.Equal(t, m.Content, got.Content)
	assert.JSONEq(t, string(m.ResponseStruct), string(got.ResponseStruct))
	assert.Equal(t, m.ResponseRaw, got.ResponseRaw)
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	body := []byte(`{"message_id":"m1","title":"t","content":"c","source":"tradingview"}`)
	m, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, "m1", m.MessageID)
	assert.Equal(t, "t", m.Title)
}

func TestDecodeRejectsBadBodies(t *testing.T) {
	for _, body := range []string{"not json", `{"title":"no id"}`, ""} {
		_, err := Decode([]byte(body))
		assert.ErrorIs(t, err, ErrDecode, "body %q", body)
	}
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"+65", 65, true},
		{"-20", -20, true},
		{"score: +80 strong", 80, true},
		{"0", 0, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseScore(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestToRecordPrefersStructured(t *testing.T) {
	m := NewArticleMessage(" title ", " content ")
	m.ResponseStruct = json.RawMessage(`{"conclusion":"hold"}`)
	m.ResponseRaw = "full response"

	rec := m.ToRecord()
	assert.Equal(t, m.MessageID, rec.ArticleID)
	assert.Equal(t, "title", rec.Title)
	assert.Equal(t, "content", rec.Content)
	assert.Equal(t, `{"conclusion":"hold"}`, rec.Analysis)
	assert.Empty(t, rec.Error)
}

func TestToRecordFallsBackToRaw(t *testing.T) {
	m := NewArticleMessage("t", "c")
	m.ResponseRaw = "no structure here"

	rec := m.ToRecord()
	assert.Empty(t, rec.Analysis)
	assert.Equal(t, "no structure here", rec.Error)
}
