package applog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestRequestWritesOneJSONLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.Request("127.0.0.1:5000", "GET /api/random HTTP/1.1", 200, 42, "https://npmjs.com", "curl/8.0")

	var entry RequestEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if entry.PeerAddr != "127.0.0.1:5000" || entry.Status != 200 || entry.BytesWritten != 42 {
		t.Fatalf("entry = %+v", entry)
	}
	if entry.RequestLine != "GET /api/random HTTP/1.1" {
		t.Fatalf("RequestLine = %q", entry.RequestLine)
	}
}

func TestUpdaterTickOmitsErrorWhenNil(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.UpdaterTick("42", "success", 100*time.Millisecond, nil)

	var entry UpdaterEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if entry.Error != "" {
		t.Fatalf("Error = %q, want empty", entry.Error)
	}
	if entry.DurationMS != 100 {
		t.Fatalf("DurationMS = %d, want 100", entry.DurationMS)
	}
}

func TestUpdaterTickRecordsError(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)

	l.UpdaterTick("42", "failure", 0, errors.New("boom"))

	var entry UpdaterEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if entry.Error != "boom" {
		t.Fatalf("Error = %q, want %q", entry.Error, "boom")
	}
}
