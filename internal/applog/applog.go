// Package applog writes one structured JSON line per served request and
// per updater tick, in the style of a stdlib-only request logger: no
// third-party logging library, just encoding/json over an io.Writer.
package applog

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"
)

// RequestEntry is one served-request log line.
type RequestEntry struct {
	Time         string `json:"time"`
	PeerAddr     string `json:"peer_addr"`
	RequestLine  string `json:"request_line"`
	Status       int    `json:"status"`
	BytesWritten int    `json:"bytes_written"`
	Referer      string `json:"referer,omitempty"`
	UserAgent    string `json:"user_agent,omitempty"`
}

// UpdaterEntry is one updater-tick log line.
type UpdaterEntry struct {
	Time       string `json:"time"`
	PRID       string `json:"pr_id,omitempty"`
	Outcome    string `json:"outcome"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// Logger writes RequestEntry and UpdaterEntry values as JSON lines to an
// underlying writer (stdout by default).
type Logger struct {
	out io.Writer
}

// New constructs a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Default constructs a Logger writing to os.Stdout.
func Default() *Logger {
	return New(os.Stdout)
}

// Request logs one served request.
func (l *Logger) Request(peerAddr, requestLine string, status, bytesWritten int, referer, userAgent string) {
	entry := RequestEntry{
		Time:         time.Now().UTC().Format(time.RFC3339),
		PeerAddr:     peerAddr,
		RequestLine:  requestLine,
		Status:       status,
		BytesWritten: bytesWritten,
		Referer:      referer,
		UserAgent:    userAgent,
	}
	l.encode(entry)
}

// UpdaterTick logs one updater-loop iteration.
func (l *Logger) UpdaterTick(prID, outcome string, duration time.Duration, err error) {
	entry := UpdaterEntry{
		Time:       time.Now().UTC().Format(time.RFC3339),
		PRID:       prID,
		Outcome:    outcome,
		DurationMS: duration.Milliseconds(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	l.encode(entry)
}

func (l *Logger) encode(v any) {
	enc := json.NewEncoder(l.out)
	if err := enc.Encode(v); err != nil {
		log.Printf("applog: failed to write log entry: %v", err)
	}
}
