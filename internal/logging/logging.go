package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "tvnav.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	traceSeq     uint64
	logPath      = defaultLogFile
)

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	appendEntry("logging failed", func(f *os.File) error {
		log.New(f, "", log.LstdFlags).Println(err)
		return nil
	})
}

// Errorf formats and logs an error.
func Errorf(format string, args ...interface{}) {
	Error(fmt.Errorf(format, args...))
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

type traceEntry struct {
	Seq     uint64      `json:"seq"`
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends one JSON line when tracing is enabled. Seq orders entries
// written within the same clock tick, which key bursts produce.
func Trace(event string, payload interface{}) {
	mu.Lock()
	if !traceEnabled {
		mu.Unlock()
		return
	}
	traceSeq++
	entry := traceEntry{Seq: traceSeq, Time: time.Now().UTC(), Event: event, Payload: payload}
	mu.Unlock()

	appendEntry("trace logging failed", func(f *os.File) error {
		return json.NewEncoder(f).Encode(entry)
	})
}

func appendEntry(what string, write func(*os.File) error) {
	mu.Lock()
	path := logPath
	mu.Unlock()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", what, err)
	}
}

// Configure sets the log destination, creating its directory. An empty path
// or an uncreatable directory selects tvnav.log in the working directory.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	path = strings.TrimSpace(path)
	if path == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
