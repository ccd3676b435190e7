package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// prefixedWriter stamps every log line with a UTC timestamp and the service
// name. Partial writes are buffered until a newline arrives so a line is
// never split across two stamps.
type prefixedWriter struct {
	mu      sync.Mutex
	service string
	out     io.Writer
	partial bytes.Buffer
}

func (w *prefixedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.partial.Write(p)

	var buf bytes.Buffer
	for {
		line, err := w.partial.ReadBytes('\n')
		if err != nil {
			// No newline yet; keep the remainder for the next write.
			w.partial.Write(line)
			break
		}
		fmt.Fprintf(&buf, "%s %s ", time.Now().UTC().Format(time.RFC3339), w.service)
		buf.Write(line)
	}

	if buf.Len() == 0 {
		return len(p), nil
	}
	if _, err := w.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Setup configures the default logger to write stamped lines to stdout and a
// per-service log file under logDir. The returned file is the caller's to
// close on shutdown.
func Setup(serviceName, logDir string) (*os.File, error) {
	if logDir == "" {
		logDir = ".log"
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	logPath := filepath.Join(logDir, serviceName+".log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(&prefixedWriter{
		service: serviceName,
		out:     io.MultiWriter(os.Stdout, file),
	})
	log.SetFlags(0)
	log.SetPrefix("")
	return file, nil
}
