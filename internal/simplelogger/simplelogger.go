package simplelogger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var mu sync.Mutex

// Log is a minimal printf-style debug logger. It appends one timestamped line
// per call to the file named by the OPUSCLEANER_LOG_FILE environment variable.
//
// If OPUSCLEANER_LOG_FILE is unset/empty or the path can't be opened for
// appending, Log is a no-op. User-facing output never goes through here;
// commands write that to their own writers.
func Log(format string, args ...any) {
	path := os.Getenv("OPUSCLEANER_LOG_FILE")
	if path == "" {
		return
	}

	// Serialize open/write/close so concurrent callers don't interleave.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	_, _ = fmt.Fprintf(f, "%s %s\n", time.Now().Format("2006-01-02 15:04:05.000"), msg)
}
