//go:build debug

package sweep

import (
	"log"
	"os"
)

// logger writes sweep-engine trace output to stderr. Only compiled in when
// built with -tags debug, exactly as the teacher's log_debug.go gates its
// own logger.
var logger = log.New(os.Stderr, "[projgeom sweep DEBUG] ", log.LstdFlags)

// logDebugf logs a formatted debug message from the sweep engine.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
