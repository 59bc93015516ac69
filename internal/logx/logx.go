// Package logx holds the module-wide logger used outside the synchronous
// core: the batch solver and the command-line tool.
package logx

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Log is the shared "gridpath" logger. Until InitLogger is called again it
// only emits WARNING and above.
var Log = logging.MustGetLogger("gridpath")

func init() {
	InitLogger(logging.WARNING)
}

// InitLogger installs a colored stderr backend filtered at level.
func InitLogger(level logging.Level) {
	var logFmt = logging.MustStringFormatter(
		`%{color}%{level:.4s}%{color:reset} %{shortfunc} %{message}`,
	)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFmt)

	// set log level
	backendLeveled := logging.AddModuleLevel(backendFormatter)
	backendLeveled.SetLevel(level, "")

	logging.SetBackend(backendLeveled)
}

// ParseLevel maps a case-insensitive level name (DEBUG, INFO, NOTICE,
// WARNING, ERROR, CRITICAL) to a logging.Level.
func ParseLevel(name string) (logging.Level, error) {
	return logging.LogLevel(strings.ToUpper(name))
}
