// Package logger wraps op/go-logging with a console backend shared by
// the whole application.
package logger

import (
	"os"

	"github.com/op/go-logging"
)

var log *logging.Logger

func init() {
	// Usable default so packages can log before Init runs (tests, seeds).
	Init("info")
}

// Init configures the console backend at the given level
// (debug, info, warning, error).
func Init(level string) {
	l := logging.MustGetLogger("inventory-portal")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:2006/01/02 15:04:05} %{level} - %{message}`)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, "inventory-portal")

	l.SetBackend(leveled)
	log = l
}

func Debug(args ...any)              { log.Debug(args...) }
func Debugf(f string, args ...any)   { log.Debugf(f, args...) }
func Info(args ...any)               { log.Info(args...) }
func Infof(f string, args ...any)    { log.Infof(f, args...) }
func Warning(args ...any)            { log.Warning(args...) }
func Warningf(f string, args ...any) { log.Warningf(f, args...) }
func Error(args ...any)              { log.Error(args...) }
func Errorf(f string, args ...any)   { log.Errorf(f, args...) }
