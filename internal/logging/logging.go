// Package logging provides the engine's single leveled logger, shared
// by the UCI driver and search diagnostics. It is never used on the
// hot make/undo or alpha-beta path — formatting and the logging
// library's locking would cost more than the search itself.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var log = newLogger()

func newLogger() *logging.Logger {
	l := logging.MustGetLogger("lishex")

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} [%{module}] %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)

	return l
}

// Get returns the package's shared logger.
func Get() *logging.Logger {
	return log
}

// SetLevel adjusts the minimum level the logger emits, e.g. from a
// loaded Config or a UCI debug option.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
