package logs

import (
	"os"

	"github.com/op/go-logging"
)

var Logger = logging.MustGetLogger("charts")

const defLevel = "INFO"

// Init configures the process-wide backend for go-logging. The level string
// is parsed by the library; an unknown level returns an error and leaves the
// previous backend in place.
func Init(logLevel string) error {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		"%{color}%{time:2006-01-02 15:04:05.000} %{shortfunc} ▶ %{level:.5s} %{color:reset} %{message}",
	)
	formatted := logging.NewBackendFormatter(backend, format)

	leveled := logging.AddModuleLevel(formatted)
	if logLevel == "" {
		logLevel = defLevel
	}

	level, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	leveled.SetLevel(level, "")

	logging.SetBackend(leveled)
	return nil
}
