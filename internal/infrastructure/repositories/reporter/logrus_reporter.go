package reporter

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/codegen-tasks/internal/domain/repositories"
)

//nolint:gochecknoglobals // immutable styles
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// LogrusReporter writes run output through a logrus logger.
type LogrusReporter struct {
	log *logger.Logger
}

// NewLogrusReporter creates a reporter writing to log.
func NewLogrusReporter(log *logger.Logger) *LogrusReporter {
	return &LogrusReporter{log: log}
}

func (it *LogrusReporter) Success(message string) {
	it.log.Info(successStyle.Render("✔ " + message))
}

func (it *LogrusReporter) Error(message string) {
	it.log.Error(message)
}

func (it *LogrusReporter) Spinner(message string) repositories.Spinner {
	return &logrusSpinner{log: it.log, message: message}
}

// logrusSpinner stands in for an animated spinner: logs are line-based, so
// it reports the start and the end of the step with its duration.
type logrusSpinner struct {
	log     *logger.Logger
	message string
	started time.Time
}

func (it *logrusSpinner) Start() repositories.Spinner {
	it.started = time.Now()
	it.log.Infof("%s...", it.message)
	return it
}

func (it *logrusSpinner) Succeed(message string) {
	it.log.WithField("elapsed", it.elapsed()).Info(successStyle.Render("✔ " + message))
}

func (it *logrusSpinner) Fail() {
	it.log.WithField("elapsed", it.elapsed()).Error(failureStyle.Render("✖ " + it.message))
}

func (it *logrusSpinner) elapsed() string {
	if it.started.IsZero() {
		return "0s"
	}
	return time.Since(it.started).Round(time.Millisecond).String()
}
