// Package logging hands out pion leveled loggers that share one factory.
// Levels are set per scope with the PION_LOG_{TRACE,DEBUG,INFO,WARN,ERROR}
// environment variables, e.g. PION_LOG_DEBUG=yuyv/driver/camera.
package logging

import (
	"github.com/pion/logging"
)

var loggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger creates a logger for scope, e.g. "yuyv/driver".
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger(scope)
}
