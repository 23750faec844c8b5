// Package logging constructs the CLI logger. Library packages return
// errors and never log; only the command layer speaks.
package logging

import "go.uber.org/zap"

// New returns a development logger when debug is set, otherwise a no-op
// logger so the default CLI output stays clean.
func New(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
