// Package log defines the logging interface used by the engines in this
// module. It is a subset of logrus.FieldLogger, so a *logrus.Logger or
// *logrus.Entry can be used through the Logrus adapter.
package log

import "github.com/sirupsen/logrus"

type (
	// Logger is the logging interface used by this module.
	// It's a subset of logrus.FieldLogger.
	Logger interface {
		WithField(key string, value any) Logger
		WithFields(fields map[string]any) Logger
		WithError(err error) Logger
		Debug(args ...any)
		Info(args ...any)
		Warn(args ...any)
		Error(args ...any)
	}

	// Discard implements a Logger that does nothing.
	Discard struct{}

	// Logrus adapts a logrus.FieldLogger to Logger.
	Logrus struct{ logrus.FieldLogger }
)

var (
	_ Logger = Discard{}
	_ Logger = Logrus{}
)

func (Discard) WithField(string, any) Logger     { return Discard{} }
func (Discard) WithFields(map[string]any) Logger { return Discard{} }
func (Discard) WithError(error) Logger           { return Discard{} }
func (Discard) Debug(...any)                     {}
func (Discard) Info(...any)                      {}
func (Discard) Warn(...any)                      {}
func (Discard) Error(...any)                     {}

func (x Logrus) WithField(key string, value any) Logger {
	return Logrus{FieldLogger: x.FieldLogger.WithField(key, value)}
}

func (x Logrus) WithFields(fields map[string]any) Logger {
	return Logrus{FieldLogger: x.FieldLogger.WithFields(fields)}
}

func (x Logrus) WithError(err error) Logger {
	return Logrus{FieldLogger: x.FieldLogger.WithError(err)}
}

// OrDiscard returns l, or Discard if l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard{}
	}
	return l
}
