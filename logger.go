package ndeps

import (
	"fmt"
	"sort"
	"sync"
)

// BasicLogger is what ndeps logs to.  Everything ndeps logs is at
// Debug level: dropped actions and wrapper creation.
type BasicLogger interface {
	Debug(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	Warn(msg string, fields ...map[string]interface{})
}

// StdLogger is implmented by the base library log.Logger
type StdLogger interface {
	Print(v ...interface{})
}

var (
	loggerLock sync.RWMutex
	logger     BasicLogger = nilLogger{}
)

// SetLogger replaces the package logger.  A nil logger discards.
func SetLogger(l BasicLogger) {
	if l == nil {
		l = nilLogger{}
	}
	loggerLock.Lock()
	defer loggerLock.Unlock()
	logger = l
}

func getLogger() BasicLogger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	return logger
}

type wrappedStdLogger struct {
	log StdLogger
}

// LoggerFromStd adapts a log.Logger (or anything with Print) into a
// BasicLogger.  Fields are printed as key=value.
func LoggerFromStd(log StdLogger) BasicLogger {
	return wrappedStdLogger{log: log}
}

func (std wrappedStdLogger) Error(msg string, fields ...map[string]interface{}) {
	if len(fields) == 0 {
		std.log.Print(msg)
		return
	}
	vals := make([]interface{}, 1, len(fields)*4+1)
	vals[0] = msg
	for _, m := range fields {
		for _, k := range sortedFieldKeys(m) {
			vals = append(vals, " "+k+"="+fmt.Sprint(m[k]))
		}
	}
	std.log.Print(vals...)
}

func (std wrappedStdLogger) Warn(msg string, fields ...map[string]interface{}) {
	std.Error(msg, fields...)
}
func (std wrappedStdLogger) Debug(msg string, fields ...map[string]interface{}) {
	std.Error(msg, fields...)
}

func sortedFieldKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NoLogger returns a BasicLogger that discards all inputs
func NoLogger() BasicLogger {
	return nilLogger{}
}

type nilLogger struct{}

var _ BasicLogger = nilLogger{}

func (_ nilLogger) Error(msg string, fields ...map[string]interface{}) {}
func (_ nilLogger) Warn(msg string, fields ...map[string]interface{})  {}
func (_ nilLogger) Debug(msg string, fields ...map[string]interface{}) {}
