package calllog

import (
	"reflect"
	"time"

	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
	"github.com/on-the-ground/closure_ive_go/introspect"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Level defines the severity call lines are logged at.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ZapLogFunc adapts a zap logger into a log function for Logger and Named.
// Unknown levels log at info.
func ZapLogFunc(logger *zap.Logger, level Level) func(string) {
	return func(line string) {
		switch level {
		case LevelDebug:
			logger.Debug(line)
		case LevelWarn:
			logger.Warn(line)
		case LevelError:
			logger.Error(line)
		default:
			logger.Info(line)
		}
	}
}

// Traced wraps fn so that each call emits structured "call starts" and "call ends"
// debug entries. Both carry the function name, the rendered arguments and a call id;
// the end entry also carries when the call started and how long it took.
func Traced[F any](fn F, logger *zap.Logger) F {
	name := introspect.FunctionName(fn)
	return wrap(fn, func(args []any, invoke func() []reflect.Value) []reflect.Value {
		fields := []zap.Field{
			zap.String("func", name),
			zap.String("args", FormatCall(name, args)),
			zap.String("call_id", newCallID()),
		}
		logger.Debug("call starts", fields...)

		start := time.Now()
		out := invoke()
		span := timespan.BetweenTimes(start, time.Now())

		logger.Debug("call ends", append(fields,
			zap.Time("start", span.Start()),
			zap.Duration("elapsed", span.Duration()),
		)...)
		return out
	})
}

// newCallID returns a UUIDv7, so ids sort by call start.
func newCallID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
