package logger

import (
	"RouletteLedger/pkg/errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

func (l Level) String() string {
	switch l {
	case PanicLevel:
		return "PANIC"
	case FatalLevel:
		return "FATAL"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return ""
	}
}

// ParseLevel accepts logrus level names ("info", "debug", ...)
func ParseLevel(s string) (Level, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(s))
	if err != nil {
		return InfoLevel, errors.WrapStack(err, "parse log level")
	}
	return Level(lvl), nil
}

type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Debug(args ...interface{})
	Error(args ...interface{})
	Trace(args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Tracef(format string, args ...interface{})
	Log(Level, string)

	AddHook(hook Hook, lvls ...Level)

	WithPrefix(k string, v interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

type logrusLogger struct {
	log *logrus.Entry
}

func (l *logrusLogger) Log(lvl Level, msg string) {
	l.log.Log(logrus.Level(lvl), msg)
}

func (l *logrusLogger) Info(args ...interface{}) {
	l.log.Infoln(args...)
}

func (l *logrusLogger) Warn(args ...interface{}) {
	l.log.Warnln(args...)
}

func (l *logrusLogger) Debug(args ...interface{}) {
	l.log.Debugln(args...)
}

func (l *logrusLogger) Trace(args ...interface{}) {
	l.log.Traceln(args...)
}

func (l *logrusLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *logrusLogger) Warnf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *logrusLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

func (l *logrusLogger) Tracef(format string, args ...interface{}) {
	l.log.Tracef(format, args...)
}

func (l *logrusLogger) Error(args ...interface{}) {
	l.log.WithFields(l.stackField(args)).Errorln(args...)
}

func (l *logrusLogger) Errorf(format string, args ...interface{}) {
	l.log.WithFields(l.stackField(args)).Errorf(format, args...)
}

// stackField attaches the first error's stack trace when debug output is on
func (l *logrusLogger) stackField(args []interface{}) logrus.Fields {
	if !l.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return nil
	}
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			if errors.HasStack(err) {
				return logrus.Fields{"stack": errors.GetStack(err)}
			}
			break
		}
	}
	return nil
}

func (l *logrusLogger) WithPrefix(k string, v interface{}) Logger {
	return &logrusLogger{
		log: l.log.WithField(k, v),
	}
}

func (l *logrusLogger) WithFields(fields map[string]interface{}) Logger {
	return &logrusLogger{
		log: l.log.WithFields(fields),
	}
}

func (l *logrusLogger) AddHook(hk Hook, lvls ...Level) {
	h := &hook{
		Receiver: hk,
	}

	if lvls == nil {
		h.lvls = []logrus.Level{logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
	}

	for _, lvl := range lvls {
		h.lvls = append(h.lvls, logrus.Level(lvl))
	}

	l.log.Logger.AddHook(h)
}

func New(writer io.Writer, level Level) Logger {
	log := logrus.New()

	log.SetOutput(writer)
	log.SetLevel(logrus.Level(level))

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
		QuoteEmptyFields:       true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			s := strings.Split(f.Function, "/")
			funcname := s[len(s)-1]

			return fmt.Sprintf("%s()", funcname), fmt.Sprintf(" %s:%d", filepath.Base(f.File), f.Line)
		},
	})

	return &logrusLogger{
		log: logrus.NewEntry(log),
	}
}

type HookData struct {
	Time    time.Time
	Level   Level
	Caller  *runtime.Frame
	Message string
	Fields  map[string]interface{}
}

type Hook interface {
	Fire(*HookData) error
}

type hook struct {
	Receiver Hook
	lvls     []logrus.Level
}

func (h *hook) Fire(e *logrus.Entry) error {
	hd := &HookData{
		Time:    e.Time,
		Level:   Level(e.Level),
		Caller:  e.Caller,
		Message: e.Message,
		Fields:  e.Data,
	}

	return h.Receiver.Fire(hd)
}

func (h *hook) Levels() []logrus.Level {
	return h.lvls
}
