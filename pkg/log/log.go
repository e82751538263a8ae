package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/moorara/color"
)

// Verbosity determines how verbose a logger is.
type Verbosity int

const (
	// None disables all logs.
	None Verbosity = iota
	// Error shows only error logs.
	Error
	// Warn shows warning and error logs.
	Warn
	// Info shows info, warning, and error logs.
	Info
	// Debug shows all logs.
	Debug
)

func (v Verbosity) String() string {
	switch v {
	case None:
		return "None"
	case Error:
		return "Error"
	case Warn:
		return "Warn"
	case Info:
		return "Info"
	case Debug:
		return "Debug"
	default:
		return "Invalid"
	}
}

// Logger is a leveled logger.
type Logger interface {
	ChangeVerbosity(Verbosity)
	Debug(...interface{})
	Debugf(string, ...interface{})
	Info(...interface{})
	Infof(string, ...interface{})
	Warn(...interface{})
	Warnf(string, ...interface{})
	Error(...interface{})
	Errorf(string, ...interface{})
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

type logger struct {
	sync.Mutex
	verbosity Verbosity
	out       io.Writer
	exit      func(int)

	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	fatalColor *color.Color
}

// New creates a new logger writing to the standard error.
func New(v Verbosity) Logger {
	return NewWithWriter(v, os.Stderr)
}

// NewWithWriter creates a new logger writing to the given writer.
func NewWithWriter(v Verbosity, w io.Writer) Logger {
	return &logger{
		verbosity:  v,
		out:        w,
		exit:       os.Exit,
		debugColor: color.New(color.FgBlue),
		infoColor:  color.New(color.FgGreen),
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed),
		fatalColor: color.New(color.FgHiRed, color.Bold),
	}
}

func (l *logger) ChangeVerbosity(v Verbosity) {
	l.Lock()
	defer l.Unlock()

	l.verbosity = v
}

func (l *logger) log(v Verbosity, c *color.Color, msg string) {
	l.Lock()
	defer l.Unlock()

	if l.verbosity >= v {
		fmt.Fprintln(l.out, c.Sprint(msg))
	}
}

func (l *logger) Debug(v ...interface{}) {
	l.log(Debug, l.debugColor, fmt.Sprint(v...))
}

func (l *logger) Debugf(format string, v ...interface{}) {
	l.log(Debug, l.debugColor, fmt.Sprintf(format, v...))
}

func (l *logger) Info(v ...interface{}) {
	l.log(Info, l.infoColor, fmt.Sprint(v...))
}

func (l *logger) Infof(format string, v ...interface{}) {
	l.log(Info, l.infoColor, fmt.Sprintf(format, v...))
}

func (l *logger) Warn(v ...interface{}) {
	l.log(Warn, l.warnColor, fmt.Sprint(v...))
}

func (l *logger) Warnf(format string, v ...interface{}) {
	l.log(Warn, l.warnColor, fmt.Sprintf(format, v...))
}

func (l *logger) Error(v ...interface{}) {
	l.log(Error, l.errorColor, fmt.Sprint(v...))
}

func (l *logger) Errorf(format string, v ...interface{}) {
	l.log(Error, l.errorColor, fmt.Sprintf(format, v...))
}

// Fatal logs the message regardless of the verbosity and exits with status 1.
func (l *logger) Fatal(v ...interface{}) {
	l.log(None, l.fatalColor, fmt.Sprint(v...))
	l.exit(1)
}

// Fatalf logs the message regardless of the verbosity and exits with status 1.
func (l *logger) Fatalf(format string, v ...interface{}) {
	l.log(None, l.fatalColor, fmt.Sprintf(format, v...))
	l.exit(1)
}
