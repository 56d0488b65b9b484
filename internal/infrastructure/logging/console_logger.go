package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// ConsoleLogger выводит сообщения в консоль, с цветом если это терминал
type ConsoleLogger struct {
	mu       sync.Mutex
	out      io.Writer
	logLevel string

	debug   *color.Color
	info    *color.Color
	warning *color.Color
	err     *color.Color
	success *color.Color
}

// NewConsoleLogger создает консольный логгер
func NewConsoleLogger(out io.Writer, logLevel string) *ConsoleLogger {
	l := &ConsoleLogger{
		out:      out,
		logLevel: logLevel,
		debug:    color.New(color.FgHiBlack),
		info:     color.New(color.Reset),
		warning:  color.New(color.FgYellow),
		err:      color.New(color.FgRed),
		success:  color.New(color.FgGreen),
	}

	colorize := IsTerminal(out)
	for _, c := range []*color.Color{l.debug, l.info, l.warning, l.err, l.success} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return l
}

// Debug логирует отладочное сообщение
func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "debug") {
		l.write(l.debug, "DEBUG", format, args...)
	}
}

// Info логирует информационное сообщение
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "info") {
		l.write(l.info, "INFO", format, args...)
	}
}

// Warning логирует предупреждение
func (l *ConsoleLogger) Warning(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "warning") {
		l.write(l.warning, "WARNING", format, args...)
	}
}

// Error логирует ошибку
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "error") {
		l.write(l.err, "ERROR", format, args...)
	}
}

// Success логирует успешное выполнение
func (l *ConsoleLogger) Success(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "info") {
		l.write(l.success, "SUCCESS", format, args...)
	}
}

// Close ничего не делает: консоль не принадлежит логгеру
func (l *ConsoleLogger) Close() error {
	return nil
}

func (l *ConsoleLogger) write(c *color.Color, level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	c.Fprintf(l.out, "[%s] %s\n", level, message)
}
