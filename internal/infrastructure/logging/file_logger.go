package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
)

// FileLogger реализация логгера в файл
type FileLogger struct {
	file     io.Closer
	logger   *log.Logger
	logLevel string
	runID    string
}

// NewFileLogger создает новый файловый логгер.
// Файл открывается на дозапись, каждый запуск помечается собственным идентификатором.
func NewFileLogger(filename, logLevel string, logToFile bool) (*FileLogger, error) {
	if !logToFile {
		return nil, nil
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл лога %s: %w", filename, err)
	}

	l := NewWriterLogger(file, logLevel)
	l.file = file
	return l, nil
}

// NewWriterLogger создает логгер поверх произвольного writer
func NewWriterLogger(w io.Writer, logLevel string) *FileLogger {
	return &FileLogger{
		logger:   log.New(w, "", log.LstdFlags),
		logLevel: logLevel,
		runID:    uuid.NewString(),
	}
}

// RunID возвращает идентификатор запуска
func (l *FileLogger) RunID() string {
	return l.runID
}

// Debug логирует отладочное сообщение
func (l *FileLogger) Debug(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "debug") {
		l.writeLog("DEBUG", format, args...)
	}
}

// Info логирует информационное сообщение
func (l *FileLogger) Info(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "info") {
		l.writeLog("INFO", format, args...)
	}
}

// Warning логирует предупреждение
func (l *FileLogger) Warning(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "warning") {
		l.writeLog("WARNING", format, args...)
	}
}

// Error логирует ошибку
func (l *FileLogger) Error(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "error") {
		l.writeLog("ERROR", format, args...)
	}
}

// Success логирует успешное выполнение
func (l *FileLogger) Success(format string, args ...interface{}) {
	if shouldLog(l.logLevel, "info") {
		l.writeLog("SUCCESS", format, args...)
	}
}

// Close закрывает логгер
func (l *FileLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// writeLog записывает лог
func (l *FileLogger) writeLog(level, format string, args ...interface{}) {
	if l.logger == nil {
		return
	}

	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s", l.runID[:8], level, message)
}
