package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var levels = map[string]int{
	"debug":   0,
	"info":    1,
	"warning": 2,
	"error":   3,
}

// shouldLog проверяет, нужно ли логировать сообщение уровня level при пороге threshold
func shouldLog(threshold, level string) bool {
	currentLevel, ok := levels[strings.ToLower(threshold)]
	if !ok {
		currentLevel = 1 // default to info
	}

	messageLevel, ok := levels[level]
	if !ok {
		return false
	}

	return messageLevel >= currentLevel
}

// IsTerminal сообщает, подключен ли writer к терминалу
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
