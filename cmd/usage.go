package main

import (
	"fmt"
	"io"
	"strings"

	"compressimg/internal/infrastructure/logging"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// usageOption описание параметра в справке
type usageOption struct {
	name         string
	alias        string
	typeLabel    string
	description  string
	defaultValue string
}

var usageOptions = []usageOption{
	{
		name:         "quality",
		alias:        "q",
		typeLabel:    "int",
		description:  "Качество результата. 0-100",
		defaultValue: "50",
	},
	{
		name:        "outDir",
		alias:       "o",
		typeLabel:   "dir",
		description: "Сохранять сжатые файлы в эту директорию",
	},
	{
		name:        "input",
		alias:       "i",
		typeLabel:   "file",
		description: `Входные файлы. Можно указывать несколько раз. Поддерживаются шаблоны вроде "images/*.jpg".`,
	},
	{
		name:        "config",
		alias:       "c",
		typeLabel:   "file",
		description: "Файл конфигурации YAML (по умолчанию compress-img.yaml, если существует)",
	},
	{
		name:        "save-config",
		typeLabel:   "file",
		description: "Сохранить итоговые настройки в файл YAML",
	},
	{
		name:         "max-width",
		typeLabel:    "px",
		description:  "Уменьшать изображения шире заданного значения",
		defaultValue: "0",
	},
	{
		name:         "max-height",
		typeLabel:    "px",
		description:  "Уменьшать изображения выше заданного значения",
		defaultValue: "0",
	},
	{
		name:        "verbose",
		alias:       "v",
		description: "Отладочный вывод",
	},
	{
		name:        "no-progress",
		description: "Не показывать индикатор прогресса",
	},
	{
		name:        "help",
		alias:       "h",
		description: "Показать эту справку",
	},
}

// printUsage печатает справку, с оформлением если вывод идет в терминал
func printUsage(w io.Writer) {
	fmt.Fprintln(w, renderUsage(logging.IsTerminal(w)))
}

func renderUsage(colorize bool) string {
	header := func(s string) string {
		if colorize {
			return text.Colors{text.Bold, text.Underline}.Sprint(s)
		}
		return s
	}
	label := func(s string) string {
		if colorize {
			return text.Underline.Sprint(s)
		}
		return s
	}

	var b strings.Builder
	b.WriteString("\n" + header("Инструмент сжатия изображений") + "\n\n")
	b.WriteString("  Сжимает изображения. Сейчас поддерживается только JPEG на входе и на выходе.\n\n")
	b.WriteString(header("Использование") + "\n\n")
	b.WriteString("  compress-img [-q <quality>] -o <outDir> <inputFile>+\n\n")
	b.WriteString(header("Параметры") + "\n\n")

	tw := table.NewWriter()
	style := table.StyleDefault
	style.Options = table.OptionsNoBordersAndSeparators
	style.Box.PaddingLeft = "  "
	tw.SetStyle(style)

	for _, opt := range usageOptions {
		flag := "--" + opt.name
		if opt.alias != "" {
			flag = "-" + opt.alias + ", " + flag
		}
		if opt.typeLabel != "" {
			flag += " " + label(opt.typeLabel)
		}

		description := opt.description
		if opt.defaultValue != "" {
			description += fmt.Sprintf(" (по умолчанию: %s)", opt.defaultValue)
		}
		tw.AppendRow(table.Row{flag, description})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")

	return b.String()
}
