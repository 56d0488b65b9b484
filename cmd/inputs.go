package main

import (
	"strings"

	"github.com/spf13/pflag"
)

// inputEntry значение -i/--input и число позиционных аргументов, прочитанных до него
type inputEntry struct {
	value  string
	before int
}

// inputList значение флага -i/--input, которое помнит свое место в командной строке.
// pflag разбирает аргументы по порядку, поэтому в момент Set длина Args()
// равна числу уже встреченных позиционных аргументов.
type inputList struct {
	flags   *pflag.FlagSet
	entries []inputEntry
}

func newInputList(flags *pflag.FlagSet) *inputList {
	return &inputList{flags: flags}
}

func (l *inputList) String() string {
	values := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		values = append(values, e.value)
	}
	return "[" + strings.Join(values, ",") + "]"
}

func (l *inputList) Set(value string) error {
	l.entries = append(l.entries, inputEntry{value: value, before: len(l.flags.Args())})
	return nil
}

func (l *inputList) Type() string {
	return "file"
}

// merge возвращает входные файлы в порядке командной строки
func (l *inputList) merge(positional []string) []string {
	inputs := make([]string, 0, len(l.entries)+len(positional))
	next := 0
	for i := 0; i <= len(positional); i++ {
		for next < len(l.entries) && l.entries[next].before <= i {
			inputs = append(inputs, l.entries[next].value)
			next++
		}
		if i < len(positional) {
			inputs = append(inputs, positional[i])
		}
	}
	return inputs
}
