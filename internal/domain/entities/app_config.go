package entities

import "strings"

// Config представляет конфигурацию приложения
type Config struct {
	Compression AppCompressionConfig `yaml:"compression"`
	Output      OutputConfig         `yaml:"output"`
}

// AppCompressionConfig настройки сжатия по умолчанию.
// Флаги командной строки имеют приоритет.
type AppCompressionConfig struct {
	Quality   int    `yaml:"quality"`
	OutDir    string `yaml:"out_dir"`
	MaxWidth  uint   `yaml:"max_width"`
	MaxHeight uint   `yaml:"max_height"`
}

// OutputConfig настройки вывода
type OutputConfig struct {
	LogLevel    string `yaml:"log_level"`
	ProgressBar bool   `yaml:"progress_bar"`
	LogToFile   bool   `yaml:"log_to_file"`
	LogFileName string `yaml:"log_file_name"`
}

var logLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warning": true,
	"error":   true,
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Compression: AppCompressionConfig{
			Quality: DefaultQuality,
		},
		Output: OutputConfig{
			LogLevel:    "info",
			ProgressBar: true,
			LogToFile:   false,
			LogFileName: "compress-img.log",
		},
	}
}

// Validate проверяет корректность конфигурации приложения
func (c *Config) Validate() error {
	if c.Compression.Quality < MinQuality || c.Compression.Quality > MaxQuality {
		return NewError(KindConfig, ErrInvalidQuality)
	}
	if !logLevels[strings.ToLower(c.Output.LogLevel)] {
		return NewError(KindConfig, ErrInvalidLogLevel)
	}
	if c.Output.LogToFile && c.Output.LogFileName == "" {
		return NewError(KindConfig, ErrMissingLogFile)
	}
	return nil
}

// Options строит параметры запуска из конфигурации
func (c *Config) Options() *Options {
	return &Options{
		Quality:   c.Compression.Quality,
		OutDir:    c.Compression.OutDir,
		MaxWidth:  c.Compression.MaxWidth,
		MaxHeight: c.Compression.MaxHeight,
	}
}
