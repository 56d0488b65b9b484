package entities_test

import (
	"errors"
	"testing"

	"compressimg/internal/domain/entities"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		options entities.Options
		wantErr error
	}{
		{
			name:    "Valid options",
			options: entities.Options{Quality: 50, OutDir: "out", Inputs: []string{"a.jpg"}},
		},
		{
			name:    "Minimum quality",
			options: entities.Options{Quality: 0, OutDir: "out", Inputs: []string{"a.jpg"}},
		},
		{
			name:    "Maximum quality",
			options: entities.Options{Quality: 100, OutDir: "out", Inputs: []string{"a.jpg"}},
		},
		{
			name:    "Quality too low",
			options: entities.Options{Quality: -1, OutDir: "out", Inputs: []string{"a.jpg"}},
			wantErr: entities.ErrInvalidQuality,
		},
		{
			name:    "Quality too high",
			options: entities.Options{Quality: 101, OutDir: "out", Inputs: []string{"a.jpg"}},
			wantErr: entities.ErrInvalidQuality,
		},
		{
			name:    "Missing output directory",
			options: entities.Options{Quality: 50, Inputs: []string{"a.jpg"}},
			wantErr: entities.ErrMissingOutDir,
		},
		{
			name:    "No inputs",
			options: entities.Options{Quality: 50, OutDir: "out"},
			wantErr: entities.ErrNoInputFiles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.options.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if kind := entities.Category(err); kind != entities.KindUsage {
				t.Errorf("Expected category %s, got %s", entities.KindUsage, kind)
			}
		})
	}
}

func TestOptions_EncodeOptionsKeepsQuality(t *testing.T) {
	for _, quality := range []int{0, 1, 37, 50, 99, 100} {
		opts := entities.Options{Quality: quality, MaxWidth: 800, MaxHeight: 600}
		enc := opts.EncodeOptions()
		if enc.Quality != quality {
			t.Errorf("Expected quality %d, got %d", quality, enc.Quality)
		}
		if enc.MaxWidth != 800 || enc.MaxHeight != 600 {
			t.Errorf("Expected bounds 800x600, got %dx%d", enc.MaxWidth, enc.MaxHeight)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *entities.Config)
		wantErr error
	}{
		{"Default config", func(c *entities.Config) {}, nil},
		{"Invalid quality", func(c *entities.Config) { c.Compression.Quality = 150 }, entities.ErrInvalidQuality},
		{"Invalid log level", func(c *entities.Config) { c.Output.LogLevel = "trace" }, entities.ErrInvalidLogLevel},
		{"Upper case log level", func(c *entities.Config) { c.Output.LogLevel = "DEBUG" }, nil},
		{"Log file without name", func(c *entities.Config) {
			c.Output.LogToFile = true
			c.Output.LogFileName = ""
		}, entities.ErrMissingLogFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := entities.DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && entities.Category(err) != entities.KindConfig {
				t.Errorf("Expected category %s, got %s", entities.KindConfig, entities.Category(err))
			}
		})
	}
}
