package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"compressimg/internal/domain/entities"
	"compressimg/internal/infrastructure/config"
)

func TestRepository_LoadMissingFileReturnsDefaults(t *testing.T) {
	repo := config.NewRepository()

	cfg, err := repo.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Compression.Quality != entities.DefaultQuality {
		t.Errorf("Expected default quality %d, got %d", entities.DefaultQuality, cfg.Compression.Quality)
	}
	if cfg.Output.LogLevel != "info" {
		t.Errorf("Expected log level info, got %s", cfg.Output.LogLevel)
	}
	if cfg.Output.LogToFile {
		t.Error("Expected file logging to be disabled by default")
	}
}

func TestRepository_LoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compress-img.yaml")
	content := "compression:\n  quality: 80\n  out_dir: ./small\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.NewRepository().Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Compression.Quality != 80 {
		t.Errorf("Expected quality 80, got %d", cfg.Compression.Quality)
	}
	if cfg.Compression.OutDir != "./small" {
		t.Errorf("Expected out dir ./small, got %s", cfg.Compression.OutDir)
	}
	if cfg.Output.LogLevel != "info" {
		t.Errorf("Expected default log level info, got %s", cfg.Output.LogLevel)
	}
	if !cfg.Output.ProgressBar {
		t.Error("Expected progress bar to stay enabled")
	}
}

func TestRepository_LoadInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Broken yaml", "compression: [quality"},
		{"Quality out of range", "compression:\n  quality: 250\n"},
		{"Unknown log level", "output:\n  log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "compress-img.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := config.NewRepository().Load(path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if entities.Category(err) != entities.KindConfig {
				t.Errorf("Expected category %s, got %s", entities.KindConfig, entities.Category(err))
			}
		})
	}
}

func TestRepository_LoadExplicitMissingFile(t *testing.T) {
	_, err := config.NewRepository().LoadExplicit(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, entities.ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestRepository_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compress-img.yaml")
	repo := config.NewRepository()

	cfg := entities.DefaultConfig()
	cfg.Compression.Quality = 35
	cfg.Compression.MaxWidth = 1920
	cfg.Output.LogLevel = "debug"

	if err := repo.Save(path, cfg); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := repo.Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if loaded.Compression.Quality != 35 || loaded.Compression.MaxWidth != 1920 || loaded.Output.LogLevel != "debug" {
		t.Errorf("Loaded config does not match saved one: %+v", loaded)
	}
}
