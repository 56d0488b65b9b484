package main

import (
	"compressimg/internal/domain/entities"
	"compressimg/internal/domain/repositories"
	"compressimg/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

// resolveOptions собирает параметры запуска: значения по умолчанию,
// затем файл конфигурации, затем явно указанные флаги.
// Возвращаемая конфигурация уже содержит значения флагов.
func resolveOptions(cmd *cobra.Command, flags *cliFlags, args []string, repo repositories.AppConfigRepository) (*entities.Options, *entities.Config, error) {
	var (
		cfg *entities.Config
		err error
	)
	if flags.configPath != "" {
		cfg, err = repo.LoadExplicit(flags.configPath)
	} else {
		cfg, err = repo.Load(config.DefaultPath)
	}
	if err != nil {
		return nil, nil, err
	}

	if flags.verbose {
		cfg.Output.LogLevel = "debug"
	}
	if flags.noProgress {
		cfg.Output.ProgressBar = false
	}

	changed := cmd.Flags().Changed
	if changed("quality") {
		cfg.Compression.Quality = flags.quality
	}
	if changed("outDir") {
		cfg.Compression.OutDir = flags.outDir
	}
	if changed("max-width") {
		cfg.Compression.MaxWidth = flags.maxWidth
	}
	if changed("max-height") {
		cfg.Compression.MaxHeight = flags.maxHeight
	}

	opts := cfg.Options()
	opts.Inputs = flags.inputs.merge(args)

	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	return opts, cfg, nil
}
