package main

import (
	"fmt"
	"io"

	"compressimg/internal/domain/entities"
	"compressimg/internal/domain/repositories"

	"github.com/spf13/cobra"
)

// appEnv внешние зависимости команды
type appEnv struct {
	stdout     io.Writer
	stderr     io.Writer
	compressor repositories.ImageCompressor
	configRepo repositories.AppConfigRepository
}

// cliFlags значения флагов командной строки
type cliFlags struct {
	quality    int
	outDir     string
	inputs     *inputList
	configPath string
	saveConfig string
	maxWidth   uint
	maxHeight  uint
	verbose    bool
	noProgress bool
}

// execute запускает команду и возвращает код выхода.
// Любая ошибка печатается как "[Категория]: сообщение", после чего выводится справка.
func execute(args []string, env *appEnv) int {
	cmd := newRootCommand(env)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(env.stderr, "[%s]: %s\n", entities.Category(err), err)
		printUsage(env.stdout)
		return 1
	}
	return 0
}

func newRootCommand(env *appEnv) *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:           "compress-img [-q <quality>] -o <outDir> <inputFile>+",
		Short:         "Сжатие JPEG изображений",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := resolveOptions(cmd, flags, args, env.configRepo)
			if err != nil {
				return err
			}

			if flags.saveConfig != "" {
				if err := env.configRepo.Save(flags.saveConfig, cfg); err != nil {
					return entities.NewError(entities.KindConfig, fmt.Errorf("не удалось сохранить конфигурацию %s: %w", flags.saveConfig, err))
				}
			}

			processor, err := newApplicationProcessor(env, cfg)
			if err != nil {
				return err
			}
			defer processor.Close()

			batch, err := processor.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(env.stdout, renderSummary(batch))
			return nil
		},
	}

	rootCmd.SetOut(env.stdout)
	rootCmd.SetErr(env.stderr)

	f := rootCmd.Flags()
	f.SortFlags = false
	f.IntVarP(&flags.quality, "quality", "q", entities.DefaultQuality, "Качество результата, 0-100")
	f.StringVarP(&flags.outDir, "outDir", "o", "", "Директория для сжатых файлов")
	flags.inputs = newInputList(f)
	f.VarP(flags.inputs, "input", "i", "Входные файлы изображений")
	f.StringVarP(&flags.configPath, "config", "c", "", "Путь к файлу конфигурации")
	f.StringVar(&flags.saveConfig, "save-config", "", "Сохранить итоговые настройки в файл")
	f.UintVar(&flags.maxWidth, "max-width", 0, "Уменьшать изображения шире заданного")
	f.UintVar(&flags.maxHeight, "max-height", 0, "Уменьшать изображения выше заданного")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Отладочный вывод")
	f.BoolVar(&flags.noProgress, "no-progress", false, "Не показывать индикатор прогресса")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		printUsage(cmd.OutOrStdout())
	})
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return entities.NewError(entities.KindUsage, err)
	})

	return rootCmd
}
