package main

import (
	"context"
	"time"

	"compressimg/internal/domain/entities"
	"compressimg/internal/domain/repositories"
	"compressimg/internal/infrastructure/logging"
	infraRepos "compressimg/internal/infrastructure/repositories"
	usecases "compressimg/internal/usecase"

	"github.com/schollz/progressbar/v3"
)

// ApplicationProcessor связывает сценарий сжатия с логированием и прогрессом
type ApplicationProcessor struct {
	useCase    *usecases.CompressImagesUseCase
	logger     repositories.Logger
	fileLogger *logging.FileLogger
	env        *appEnv
	bar        *progressbar.ProgressBar
}

// newApplicationProcessor создает процессор приложения по конфигурации
func newApplicationProcessor(env *appEnv, cfg *entities.Config) (*ApplicationProcessor, error) {
	// Консольный логгер всегда, файловый - если включен в конфигурации
	loggers := []repositories.Logger{logging.NewConsoleLogger(env.stderr, cfg.Output.LogLevel)}
	fileLogger, err := logging.NewFileLogger(cfg.Output.LogFileName, cfg.Output.LogLevel, cfg.Output.LogToFile)
	if err != nil {
		return nil, entities.NewError(entities.KindFileSystem, err)
	}
	if fileLogger != nil {
		loggers = append(loggers, fileLogger)
	}
	logger := logging.NewMultiLogger(loggers...)

	p := &ApplicationProcessor{
		useCase:    usecases.NewCompressImagesUseCase(env.compressor, infraRepos.NewFileSystemRepository(), logger),
		logger:     logger,
		fileLogger: fileLogger,
		env:        env,
	}

	if cfg.Output.ProgressBar && logging.IsTerminal(env.stderr) {
		p.useCase.SetProgressReporter(p.reportProgress)
	}

	return p, nil
}

// Run выполняет сжатие и пишет статус в лог
func (p *ApplicationProcessor) Run(ctx context.Context, opts *entities.Options) (*entities.BatchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if p.fileLogger != nil {
		p.logger.Debug("Идентификатор запуска: %s", p.fileLogger.RunID())
	}
	p.logger.Info("Качество: %d, выходная директория: %s, файлы: %v", opts.Quality, opts.OutDir, opts.Inputs)
	p.logger.Info("Сжатие изображений...")

	batch, err := p.useCase.Execute(ctx, opts)
	if p.bar != nil {
		_ = p.bar.Finish()
	}
	if err != nil {
		// В консоль ошибку печатает execute, здесь она нужна только файлу лога
		if p.fileLogger != nil {
			p.fileLogger.Error("Сжатие прервано [%s]: %v", entities.Category(err), err)
		}
		return batch, err
	}

	p.logger.Success("Сжатие завершено: %d файлов за %s", batch.SuccessfulFiles(), batch.ElapsedTime.Round(time.Millisecond))
	return batch, nil
}

// Close закрывает логгеры
func (p *ApplicationProcessor) Close() error {
	return p.logger.Close()
}

// reportProgress обновляет индикатор прогресса в терминале
func (p *ApplicationProcessor) reportProgress(done, total int, _ *entities.CompressionResult) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.env.stderr),
			progressbar.OptionSetDescription("Сжатие"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
}
