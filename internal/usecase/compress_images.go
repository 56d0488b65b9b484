package usecases

import (
	"context"
	"fmt"
	"path/filepath"

	"compressimg/internal/domain/entities"
	"compressimg/internal/domain/repositories"
)

// CompressImagesUseCase сценарий сжатия списка изображений в выходную директорию
type CompressImagesUseCase struct {
	compressor       repositories.ImageCompressor
	fileRepo         repositories.FileRepository
	logger           repositories.Logger
	progressReporter func(done, total int, result *entities.CompressionResult)
}

// NewCompressImagesUseCase создает новый сценарий сжатия изображений
func NewCompressImagesUseCase(
	compressor repositories.ImageCompressor,
	fileRepo repositories.FileRepository,
	logger repositories.Logger,
) *CompressImagesUseCase {
	return &CompressImagesUseCase{
		compressor: compressor,
		fileRepo:   fileRepo,
		logger:     logger,
	}
}

// SetProgressReporter устанавливает функцию для отчета о прогрессе
func (uc *CompressImagesUseCase) SetProgressReporter(reporter func(done, total int, result *entities.CompressionResult)) {
	uc.progressReporter = reporter
}

// Execute создает выходную директорию и сжимает файлы по очереди.
// Обработка останавливается на первой ошибке, уже записанные файлы остаются.
func (uc *CompressImagesUseCase) Execute(ctx context.Context, opts *entities.Options) (*entities.BatchResult, error) {
	batch := entities.NewBatchResult()

	if err := opts.Validate(); err != nil {
		return batch, err
	}

	if err := uc.fileRepo.CreateDirectory(opts.OutDir); err != nil {
		return batch, entities.NewError(entities.KindFileSystem, fmt.Errorf("ошибка создания выходной директории %s: %w", opts.OutDir, err))
	}
	uc.logger.Debug("Выходная директория: %s", opts.OutDir)

	files, err := uc.fileRepo.ResolveInputs(opts.Inputs)
	if err != nil {
		return batch, err
	}
	if len(files) == 0 {
		return batch, entities.NewError(entities.KindUsage, entities.ErrNoInputFiles)
	}

	encodeOpts := opts.EncodeOptions()
	for i, inputPath := range files {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		outputPath := filepath.Join(opts.OutDir, filepath.Base(inputPath))
		result := uc.compressFile(ctx, inputPath, outputPath, encodeOpts)
		batch.AddResult(result)
		uc.reportProgress(i+1, len(files), result)

		if result.Error != nil {
			return batch, fmt.Errorf("%s: %w", inputPath, result.Error)
		}
	}

	return batch, nil
}

// compressFile сжимает один файл и собирает статистику по размерам
func (uc *CompressImagesUseCase) compressFile(ctx context.Context, inputPath, outputPath string, opts entities.EncodeOptions) *entities.CompressionResult {
	result := &entities.CompressionResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
	}

	original, err := uc.fileRepo.GetFileInfo(inputPath)
	if err != nil {
		result.Error = entities.NewError(entities.KindFileSystem, err)
		return result
	}
	result.OriginalSize = original.Size

	uc.logger.Debug("Сжатие изображения: %s -> %s", inputPath, outputPath)
	if err := uc.compressor.CompressJPEG(ctx, inputPath, outputPath, opts); err != nil {
		result.Error = entities.NewError(entities.KindEncode, err)
		return result
	}

	compressed, err := uc.fileRepo.GetFileInfo(outputPath)
	if err != nil {
		result.Error = entities.NewError(entities.KindFileSystem, err)
		return result
	}
	result.CompressedSize = compressed.Size
	result.Success = true
	result.CalculateCompressionRatio()

	if !result.IsEffective() {
		uc.logger.Warning("Размер не уменьшился: %s (%.1f%%)", inputPath, result.CompressionRatio)
	} else {
		uc.logger.Debug("Изображение сжато: %s (%.1f%%)", inputPath, result.CompressionRatio)
	}
	return result
}

// reportProgress отправляет обновление прогресса
func (uc *CompressImagesUseCase) reportProgress(done, total int, result *entities.CompressionResult) {
	if uc.progressReporter != nil {
		uc.progressReporter(done, total, result)
	}
}
