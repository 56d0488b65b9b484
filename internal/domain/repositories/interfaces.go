package repositories

import (
	"context"

	"compressimg/internal/domain/entities"
)

// ImageCompressor интерфейс для сжатия изображений.
// Реализация считается внешним кодировщиком: как именно сжимаются пиксели, здесь не важно.
type ImageCompressor interface {
	CompressJPEG(ctx context.Context, inputPath, outputPath string, opts entities.EncodeOptions) error
}

// FileRepository интерфейс для работы с файловой системой
type FileRepository interface {
	GetFileInfo(path string) (*entities.ImageFile, error)
	FileExists(path string) bool
	CreateDirectory(path string) error
	ResolveInputs(inputs []string) ([]string, error)
}
