package compressors

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"compressimg/internal/domain/entities"
	"compressimg/internal/domain/repositories"

	"github.com/nfnt/resize"
)

// jpegSignature первые байты любого JPEG файла (SOI + начало маркера)
var jpegSignature = []byte{0xFF, 0xD8, 0xFF}

// JPEGCompressor компрессор JPEG на стандартном кодировщике
type JPEGCompressor struct{}

var _ repositories.ImageCompressor = (*JPEGCompressor)(nil)

// NewImageCompressor создает новый компрессор изображений
func NewImageCompressor() *JPEGCompressor {
	return &JPEGCompressor{}
}

// CompressJPEG перекодирует JPEG файл с указанным качеством.
// Файлы, не являющиеся JPEG, записываются в outputPath без изменений.
func (c *JPEGCompressor) CompressJPEG(ctx context.Context, inputPath, outputPath string, opts entities.EncodeOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return entities.NewError(entities.KindFileSystem, fmt.Errorf("не удалось прочитать файл %s: %w", inputPath, err))
	}

	if !IsJPEG(data) {
		return writeAtomic(outputPath, data)
	}

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		return entities.NewError(entities.KindEncode, fmt.Errorf("не удалось декодировать JPEG файл %s: %w", inputPath, err))
	}

	img = fitWithin(img, opts.MaxWidth, opts.MaxHeight)

	var buf bytes.Buffer
	buf.Grow(len(data))
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return entities.NewError(entities.KindEncode, fmt.Errorf("не удалось закодировать JPEG %s: %w", inputPath, err))
	}

	return writeAtomic(outputPath, buf.Bytes())
}

// IsJPEG проверяет сигнатуру JPEG
func IsJPEG(data []byte) bool {
	return bytes.HasPrefix(data, jpegSignature)
}

// fitWithin уменьшает изображение так, чтобы оно поместилось в maxWidth x maxHeight.
// Нулевая граница означает отсутствие ограничения, увеличение не выполняется.
func fitWithin(img image.Image, maxWidth, maxHeight uint) image.Image {
	if maxWidth == 0 && maxHeight == 0 {
		return img
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if maxWidth == 0 {
		maxWidth = width
	}
	if maxHeight == 0 {
		maxHeight = height
	}
	if width <= maxWidth && height <= maxHeight {
		return img
	}

	return resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)
}

// writeAtomic пишет данные во временный файл и переименовывает его в outputPath
func writeAtomic(outputPath string, data []byte) error {
	tmpPath := outputPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		os.Remove(tmpPath)
		return entities.NewError(entities.KindFileSystem, fmt.Errorf("не удалось создать временный файл: %w", err))
	}

	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return entities.NewError(entities.KindFileSystem, fmt.Errorf("не удалось переименовать временный файл: %w", err))
	}

	return nil
}
