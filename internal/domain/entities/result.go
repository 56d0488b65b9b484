package entities

import (
	"time"
)

// ImageFile представляет файл изображения на диске
type ImageFile struct {
	Path         string
	Size         int64
	ModifiedTime time.Time
}

// CompressionResult представляет результат сжатия одного файла
type CompressionResult struct {
	InputPath        string
	OutputPath       string
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64
	SavedSpace       int64
	Success          bool
	Error            error
}

// CalculateCompressionRatio вычисляет коэффициент сжатия
func (cr *CompressionResult) CalculateCompressionRatio() {
	if cr.OriginalSize > 0 {
		cr.CompressionRatio = ((float64(cr.OriginalSize) - float64(cr.CompressedSize)) / float64(cr.OriginalSize)) * 100
		cr.SavedSpace = cr.OriginalSize - cr.CompressedSize
	}
}

// IsEffective проверяет, было ли сжатие эффективным
func (cr *CompressionResult) IsEffective() bool {
	return cr.Success && cr.CompressionRatio > 0
}

// BatchResult результат обработки всего списка файлов
type BatchResult struct {
	Results             []*CompressionResult
	TotalOriginalSize   int64
	TotalCompressedSize int64
	AverageCompression  float64
	StartTime           time.Time
	ElapsedTime         time.Duration
}

// NewBatchResult создает пустой результат обработки
func NewBatchResult() *BatchResult {
	return &BatchResult{
		Results:   make([]*CompressionResult, 0),
		StartTime: time.Now(),
	}
}

// AddResult добавляет результат обработки файла
func (br *BatchResult) AddResult(result *CompressionResult) {
	br.Results = append(br.Results, result)
	br.ElapsedTime = time.Since(br.StartTime)

	if !result.Success || result.Error != nil {
		return
	}

	br.TotalOriginalSize += result.OriginalSize
	br.TotalCompressedSize += result.CompressedSize

	// Пересчитываем среднее сжатие
	if br.TotalOriginalSize > 0 {
		br.AverageCompression = ((float64(br.TotalOriginalSize) - float64(br.TotalCompressedSize)) / float64(br.TotalOriginalSize)) * 100
	}
}

// SuccessfulFiles возвращает количество успешно сжатых файлов
func (br *BatchResult) SuccessfulFiles() int {
	count := 0
	for _, r := range br.Results {
		if r.Success && r.Error == nil {
			count++
		}
	}
	return count
}

// TotalSavedSpace возвращает суммарно сэкономленное место
func (br *BatchResult) TotalSavedSpace() int64 {
	return br.TotalOriginalSize - br.TotalCompressedSize
}
