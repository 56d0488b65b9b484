package main

import (
	"fmt"
	"path/filepath"
	"time"

	"compressimg/internal/domain/entities"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderSummary строит итоговую таблицу по обработанным файлам
func renderSummary(batch *entities.BatchResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Файл", "Исходный", "Сжатый", "Экономия", "%"})

	for _, r := range batch.Results {
		tw.AppendRow(table.Row{
			filepath.Base(r.OutputPath),
			formatSize(r.OriginalSize),
			formatSize(r.CompressedSize),
			formatSize(r.SavedSpace),
			fmt.Sprintf("%.1f%%", r.CompressionRatio),
		})
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("Всего: %d", batch.SuccessfulFiles()),
		formatSize(batch.TotalOriginalSize),
		formatSize(batch.TotalCompressedSize),
		formatSize(batch.TotalSavedSpace()),
		fmt.Sprintf("%.1f%%", batch.AverageCompression),
	})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	tw.SetCaption("Время: %s", batch.ElapsedTime.Round(time.Millisecond))

	return tw.Render()
}

func formatSize(size int64) string {
	if size < 0 {
		return "-" + humanize.Bytes(uint64(-size))
	}
	return humanize.Bytes(uint64(size))
}
