package entities

// Значения по умолчанию
const (
	DefaultQuality = 50
	MinQuality     = 0
	MaxQuality     = 100
)

// Options параметры одного запуска.
// Собираются один раз из флагов и конфигурации и дальше не меняются.
type Options struct {
	Quality   int
	OutDir    string
	Inputs    []string
	MaxWidth  uint // 0 - без ограничения
	MaxHeight uint // 0 - без ограничения
}

// EncodeOptions параметры, передаваемые кодировщику
type EncodeOptions struct {
	Quality   int
	MaxWidth  uint
	MaxHeight uint
}

// Validate проверяет корректность параметров запуска
func (o *Options) Validate() error {
	if o.Quality < MinQuality || o.Quality > MaxQuality {
		return NewError(KindUsage, ErrInvalidQuality)
	}
	if o.OutDir == "" {
		return NewError(KindUsage, ErrMissingOutDir)
	}
	if len(o.Inputs) == 0 {
		return NewError(KindUsage, ErrNoInputFiles)
	}
	return nil
}

// EncodeOptions возвращает параметры кодировщика. Качество передается без изменений.
func (o *Options) EncodeOptions() EncodeOptions {
	return EncodeOptions{
		Quality:   o.Quality,
		MaxWidth:  o.MaxWidth,
		MaxHeight: o.MaxHeight,
	}
}
