package entities

import "errors"

// Доменные ошибки
var (
	ErrInvalidQuality  = errors.New("качество должно быть от 0 до 100")
	ErrMissingOutDir   = errors.New("не указана выходная директория (-o, --outDir)")
	ErrNoInputFiles    = errors.New("не указаны входные файлы")
	ErrFileNotFound    = errors.New("файл не найден")
	ErrNotAFile        = errors.New("путь указывает на директорию, а не на файл")
	ErrNoMatches       = errors.New("шаблон не совпал ни с одним файлом")
	ErrConfigNotFound  = errors.New("файл конфигурации не найден")
	ErrInvalidLogLevel = errors.New("уровень логирования должен быть debug, info, warning или error")
	ErrMissingLogFile  = errors.New("не указано имя файла лога")
)

// ErrorKind категория ошибки, которая показывается пользователю
type ErrorKind string

const (
	KindUsage      ErrorKind = "UsageError"
	KindFileSystem ErrorKind = "FileSystemError"
	KindEncode     ErrorKind = "EncodeError"
	KindConfig     ErrorKind = "ConfigError"
	KindUnknown    ErrorKind = "Error"
)

// Error ошибка с категорией
type Error struct {
	Kind ErrorKind
	Err  error
}

// NewError оборачивает ошибку в категорию.
// Уже категоризированная ошибка возвращается как есть.
func NewError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	var categorized *Error
	if errors.As(err, &categorized) {
		return err
	}
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Category возвращает название категории ошибки
func Category(err error) ErrorKind {
	var categorized *Error
	if errors.As(err, &categorized) {
		return categorized.Kind
	}
	return KindUnknown
}
