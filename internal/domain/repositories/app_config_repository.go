package repositories

import "compressimg/internal/domain/entities"

// AppConfigRepository интерфейс для работы с конфигурацией приложения
type AppConfigRepository interface {
	// Load возвращает значения по умолчанию, если файла нет
	Load(configPath string) (*entities.Config, error)
	// LoadExplicit считает отсутствие файла ошибкой
	LoadExplicit(configPath string) (*entities.Config, error)
	Save(configPath string, config *entities.Config) error
}
