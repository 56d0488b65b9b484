package config

import (
	"fmt"
	"os"

	"compressimg/internal/domain/entities"
	"compressimg/internal/domain/repositories"

	"gopkg.in/yaml.v3"
)

// DefaultPath файл конфигурации, который ищется в рабочей директории
const DefaultPath = "compress-img.yaml"

// Repository реализация репозитория конфигурации
type Repository struct{}

var _ repositories.AppConfigRepository = (*Repository)(nil)

// NewRepository создает новый репозиторий конфигурации
func NewRepository() *Repository {
	return &Repository{}
}

// Load загружает конфигурацию из файла.
// Незаданные в файле ключи сохраняют значения по умолчанию.
func (r *Repository) Load(configPath string) (*entities.Config, error) {
	config := entities.DefaultConfig()

	// Если файл не существует, используем конфигурацию по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, entities.NewError(entities.KindConfig, fmt.Errorf("не удалось прочитать конфигурацию %s: %w", configPath, err))
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, entities.NewError(entities.KindConfig, fmt.Errorf("не удалось разобрать конфигурацию %s: %w", configPath, err))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return config, nil
}

// LoadExplicit загружает конфигурацию, явно указанную пользователем.
// В отличие от Load, отсутствие файла считается ошибкой.
func (r *Repository) LoadExplicit(configPath string) (*entities.Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, entities.NewError(entities.KindConfig, fmt.Errorf("%w: %s", entities.ErrConfigNotFound, configPath))
	}
	return r.Load(configPath)
}

// Save сохраняет конфигурацию в файл
func (r *Repository) Save(configPath string, config *entities.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
