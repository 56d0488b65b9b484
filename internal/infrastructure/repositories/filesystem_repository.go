package repositories

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"compressimg/internal/domain/entities"
	domain "compressimg/internal/domain/repositories"
)

// FileSystemRepository реализация репозитория для работы с файловой системой
type FileSystemRepository struct{}

var _ domain.FileRepository = (*FileSystemRepository)(nil)

// NewFileSystemRepository создает новый репозиторий файловой системы
func NewFileSystemRepository() *FileSystemRepository {
	return &FileSystemRepository{}
}

// GetFileInfo получает информацию о файле изображения
func (r *FileSystemRepository) GetFileInfo(path string) (*entities.ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", entities.ErrNotAFile, path)
	}

	return &entities.ImageFile{
		Path:         path,
		Size:         info.Size(),
		ModifiedTime: info.ModTime(),
	}, nil
}

// FileExists проверяет существование файла. Путь, который не удалось прочитать, не существует.
func (r *FileSystemRepository) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CreateDirectory создает директорию вместе с родительскими
func (r *FileSystemRepository) CreateDirectory(path string) error {
	return os.MkdirAll(path, 0755)
}

// ResolveInputs превращает список аргументов в список файлов с сохранением порядка.
// Существующий путь берется как есть. Несуществующий путь с метасимволами
// раскрывается как шаблон: так работают аргументы в кавычках вроде "images/*.jpg".
func (r *FileSystemRepository) ResolveInputs(inputs []string) ([]string, error) {
	var files []string

	for _, input := range inputs {
		info, err := os.Stat(input)
		switch {
		case err == nil:
			if info.IsDir() {
				return nil, entities.NewError(entities.KindFileSystem, fmt.Errorf("%w: %s", entities.ErrNotAFile, input))
			}
			files = append(files, input)
			continue
		case !os.IsNotExist(err) && !hasGlobMeta(input):
			return nil, entities.NewError(entities.KindFileSystem, err)
		}

		if !hasGlobMeta(input) {
			return nil, entities.NewError(entities.KindFileSystem, fmt.Errorf("%w: %s", entities.ErrFileNotFound, input))
		}

		matches, err := filepath.Glob(input)
		if err != nil {
			return nil, entities.NewError(entities.KindUsage, fmt.Errorf("некорректный шаблон %s: %w", input, err))
		}

		var matchedFiles []string
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			matchedFiles = append(matchedFiles, match)
		}
		if len(matchedFiles) == 0 {
			return nil, entities.NewError(entities.KindFileSystem, fmt.Errorf("%w: %s", entities.ErrNoMatches, input))
		}

		sort.Strings(matchedFiles)
		files = append(files, matchedFiles...)
	}

	return files, nil
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, `*?[`)
}
