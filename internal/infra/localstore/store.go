package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store файловое локальное хранилище коллекций записей.
// Выполняет роль резервного хранилища на устройстве: сюда попадают записи,
// созданные пока удаленная БД недоступна.
//
// Формат файла: JSON-объект вида {"имя_коллекции": [запись, ...], ...}.
// Записи хранятся как сырой JSON, типизацию выполняет вызывающая сторона.
type Store struct {
	mu   sync.RWMutex
	path string
}

// NewStore создает хранилище с данными в указанном файле.
// Файл создается лениво при первой записи.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// ReadCollection декодирует коллекцию name в dest (указатель на слайс).
// Чтение никогда не возвращает ошибку: отсутствующий, пустой или поврежденный
// файл трактуется как пустая коллекция, dest при этом не изменяется.
func (s *Store) ReadCollection(name string, dest interface{}) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collections, err := s.load()
	if err != nil {
		return
	}

	raw, ok := collections[name]
	if !ok {
		return
	}

	// Поврежденную коллекцию тоже считаем пустой
	_ = json.Unmarshal(raw, dest)
}

// WriteCollection заменяет коллекцию name сериализованным records.
// Файл переписывается атомарно через временный файл и rename.
func (s *Store) WriteCollection(name string, records interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: collection %q: %v", ErrEncode, name, err)
	}

	collections, loadErr := s.load()
	if loadErr != nil {
		// Нечитаемый файл не должен блокировать запись в деградированном
		// режиме - начинаем с пустого набора коллекций
		collections = map[string]json.RawMessage{}
	}
	collections[name] = encoded

	data, err := json.MarshalIndent(collections, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	return nil
}

// load читает и парсит файл хранилища
func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	collections := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &collections); err != nil {
		return nil, err
	}

	return collections, nil
}
