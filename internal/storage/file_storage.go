package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileStorage keeps the store in a TOML file. Writes rewrite the whole file
// while holding a lock directory next to it.
type FileStorage struct {
	path string
}

// NewFileStorage returns a store backed by the TOML file at path. The file is
// created on the first write.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("file storage: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return nil, fmt.Errorf("file storage: create directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

// Path returns the backing file.
func (fs *FileStorage) Path() string { return fs.path }

func (fs *FileStorage) lockDir() string { return fs.path + ".lock" }

func (fs *FileStorage) read() (map[string]string, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file storage: read: %w", err)
	}
	values := map[string]string{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("file storage: parse %s: %w", fs.path, err)
	}
	return values, nil
}

func (fs *FileStorage) write(values map[string]string) error {
	data, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("file storage: encode: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, FileModeFile); err != nil {
		return fmt.Errorf("file storage: write: %w", err)
	}
	return os.Rename(tmp, fs.path)
}

func (fs *FileStorage) Get(key string) (string, bool, error) {
	values, err := fs.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (fs *FileStorage) Set(key, value string) error {
	return WithLock(fs.lockDir(), func() error {
		values, err := fs.read()
		if err != nil {
			return err
		}
		values[key] = value
		return fs.write(values)
	})
}

func (fs *FileStorage) Delete(key string) error {
	return WithLock(fs.lockDir(), func() error {
		values, err := fs.read()
		if err != nil {
			return err
		}
		if _, ok := values[key]; !ok {
			return nil
		}
		delete(values, key)
		return fs.write(values)
	})
}

func (fs *FileStorage) Close() error { return nil }
