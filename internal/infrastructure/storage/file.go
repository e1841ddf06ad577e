package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
)

type FileStorage struct {
	file *os.File
}

func NewFileStorage(filepath string) (*FileStorage, error) {
	if filepath == "" {
		return &FileStorage{}, nil
	}

	file, err := os.OpenFile(filepath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	return &FileStorage{
		file: file,
	}, nil
}

func (fs *FileStorage) Backup(ctx context.Context, meta map[int64]map[string]string) error {
	if fs.file == nil {
		return nil
	}

	// Reset file
	err := fs.file.Truncate(0)
	if err != nil {
		return err
	}
	_, err = fs.file.Seek(0, 0)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(fs.file)

	return encoder.Encode(meta)
}

func (fs *FileStorage) Restore(ctx context.Context) (map[int64]map[string]string, error) {
	meta := make(map[int64]map[string]string)

	if fs.file == nil {
		return meta, nil
	}

	decoder := json.NewDecoder(fs.file)

	err := decoder.Decode(&meta)
	if errors.Is(err, io.EOF) {
		// Fresh backup file
		return meta, nil
	}

	return meta, err
}

func (fs *FileStorage) Close(ctx context.Context) error {
	if fs.file == nil {
		return nil
	}
	return fs.file.Close()
}
