package storage

import (
	"context"
	"mime"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryFile struct {
	data []byte
	meta FileMetadata
}

// MemoryFileStorage keeps files in process memory. It backs tests and
// deployments that do not archive documents.
type MemoryFileStorage struct {
	mu    sync.RWMutex
	files map[string]memoryFile

	// FailNext makes the next n operations fail with a retryable error
	FailNext int
}

// NewMemoryFileStorage creates an empty in-memory storage
func NewMemoryFileStorage() *MemoryFileStorage {
	return &MemoryFileStorage{files: make(map[string]memoryFile)}
}

func (m *MemoryFileStorage) injectedFailure(op, key string) error {
	if m.FailNext > 0 {
		m.FailNext--
		return NewStorageError(op, key, errTemporary, true)
	}
	return nil
}

// Store implements FileStorage.Store
func (m *MemoryFileStorage) Store(ctx context.Context, key string, data []byte, opts *StoreOptions) error {
	if err := validateKey(key); err != nil {
		return NewStorageError("Store", key, err, false)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injectedFailure("Store", key); err != nil {
		return err
	}
	if _, ok := m.files[key]; ok && opts != nil && !opts.Overwrite {
		return NewStorageError("Store", key, ErrFileAlreadyExists, false)
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if opts != nil && opts.ContentType != "" {
		contentType = opts.ContentType
	}

	copied := append([]byte(nil), data...)
	m.files[key] = memoryFile{
		data: copied,
		meta: FileMetadata{
			Key:          key,
			Size:         int64(len(copied)),
			ContentType:  contentType,
			LastModified: time.Now(),
		},
	}
	return nil
}

// Retrieve implements FileStorage.Retrieve
func (m *MemoryFileStorage) Retrieve(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.injectedFailure("Retrieve", key); err != nil {
		return nil, err
	}
	f, ok := m.files[key]
	if !ok {
		return nil, NewStorageError("Retrieve", key, ErrFileNotFound, false)
	}
	return append([]byte(nil), f.data...), nil
}

// Delete implements FileStorage.Delete
func (m *MemoryFileStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[key]; !ok {
		return NewStorageError("Delete", key, ErrFileNotFound, false)
	}
	delete(m.files, key)
	return nil
}

// Exists implements FileStorage.Exists
func (m *MemoryFileStorage) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[key]
	return ok, nil
}

// List implements FileStorage.List
func (m *MemoryFileStorage) List(ctx context.Context, prefix string) ([]FileMetadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := []FileMetadata{}
	for key, f := range m.files {
		if strings.HasPrefix(key, prefix) {
			files = append(files, f.meta)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Key < files[j].Key })
	return files, nil
}
