// Package storage keeps generated documents such as invoice PDFs.
package storage

import (
	"context"
	"time"
)

// FileMetadata describes a stored document
type FileMetadata struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
}

// StoreOptions provides options for storing files
type StoreOptions struct {
	ContentType string `json:"content_type,omitempty"`
	Overwrite   bool   `json:"overwrite,omitempty"`
}

// FileStorage stores documents under slash separated keys such as "invoices/<id>.pdf"
type FileStorage interface {
	// Store saves data under key
	Store(ctx context.Context, key string, data []byte, opts *StoreOptions) error

	// Retrieve gets a file by its storage key
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes a file by its storage key
	Delete(ctx context.Context, key string) error

	// Exists checks if a file exists at the given key
	Exists(ctx context.Context, key string) (bool, error)

	// List returns metadata of files whose key starts with prefix, sorted by key
	List(ctx context.Context, prefix string) ([]FileMetadata, error)
}

// StorageConfig represents configuration for storage providers
type StorageConfig struct {
	Type     string // "local" or "memory"
	BasePath string // For local storage
}
