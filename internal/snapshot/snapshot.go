// Package snapshot serves the catalogue from a gzipped JSON export instead of
// a live database. Snapshots are read from local disk or S3.
package snapshot

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"marketplace-catalog/internal/model"
)

// Snapshot is a point-in-time export of the catalogue collections.
type Snapshot struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Products    []model.Product `json:"products"`
	Sellers     []model.Seller  `json:"sellers"`
	Orders      []model.Order   `json:"orders"`
}

// Loader defines the interface for loading snapshot files.
type Loader interface {
	// Load reads a gzipped snapshot file and decodes it.
	Load(ctx context.Context, filePath string) (*Snapshot, error)
}

// Decode reads a gzipped JSON snapshot from r.
func Decode(ctx context.Context, r io.Reader) (*Snapshot, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := json.NewDecoder(gzipReader).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return &snap, nil
}

// Encode writes snap to w as gzipped JSON.
func Encode(w io.Writer, snap *Snapshot) error {
	gzipWriter := gzip.NewWriter(w)

	if err := json.NewEncoder(gzipWriter).Encode(snap); err != nil {
		gzipWriter.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}

	return nil
}
