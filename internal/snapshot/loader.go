package snapshot

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for snapshot files on local disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based snapshot loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "snapshot-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context, filePath string) (*Snapshot, error) {
	l.logger.Info().Str("file", filePath).Msg("loading snapshot file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open snapshot file")
		return nil, fmt.Errorf("failed to open snapshot file %s: %w", filePath, err)
	}
	defer file.Close()

	snap, err := Decode(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read snapshot file")
		return nil, fmt.Errorf("failed to read snapshot file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products", len(snap.Products)).
		Int("sellers", len(snap.Sellers)).
		Int("orders", len(snap.Orders)).
		Msg("snapshot file loaded successfully")

	return snap, nil
}
