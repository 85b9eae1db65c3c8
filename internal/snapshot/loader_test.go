package snapshot

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"marketplace-catalog/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() *Snapshot {
	generated := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return &Snapshot{
		GeneratedAt: generated,
		Products: []model.Product{
			{
				ID:         "P001",
				Name:       "Kopi Gayo",
				Price:      85000,
				Stock:      12,
				Currency:   model.CurrencyIDR,
				MarketType: model.MarketTypeDomestic,
				Location:   &model.Location{Region: "Sumatra", Subregion: "Aceh", City: "Takengon"},
				Labels:     []model.Label{"organic"},
				AccountID:  "acc-1",
			},
			{
				ID:         "P002",
				Name:       "Sambal Bawang",
				Price:      25000,
				Currency:   model.CurrencyIDR,
				MarketType: model.MarketTypeGlobal,
			},
		},
		Sellers: []model.Seller{
			{ID: "S1", AccountID: "acc-1", Name: "Gayo Roasters"},
		},
		Orders: []model.Order{
			{
				ID:          uuid.MustParse("7f1d2c44-5f0e-4b2a-9a51-0c8f3a6b2e11"),
				UserID:      "user-1",
				Cart:        []model.CartItem{{ProductID: "P001", Name: "Kopi Gayo", Price: 85000, Quantity: 1}},
				TotalAmount: 85000,
				Status:      model.OrderStatusPending,
				CreatedAt:   generated,
			},
		},
	}
}

// createTestSnapshotFile writes snap as a gzipped snapshot file.
func createTestSnapshotFile(t *testing.T, filename string, snap *Snapshot) string {
	filePath := filepath.Join(t.TempDir(), filename)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	require.NoError(t, Encode(file, snap))

	return filePath
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testSnapshot()))

	snap, err := Decode(context.Background(), &buf)

	require.NoError(t, err)
	require.Len(t, snap.Products, 2)
	assert.Equal(t, "Takengon", snap.Products[0].Location.City)
	assert.Nil(t, snap.Products[1].Location)
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, model.OrderStatusPending, snap.Orders[0].Status)
}

func TestDecode_InvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testSnapshot()))
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])

	snap, err := Decode(context.Background(), truncated)

	require.Error(t, err)
	assert.Nil(t, snap)
}

func TestFileLoader_Load_Success(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestSnapshotFile(t, "catalog.json.gz", testSnapshot())

	snap, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Len(t, snap.Products, 2)
	assert.Len(t, snap.Sellers, 1)
	assert.Len(t, snap.Orders, 1)
}

func TestFileLoader_Load_EmptySnapshot(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestSnapshotFile(t, "empty.json.gz", &Snapshot{})

	snap, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.Empty(t, snap.Products)
	assert.Empty(t, snap.Sellers)
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	snap, err := loader.Load(context.Background(), "/nonexistent/path/to/catalog.json.gz")

	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "failed to open snapshot file")
}

func TestFileLoader_Load_InvalidGzip(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := filepath.Join(t.TempDir(), "invalid.json.gz")
	require.NoError(t, os.WriteFile(filePath, []byte(`{"products":[]}`), 0644))

	snap, err := loader.Load(context.Background(), filePath)

	require.Error(t, err)
	assert.Nil(t, snap)
	assert.Contains(t, err.Error(), "failed to create gzip reader")
}

func TestFileLoader_Load_ContextCancellation(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestSnapshotFile(t, "catalog.json.gz", testSnapshot())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := loader.Load(ctx, filePath)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, snap)
}
