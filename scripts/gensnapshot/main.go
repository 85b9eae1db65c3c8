package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"marketplace-catalog/internal/model"
	"marketplace-catalog/internal/snapshot"

	"github.com/google/uuid"
)

// gensnapshot writes a small sample catalogue for local runs of the API in
// snapshot mode and for catalogctl.
func main() {
	out := flag.String("out", "data/catalog.json.gz", "output file")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	snap := sampleSnapshot(time.Now().UTC())

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer file.Close()

	if err := snapshot.Encode(file, snap); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}

	fmt.Printf("Created %s with %d products, %d sellers, %d orders\n",
		*out, len(snap.Products), len(snap.Sellers), len(snap.Orders))
	fmt.Println("\nExpected anomalies:")
	fmt.Println("  - P-900 has an unsupported currency and is excluded from every view")
	fmt.Println("  - P-006 and S-04 have no location and are only counted as unlocated")
}

func ptr[T any](v T) *T { return &v }

func sampleSnapshot(now time.Time) *snapshot.Snapshot {
	day := 24 * time.Hour

	takengon := &model.Location{Region: "Sumatra", Subregion: "Aceh", City: "Takengon"}
	medan := &model.Location{Region: "Sumatra", Subregion: "North Sumatra", City: "Medan"}
	solo := &model.Location{Region: "Java", Subregion: "Central Java", City: "Solo"}
	bandung := &model.Location{Region: "Java", Subregion: "West Java", City: "Bandung"}

	coffee := &model.Category{ID: "cat-coffee", Name: "Coffee", CreatedAt: now.Add(-90 * day)}
	textile := &model.Category{ID: "cat-textile", Name: "Textiles", CreatedAt: now.Add(-90 * day)}
	food := &model.Category{ID: "cat-food", Name: "Food", CreatedAt: now.Add(-90 * day)}

	gayo := model.Brand{ID: "brand-gayo", Name: "Gayo Highland", CreatedAt: now.Add(-60 * day)}
	danar := model.Brand{ID: "brand-danar", Name: "Danar Hadi", CreatedAt: now.Add(-60 * day)}

	review := func(id, account string, rating int) model.Review {
		return model.Review{ID: id, AccountID: account, Rating: rating, CreatedAt: now.Add(-3 * day)}
	}

	products := []model.Product{
		{
			ID: "P-001", Name: "Kopi Gayo Arabica 250g", Description: "Single origin arabica",
			Brands: []model.Brand{gayo}, Price: 85000, OriginalPrice: ptr(95000.0), Stock: 40,
			IsAvailable: true, Category: coffee, Tags: []string{"coffee", "arabica"},
			MarketID: "mkt-id", Location: takengon, Currency: model.CurrencyIDR,
			CreatedAt: now.Add(-30 * day), UpdatedAt: now.Add(-1 * day), Rating: 4.7,
			Reviews: []model.Review{review("R-1", "buyer-1", 5), review("R-2", "buyer-2", 4)},
			Labels: []model.Label{"organic", "bestseller"}, Discount: ptr(10.0),
			IsOnSale: true, IsBestSeller: true, IsActive: true,
			AccountID: "acc-kopi", MarketType: model.MarketTypeDomestic,
		},
		{
			ID: "P-002", Name: "Kopi Gayo Green Beans 1kg", Brands: []model.Brand{gayo},
			Price: 12, Stock: 3, IsAvailable: true, Category: coffee, Location: takengon,
			Currency: model.CurrencyUSD, CreatedAt: now.Add(-10 * day), UpdatedAt: now.Add(-10 * day),
			Rating: 4.2, Labels: []model.Label{"export"}, IsActive: true,
			AccountID: "acc-kopi", MarketType: model.MarketTypeGlobal,
		},
		{
			ID: "P-003", Name: "Batik Tulis Parang", Brands: []model.Brand{danar},
			Price: 450000, Stock: 0, IsAvailable: false, Category: textile, Location: solo,
			Currency: model.CurrencyIDR, CreatedAt: now.Add(-20 * day), UpdatedAt: now.Add(-2 * day),
			LastSoldAt: ptr(now.Add(-2 * day)), Rating: 4.9,
			Reviews: []model.Review{review("R-3", "buyer-3", 5)}, Labels: []model.Label{"handmade"},
			IsFeatured: true, IsActive: true, AccountID: "acc-batik", MarketType: model.MarketTypeDomestic,
		},
		{
			ID: "P-004", Name: "Bika Ambon", Price: 60000, Stock: 5, IsAvailable: true,
			Category: food, Location: medan, Currency: model.CurrencyIDR,
			CreatedAt: now.Add(-2 * day), UpdatedAt: now.Add(-2 * day), Rating: 4.4,
			IsNewArrival: true, IsActive: true, AccountID: "acc-medan", MarketType: model.MarketTypeDomestic,
		},
		{
			ID: "P-005", Name: "Keripik Tempe Bandung", Price: 15000, Stock: 120, IsAvailable: true,
			Category: food, Location: bandung, Currency: model.CurrencyIDR, Discount: ptr(2000.0),
			CreatedAt: now.Add(-5 * day), UpdatedAt: now.Add(-5 * day), Rating: 3.9,
			Labels: []model.Label{"snack"}, IsActive: true, AccountID: "acc-bdg", MarketType: model.MarketTypeDomestic,
		},
		{
			ID: "P-006", Name: "Gift Card", Price: 100000, Stock: 999, IsAvailable: true,
			Currency: model.CurrencyIDR, CreatedAt: now.Add(-1 * day), UpdatedAt: now.Add(-1 * day),
			IsActive: true, AccountID: "acc-kopi", MarketType: model.MarketTypeDomestic,
		},
		{
			ID: "P-900", Name: "Imported Cheese", Price: 20, Stock: 4, IsAvailable: true,
			Currency: "EUR", CreatedAt: now, UpdatedAt: now, AccountID: "acc-medan",
			MarketType: model.MarketTypeGlobal,
		},
	}

	sellers := []model.Seller{
		{ID: "S-01", AccountID: "acc-kopi", Name: "Toko Kopi Gayo", Rating: 4.6, Location: takengon, CreatedAt: now.Add(-200 * day)},
		{ID: "S-02", AccountID: "acc-batik", Name: "Batik Solo Asli", Rating: 4.8, Location: solo, CreatedAt: now.Add(-300 * day)},
		{ID: "S-03", AccountID: "acc-medan", Name: "Oleh-oleh Medan", Rating: 4.1, Location: medan, CreatedAt: now.Add(-100 * day)},
		{ID: "S-04", AccountID: "acc-bdg", Name: "Camilan Priangan", Rating: 3.8, CreatedAt: now.Add(-50 * day)},
	}

	orders := []model.Order{
		{
			ID:     uuid.New(),
			UserID: "buyer-1",
			Cart: []model.CartItem{
				{ProductID: "P-001", Name: "Kopi Gayo Arabica 250g", Price: 85000, Quantity: 2},
			},
			ShippingAddress: "Jl. Asia Afrika 8, Bandung",
			TotalAmount:     170000,
			Status:          model.OrderStatusShipped,
			CreatedAt:       now.Add(-4 * day),
		},
		{
			ID:     uuid.New(),
			UserID: "buyer-3",
			Cart: []model.CartItem{
				{ProductID: "P-003", Name: "Batik Tulis Parang", Price: 450000, Quantity: 1},
			},
			ShippingAddress: "Jl. Slamet Riyadi 1, Solo",
			TotalAmount:     450000,
			Status:          model.OrderStatusDelivered,
			CreatedAt:       now.Add(-3 * day),
		},
	}

	return &snapshot.Snapshot{
		GeneratedAt: now,
		Products:    products,
		Sellers:     sellers,
		Orders:      orders,
	}
}
