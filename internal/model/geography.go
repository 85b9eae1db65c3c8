package model

// ProductCity groups the products and sellers located in one city.
type ProductCity struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
	Sellers  []Seller  `json:"sellers"`
}

// ProductSubregion groups cities. Products and Sellers hold the union of its cities.
type ProductSubregion struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Cities   []ProductCity `json:"cities"`
	Products []Product     `json:"products"`
	Sellers  []Seller      `json:"sellers"`
}

// ProductRegion groups subregions. Products and Sellers hold the union of its subregions.
type ProductRegion struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Subregions []ProductSubregion `json:"subregions"`
	Products   []Product          `json:"products"`
	Sellers    []Seller           `json:"sellers"`
}

// GeographyTree is the region hierarchy built from a flat catalogue.
// Entities without a complete location are only counted.
type GeographyTree struct {
	Regions           []ProductRegion `json:"regions"`
	UnlocatedProducts int             `json:"unlocatedProducts"`
	UnlocatedSellers  int             `json:"unlocatedSellers"`
}
