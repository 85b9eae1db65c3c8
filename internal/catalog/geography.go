package catalog

import (
	"strings"

	"marketplace-catalog/internal/model"
)

// BuildGeographyTree groups products and sellers by city, folds cities into
// subregions and subregions into regions. Names are compared exactly and
// groups appear in the order their key was first seen. Every member of a
// city is also listed on its subregion and region.
func BuildGeographyTree(products []model.Product, sellers []model.Seller) *model.GeographyTree {
	b := newTreeBuilder()
	tree := &model.GeographyTree{}

	for _, p := range products {
		if !p.Location.Complete() {
			tree.UnlocatedProducts++
			continue
		}
		b.city(*p.Location).addProduct(p)
	}

	for _, s := range sellers {
		if !s.Location.Complete() {
			tree.UnlocatedSellers++
			continue
		}
		b.city(*s.Location).addSeller(s)
	}

	tree.Regions = b.build()
	return tree
}

// nodeID joins the names of a path through the hierarchy.
func nodeID(names ...string) string {
	return strings.Join(names, "/")
}

// members accumulates products and sellers for one node, first-seen order,
// deduplicated by ID.
type members struct {
	products   []model.Product
	sellers    []model.Seller
	productIDs map[string]struct{}
	sellerIDs  map[string]struct{}
}

func newMembers() members {
	return members{
		products:   []model.Product{},
		sellers:    []model.Seller{},
		productIDs: make(map[string]struct{}),
		sellerIDs:  make(map[string]struct{}),
	}
}

func (m *members) addProduct(p model.Product) {
	if _, ok := m.productIDs[p.ID]; ok {
		return
	}
	m.productIDs[p.ID] = struct{}{}
	m.products = append(m.products, p)
}

func (m *members) addSeller(s model.Seller) {
	if _, ok := m.sellerIDs[s.ID]; ok {
		return
	}
	m.sellerIDs[s.ID] = struct{}{}
	m.sellers = append(m.sellers, s)
}

type regionNode struct {
	name       string
	members    members
	subregions []*subregionNode
	byName     map[string]*subregionNode
}

type subregionNode struct {
	name    string
	members members
	cities  []*cityNode
	byName  map[string]*cityNode
}

// cityNode forwards every addition to its ancestors so roll-up holds by construction.
type cityNode struct {
	name      string
	members   members
	subregion *subregionNode
	region    *regionNode
}

func (c *cityNode) addProduct(p model.Product) {
	c.members.addProduct(p)
	c.subregion.members.addProduct(p)
	c.region.members.addProduct(p)
}

func (c *cityNode) addSeller(s model.Seller) {
	c.members.addSeller(s)
	c.subregion.members.addSeller(s)
	c.region.members.addSeller(s)
}

type treeBuilder struct {
	regions []*regionNode
	byName  map[string]*regionNode
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{byName: make(map[string]*regionNode)}
}

// city returns the node for loc, creating any missing level.
func (b *treeBuilder) city(loc model.Location) *cityNode {
	r, ok := b.byName[loc.Region]
	if !ok {
		r = &regionNode{name: loc.Region, members: newMembers(), byName: make(map[string]*subregionNode)}
		b.byName[loc.Region] = r
		b.regions = append(b.regions, r)
	}

	s, ok := r.byName[loc.Subregion]
	if !ok {
		s = &subregionNode{name: loc.Subregion, members: newMembers(), byName: make(map[string]*cityNode)}
		r.byName[loc.Subregion] = s
		r.subregions = append(r.subregions, s)
	}

	c, ok := s.byName[loc.City]
	if !ok {
		c = &cityNode{name: loc.City, members: newMembers(), subregion: s, region: r}
		s.byName[loc.City] = c
		s.cities = append(s.cities, c)
	}

	return c
}

func (b *treeBuilder) build() []model.ProductRegion {
	regions := make([]model.ProductRegion, 0, len(b.regions))
	for _, r := range b.regions {
		region := model.ProductRegion{
			ID:         nodeID(r.name),
			Name:       r.name,
			Subregions: make([]model.ProductSubregion, 0, len(r.subregions)),
			Products:   r.members.products,
			Sellers:    r.members.sellers,
		}
		for _, s := range r.subregions {
			subregion := model.ProductSubregion{
				ID:       nodeID(r.name, s.name),
				Name:     s.name,
				Cities:   make([]model.ProductCity, 0, len(s.cities)),
				Products: s.members.products,
				Sellers:  s.members.sellers,
			}
			for _, c := range s.cities {
				subregion.Cities = append(subregion.Cities, model.ProductCity{
					ID:       nodeID(r.name, s.name, c.name),
					Name:     c.name,
					Products: c.members.products,
					Sellers:  c.members.sellers,
				})
			}
			region.Subregions = append(region.Subregions, subregion)
		}
		regions = append(regions, region)
	}
	return regions
}
