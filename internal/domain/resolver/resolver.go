// Package resolver maps aggregated materials to catalog products and to
// purchasable quantities.
package resolver

import (
	"math"
	"strings"

	"drywall_estimator/internal/domain/entities"
)

const (
	NewProductPrefix = entities.NewProductIDPrefix

	packSize = 1000.0
)

var normalizer = strings.NewReplacer("ي", "ی", "ك", "ک", "‌", " ")

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(normalizer.Replace(s)))
}

// Resolver matches against an ordered alias table.
type Resolver struct {
	aliases []Alias
}

// New returns a Resolver over the default alias table.
func New() *Resolver {
	return &Resolver{aliases: Aliases}
}

// NewWithAliases is used when the alias table comes from elsewhere.
func NewWithAliases(aliases []Alias) *Resolver {
	return &Resolver{aliases: aliases}
}

// Resolve maps every aggregated material to a product reference. It never
// fails: unmatched materials come back with IsNew set and a placeholder id.
func (r *Resolver) Resolve(aggregated []entities.AggregatedResult, catalog entities.CatalogSnapshot) []entities.ResolvedMaterial {
	out := make([]entities.ResolvedMaterial, 0, len(aggregated))
	for _, a := range aggregated {
		out = append(out, r.resolveOne(a, catalog))
	}
	return out
}

func (r *Resolver) resolveOne(a entities.AggregatedResult, catalog entities.CatalogSnapshot) entities.ResolvedMaterial {
	name := normalize(a.Material)
	alias, hasAlias := r.lookup(name)

	needles := []string{name}
	if hasAlias {
		needles = alias.Aliases
	}

	product, found := matchByName(catalog.Products, needles)
	if !found && hasAlias {
		product, found = matchByCategory(catalog, alias.Category)
	}

	quantity, unit := purchaseQuantity(name, a.Quantity, a.Unit)

	if !found {
		return entities.ResolvedMaterial{
			IsNew:     true,
			ProductID: PlaceholderID(a.Material),
			Name:      a.Material,
			Quantity:  quantity,
			Unit:      unit,
		}
	}
	return entities.ResolvedMaterial{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  quantity,
		Unit:      unit,
	}
}

func (r *Resolver) lookup(name string) (Alias, bool) {
	for _, a := range r.aliases {
		for _, s := range a.Aliases {
			if strings.Contains(name, normalize(s)) {
				return a, true
			}
		}
	}
	return Alias{}, false
}

func matchByName(products []entities.CatalogProduct, needles []string) (entities.CatalogProduct, bool) {
	for _, p := range products {
		pn := normalize(p.Name)
		for _, n := range needles {
			n = normalize(n)
			if n != "" && strings.Contains(pn, n) {
				return p, true
			}
		}
	}
	return entities.CatalogProduct{}, false
}

func matchByCategory(catalog entities.CatalogSnapshot, categoryName string) (entities.CatalogProduct, bool) {
	want := normalize(categoryName)
	categoryID := ""
	for _, c := range catalog.Categories {
		if normalize(c.Name) == want {
			categoryID = c.ID
			break
		}
	}
	if categoryID == "" {
		return entities.CatalogProduct{}, false
	}
	for _, p := range catalog.Products {
		if p.CategoryID == categoryID {
			return p, true
		}
	}
	return entities.CatalogProduct{}, false
}

// purchaseQuantity turns loose screws and nails into 1000-count packs and
// rounds everything else up to whole units.
func purchaseQuantity(name string, quantity float64, unit string) (float64, string) {
	isFastener := strings.Contains(name, "پیچ") || strings.Contains(name, "میخ")
	if isFastener && unit == entities.UnitPiece {
		return math.Ceil(quantity / packSize), entities.UnitPack
	}
	return math.Ceil(quantity), unit
}

// PlaceholderID derives a stable id from the material name alone.
func PlaceholderID(material string) string {
	return NewProductPrefix + strings.Join(strings.Fields(material), "")
}
