// Package catalog holds the pure product filter/search/sort pipeline.
// Everything here operates on in-memory slices and has no side effects,
// so both store backends and the HTTP layer share the same semantics.
package catalog

import (
	"sort"
	"strings"

	"github.com/threadlab/threadlab-backend-go/models"
)

// FilterProducts returns the products matching the free-text query and the
// facet selection. The filter is stable: survivors keep their input order.
//
// The query is a case-insensitive substring match against name or style;
// an empty query matches everything. Facets OR within themselves and AND
// across each other; an empty facet imposes no constraint. Price bounds
// are inclusive.
func FilterProducts(products []models.Product, query string, sel models.FilterSelection) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesQuery(p, query) {
			continue
		}
		if !matchesFacet(sel.Styles, p.Style) {
			continue
		}
		if !matchesColor(sel.Colors, p.Colors) {
			continue
		}
		if !matchesAny(sel.Sizes, p.Sizes) {
			continue
		}
		if !matchesFacet(sel.DesignTypes, p.DesignType) {
			continue
		}
		if !matchesFacet(sel.ColorSchemes, p.ColorScheme) {
			continue
		}
		if !matchesFacet(sel.ComplexityLevels, p.Complexity) {
			continue
		}
		if sel.MinPrice != nil && p.Price < *sel.MinPrice {
			continue
		}
		if sel.MaxPrice != nil && p.Price > *sel.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Style), query)
}

// matchesFacet is the OR-within-facet rule for a single-valued attribute.
func matchesFacet(facet []string, attr string) bool {
	if len(facet) == 0 {
		return true
	}
	for _, v := range facet {
		if strings.EqualFold(v, attr) {
			return true
		}
	}
	return false
}

// matchesAny is the OR-within-facet rule for a multi-valued attribute.
func matchesAny(facet, attrs []string) bool {
	if len(facet) == 0 {
		return true
	}
	for _, v := range facet {
		for _, a := range attrs {
			if strings.EqualFold(v, a) {
				return true
			}
		}
	}
	return false
}

func matchesColor(facet []string, colors []models.ColorOption) bool {
	if len(facet) == 0 {
		return true
	}
	for _, v := range facet {
		for _, c := range colors {
			if strings.EqualFold(v, c.Name) {
				return true
			}
		}
	}
	return false
}

// Sort keys accepted by SortProducts.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// SortProducts orders a result set by the given key. An empty or unknown
// key leaves the input order untouched. The sort is stable and operates on
// a copy so callers holding the input slice are unaffected.
func SortProducts(products []models.Product, key string) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}
