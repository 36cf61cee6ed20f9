package catalog

import (
	"strings"

	"github.com/threadlab/threadlab-backend-go/models"
)

// BuildFilterMetadata derives the filter sidebar data from the catalog:
// every distinct facet value plus the store-wide price range. Values keep
// first-seen order so the sidebar mirrors the seed catalog.
func BuildFilterMetadata(products []models.Product) models.FilterMetadata {
	meta := models.FilterMetadata{}
	seenStyle := make(map[string]bool)
	seenColor := make(map[string]bool)
	seenSize := make(map[string]bool)
	seenType := make(map[string]bool)
	seenScheme := make(map[string]bool)
	seenComplexity := make(map[string]bool)

	for i, p := range products {
		if key := strings.ToLower(p.Style); p.Style != "" && !seenStyle[key] {
			seenStyle[key] = true
			meta.Styles = append(meta.Styles, p.Style)
		}
		for _, c := range p.Colors {
			if key := strings.ToLower(c.Name); c.Name != "" && !seenColor[key] {
				seenColor[key] = true
				meta.Colors = append(meta.Colors, c)
			}
		}
		for _, s := range p.Sizes {
			if key := strings.ToLower(s); s != "" && !seenSize[key] {
				seenSize[key] = true
				meta.Sizes = append(meta.Sizes, s)
			}
		}
		if key := strings.ToLower(p.DesignType); p.DesignType != "" && !seenType[key] {
			seenType[key] = true
			meta.DesignTypes = append(meta.DesignTypes, p.DesignType)
		}
		if key := strings.ToLower(p.ColorScheme); p.ColorScheme != "" && !seenScheme[key] {
			seenScheme[key] = true
			meta.ColorSchemes = append(meta.ColorSchemes, p.ColorScheme)
		}
		if key := strings.ToLower(p.Complexity); p.Complexity != "" && !seenComplexity[key] {
			seenComplexity[key] = true
			meta.ComplexityLevels = append(meta.ComplexityLevels, p.Complexity)
		}
		if i == 0 || p.Price < meta.PriceRange.Min {
			meta.PriceRange.Min = p.Price
		}
		if p.Price > meta.PriceRange.Max {
			meta.PriceRange.Max = p.Price
		}
	}
	return meta
}
