package models

// FilterSelection is the typed facet selection applied to the catalog.
// A nil or empty facet slice imposes no constraint; nil price bounds are
// unbounded. Within a facet the values are ORed, across facets ANDed.
type FilterSelection struct {
	Styles           []string `json:"styles"`
	Colors           []string `json:"colors"`
	Sizes            []string `json:"sizes"`
	DesignTypes      []string `json:"designTypes"`
	ColorSchemes     []string `json:"colorSchemes"`
	ComplexityLevels []string `json:"complexityLevels"`
	MinPrice         *float64 `json:"minPrice,omitempty"`
	MaxPrice         *float64 `json:"maxPrice,omitempty"`
}

// PriceRange is the store-wide min/max used by the filter sidebar.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata lists every facet value present in the catalog.
type FilterMetadata struct {
	Styles           []string      `json:"styles"`
	Colors           []ColorOption `json:"colors"`
	Sizes            []string      `json:"sizes"`
	DesignTypes      []string      `json:"designTypes"`
	ColorSchemes     []string      `json:"colorSchemes"`
	ComplexityLevels []string      `json:"complexityLevels"`
	PriceRange       PriceRange    `json:"priceRange"`
}
