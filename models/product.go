package models

// ColorOption is a selectable garment color.
type ColorOption struct {
	Name string `bson:"name" json:"name"`
	Hex  string `bson:"hex" json:"hex"`
}

// ProductSpecs holds the garment specification fields shown on the detail page.
type ProductSpecs struct {
	Material string `bson:"material" json:"material"`
	Weight   string `bson:"weight" json:"weight"`
	Care     string `bson:"care" json:"care"`
	Origin   string `bson:"origin" json:"origin"`
}

type Product struct {
	ID          int           `bson:"_id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Style       string        `bson:"style" json:"style"`
	Price       float64       `bson:"price" json:"price"`
	Colors      []ColorOption `bson:"colors" json:"colors"`
	Sizes       []string      `bson:"sizes" json:"sizes"`
	DesignType  string        `bson:"designType" json:"designType"`
	ColorScheme string        `bson:"colorScheme" json:"colorScheme"`
	Complexity  string        `bson:"complexity" json:"complexity"`
	Images      []string      `bson:"images" json:"images"`
	Description string        `bson:"description" json:"description"`
	Specs       ProductSpecs  `bson:"specs" json:"specs"`
}

// ProductSummary is the compact record kept in the recently-viewed list.
type ProductSummary struct {
	ID    int     `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Style string  `bson:"style" json:"style"`
	Price float64 `bson:"price" json:"price"`
	Image string  `bson:"image" json:"image"`
}

// Summary returns the compact form of a product.
func (p Product) Summary() ProductSummary {
	s := ProductSummary{ID: p.ID, Name: p.Name, Style: p.Style, Price: p.Price}
	if len(p.Images) > 0 {
		s.Image = p.Images[0]
	}
	return s
}
