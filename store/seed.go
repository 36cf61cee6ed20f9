package store

import (
	"time"

	"github.com/threadlab/threadlab-backend-go/models"
)

var (
	colorWhite    = models.ColorOption{Name: "White", Hex: "#FFFFFF"}
	colorBlack    = models.ColorOption{Name: "Black", Hex: "#1A1A1A"}
	colorNavy     = models.ColorOption{Name: "Navy", Hex: "#1F2A44"}
	colorRed      = models.ColorOption{Name: "Red", Hex: "#C0392B"}
	colorHeather  = models.ColorOption{Name: "Heather Grey", Hex: "#B8B8B8"}
	colorForest   = models.ColorOption{Name: "Forest Green", Hex: "#1E5631"}
	colorLavender = models.ColorOption{Name: "Lavender", Hex: "#C9B6E4"}
)

// SeedProducts is the catalog loaded in memory mode.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Classic Crew Tee",
			Style:       "T-Shirt",
			Price:       19.99,
			Colors:      []models.ColorOption{colorWhite, colorBlack, colorNavy, colorRed},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			DesignType:  "graphic",
			ColorScheme: "vibrant",
			Complexity:  "simple",
			Images:      []string{"/images/products/classic-crew-tee.jpg"},
			Description: "Ringspun cotton crew neck, the blank canvas of the catalog.",
			Specs: models.ProductSpecs{
				Material: "100% ringspun cotton",
				Weight:   "180 gsm",
				Care:     "Machine wash cold, tumble dry low",
				Origin:   "Portugal",
			},
		},
		{
			ID:          2,
			Name:        "Red Stripe Tee",
			Style:       "T-Shirt",
			Price:       22.50,
			Colors:      []models.ColorOption{colorWhite, colorRed},
			Sizes:       []string{"S", "M", "L", "XL"},
			DesignType:  "text",
			ColorScheme: "monochrome",
			Complexity:  "simple",
			Images:      []string{"/images/products/red-stripe-tee.jpg"},
			Description: "Side-striped tee with a wide front print area.",
			Specs: models.ProductSpecs{
				Material: "95% cotton, 5% elastane",
				Weight:   "170 gsm",
				Care:     "Machine wash cold",
				Origin:   "Turkey",
			},
		},
		{
			ID:          3,
			Name:        "Midweight Pullover Hoodie",
			Style:       "Hoodie",
			Price:       44.00,
			Colors:      []models.ColorOption{colorBlack, colorHeather, colorForest},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			DesignType:  "graphic",
			ColorScheme: "dark",
			Complexity:  "detailed",
			Images:      []string{"/images/products/midweight-hoodie.jpg"},
			Description: "Brushed fleece interior, kangaroo pocket, roomy hood print zone.",
			Specs: models.ProductSpecs{
				Material: "80% cotton, 20% polyester fleece",
				Weight:   "320 gsm",
				Care:     "Machine wash cold, hang dry",
				Origin:   "Bangladesh",
			},
		},
		{
			ID:          4,
			Name:        "Everyday Tank",
			Style:       "Tank Top",
			Price:       16.75,
			Colors:      []models.ColorOption{colorWhite, colorBlack, colorLavender},
			Sizes:       []string{"XS", "S", "M", "L"},
			DesignType:  "text",
			ColorScheme: "pastel",
			Complexity:  "simple",
			Images:      []string{"/images/products/everyday-tank.jpg"},
			Description: "Lightweight jersey tank for summer prints.",
			Specs: models.ProductSpecs{
				Material: "100% combed cotton",
				Weight:   "140 gsm",
				Care:     "Machine wash cold",
				Origin:   "Vietnam",
			},
		},
		{
			ID:          5,
			Name:        "Thermal Long Sleeve",
			Style:       "Long Sleeve",
			Price:       28.99,
			Colors:      []models.ColorOption{colorNavy, colorHeather, colorForest},
			Sizes:       []string{"M", "L", "XL", "XXL"},
			DesignType:  "logo",
			ColorScheme: "dark",
			Complexity:  "moderate",
			Images:      []string{"/images/products/thermal-long-sleeve.jpg"},
			Description: "Waffle-knit thermal with sleeve print options.",
			Specs: models.ProductSpecs{
				Material: "60% cotton, 40% polyester waffle knit",
				Weight:   "240 gsm",
				Care:     "Machine wash warm",
				Origin:   "India",
			},
		},
		{
			ID:          6,
			Name:        "Campus Sweatshirt",
			Style:       "Sweatshirt",
			Price:       36.50,
			Colors:      []models.ColorOption{colorHeather, colorNavy, colorRed},
			Sizes:       []string{"S", "M", "L", "XL"},
			DesignType:  "text",
			ColorScheme: "vibrant",
			Complexity:  "moderate",
			Images:      []string{"/images/products/campus-sweatshirt.jpg"},
			Description: "Classic raglan crewneck built for big collegiate lettering.",
			Specs: models.ProductSpecs{
				Material: "50% cotton, 50% polyester",
				Weight:   "280 gsm",
				Care:     "Machine wash cold, tumble dry low",
				Origin:   "Honduras",
			},
		},
		{
			ID:          7,
			Name:        "Photo Print Premium Tee",
			Style:       "T-Shirt",
			Price:       26.00,
			Colors:      []models.ColorOption{colorWhite, colorBlack},
			Sizes:       []string{"S", "M", "L", "XL"},
			DesignType:  "photo",
			ColorScheme: "vibrant",
			Complexity:  "detailed",
			Images:      []string{"/images/products/photo-print-tee.jpg"},
			Description: "Tight-weave surface tuned for full-color photographic prints.",
			Specs: models.ProductSpecs{
				Material: "100% combed ringspun cotton",
				Weight:   "200 gsm",
				Care:     "Machine wash cold, inside out",
				Origin:   "Portugal",
			},
		},
		{
			ID:          8,
			Name:        "Pique Polo",
			Style:       "Polo",
			Price:       31.25,
			Colors:      []models.ColorOption{colorWhite, colorNavy, colorForest},
			Sizes:       []string{"M", "L", "XL"},
			DesignType:  "logo",
			ColorScheme: "monochrome",
			Complexity:  "simple",
			Images:      []string{"/images/products/pique-polo.jpg"},
			Description: "Embroidery-friendly pique polo with a left-chest logo zone.",
			Specs: models.ProductSpecs{
				Material: "100% pique cotton",
				Weight:   "220 gsm",
				Care:     "Machine wash warm",
				Origin:   "Peru",
			},
		},
	}
}

// SeedReviews is the review set loaded in memory mode.
func SeedReviews() []models.Review {
	now := time.Now()
	return []models.Review{
		{
			ID: 1, ProductID: 1, CustomerName: "Maya R.", Rating: 5,
			Title:   "Print came out crisp",
			Comment: "Uploaded a three-color design and the lines stayed sharp after five washes.",
			Photos:  []string{"/images/reviews/r1-1.jpg", "/images/reviews/r1-2.jpg"},
			ReviewDate: now.AddDate(0, 0, -12), VerifiedPurchase: true,
			HelpfulVotes: models.HelpfulVotes{Yes: 14, No: 1},
		},
		{
			ID: 2, ProductID: 1, CustomerName: "Dev S.", Rating: 4,
			Title:   "Good fabric, runs a bit small",
			Comment: "Size up if you are between sizes. Print quality itself is great.",
			ReviewDate: now.AddDate(0, -2, 0), VerifiedPurchase: true,
			HelpfulVotes: models.HelpfulVotes{Yes: 6, No: 2},
		},
		{
			ID: 3, ProductID: 1, CustomerName: "Lena K.", Rating: 3,
			Title:   "Average blank",
			Comment: "Does the job but the collar stretched after a month.",
			ReviewDate: now.AddDate(0, -5, 0), VerifiedPurchase: false,
			HelpfulVotes: models.HelpfulVotes{Yes: 0, No: 0},
		},
		{
			ID: 4, ProductID: 3, CustomerName: "Tomas A.", Rating: 5,
			Title:   "Warm and the hood print survived",
			Comment: "Detailed back print over fleece, no cracking yet.",
			Photos:  []string{"/images/reviews/r4-1.jpg"},
			ReviewDate: now.AddDate(0, 0, -30), VerifiedPurchase: true,
			HelpfulVotes: models.HelpfulVotes{Yes: 9, No: 0},
		},
		{
			ID: 5, ProductID: 3, CustomerName: "Priya N.", Rating: 2,
			Title:   "Color faded",
			Comment: "Forest green faded noticeably after the first warm wash.",
			ReviewDate: now.AddDate(0, -4, -10), VerifiedPurchase: true,
			HelpfulVotes: models.HelpfulVotes{Yes: 3, No: 5},
		},
		{
			ID: 6, ProductID: 7, CustomerName: "Jon E.", Rating: 5,
			Title:   "Photo print is the real deal",
			Comment: "Put a full-bleed photo on the front, gradients came out smooth.",
			Photos:  []string{"/images/reviews/r6-1.jpg", "/images/reviews/r6-2.jpg", "/images/reviews/r6-3.jpg"},
			ReviewDate: now.AddDate(0, -1, 0), VerifiedPurchase: true,
			HelpfulVotes: models.HelpfulVotes{Yes: 11, No: 1},
		},
	}
}
