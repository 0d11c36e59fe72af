package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/alisha-attire/storefront/internal/models"
)

func bdt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func bdtPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:           "saree-katan-crimson",
			Name:         "Crimson Katan Silk Saree",
			Price:        bdt(6800),
			Image:        "/images/saree-katan-crimson.jpg",
			HoverImage:   "/images/saree-katan-crimson-alt.jpg",
			Category:     "Silk",
			IsBestseller: true,
			Description:  "Handwoven katan silk with zari border, dyed in deep crimson.",
			Material:     "Pure katan silk",
			Care:         "Dry clean only",
		},
		{
			ID:            "saree-jamdani-ivory",
			Name:          "Ivory Dhakai Jamdani",
			Price:         bdt(5400),
			OriginalPrice: bdtPtr(6200),
			Image:         "/images/saree-jamdani-ivory.jpg",
			Category:      "Jamdani",
			IsBestseller:  true,
			Description:   "Fine-count jamdani with traditional paisley motifs on ivory.",
			Material:      "Cotton-silk blend",
			Care:          "Dry clean recommended",
		},
		{
			ID:          "saree-jamdani-teal",
			Name:        "Teal Half-Silk Jamdani",
			Price:       bdt(4200),
			Image:       "/images/saree-jamdani-teal.jpg",
			HoverImage:  "/images/saree-jamdani-teal-alt.jpg",
			Category:    "Jamdani",
			IsNew:       true,
			Description: "Half-silk jamdani in teal with silver butis.",
			Material:    "Half silk",
			Care:        "Gentle dry clean",
		},
		{
			ID:          "saree-muslin-blush",
			Name:        "Blush Muslin Saree",
			Price:       bdt(7500),
			Image:       "/images/saree-muslin-blush.jpg",
			Category:    "Muslin",
			IsNew:       true,
			Description: "Featherweight muslin with hand-embroidered floral vines.",
			Material:    "Muslin cotton",
			Care:        "Dry clean only",
		},
		{
			ID:            "saree-tant-indigo",
			Name:          "Indigo Tant Cotton Saree",
			Price:         bdt(1850),
			OriginalPrice: bdtPtr(2200),
			Image:         "/images/saree-tant-indigo.jpg",
			Category:      "Cotton",
			Description:   "Everyday tant weave in indigo with a contrast temple border.",
			Material:      "Handloom cotton",
			Care:          "Hand wash cold",
		},
		{
			ID:          "saree-tant-mustard",
			Name:        "Mustard Tant Cotton Saree",
			Price:       bdt(1650),
			Image:       "/images/saree-tant-mustard.jpg",
			HoverImage:  "/images/saree-tant-mustard-alt.jpg",
			Category:    "Cotton",
			Description: "Breathable handloom cotton in mustard with woven stripes.",
			Material:    "Handloom cotton",
			Care:        "Hand wash cold",
		},
		{
			ID:           "saree-banarasi-emerald",
			Name:         "Emerald Banarasi Silk",
			Price:        bdt(9200),
			Image:        "/images/saree-banarasi-emerald.jpg",
			Category:     "Silk",
			IsBestseller: true,
			Description:  "Opulent banarasi weave with gold zari jaal on emerald silk.",
			Material:     "Banarasi silk",
			Care:         "Dry clean only",
		},
		{
			ID:            "saree-georgette-onyx",
			Name:          "Onyx Georgette Saree",
			Price:         bdt(3200),
			OriginalPrice: bdtPtr(3800),
			Image:         "/images/saree-georgette-onyx.jpg",
			Category:      "Georgette",
			Description:   "Fluid black georgette with sequin scatter work.",
			Material:      "Georgette",
			Care:          "Gentle machine wash",
		},
		{
			ID:          "saree-linen-sage",
			Name:        "Sage Linen Saree",
			Price:       bdt(2750),
			Image:       "/images/saree-linen-sage.jpg",
			Category:    "Linen",
			IsNew:       true,
			Description: "Soft-washed linen in sage with a slim silver selvedge.",
			Material:    "Pure linen",
			Care:        "Machine wash gentle",
		},
		{
			ID:          "saree-katan-midnight",
			Name:        "Midnight Katan Silk Saree",
			Price:       bdt(7100),
			Image:       "/images/saree-katan-midnight.jpg",
			HoverImage:  "/images/saree-katan-midnight-alt.jpg",
			Category:    "Silk",
			Description: "Midnight blue katan silk with copper zari stripes.",
			Material:    "Pure katan silk",
			Care:        "Dry clean only",
		},
		{
			ID:          "saree-chiffon-rosewater",
			Name:        "Rosewater Chiffon Saree",
			Price:       bdt(2400),
			Image:       "/images/saree-chiffon-rosewater.jpg",
			Category:    "Chiffon",
			Description: "Sheer chiffon in rosewater pink with pearl edging.",
			Material:    "Chiffon",
			Care:        "Hand wash cold",
		},
		{
			ID:            "saree-jamdani-scarlet",
			Name:          "Scarlet Festive Jamdani",
			Price:         bdt(5900),
			OriginalPrice: bdtPtr(6600),
			Image:         "/images/saree-jamdani-scarlet.jpg",
			Category:      "Jamdani",
			IsBestseller:  true,
			Description:   "Festive-weight jamdani in scarlet with gold thread motifs.",
			Material:      "Cotton-silk blend",
			Care:          "Dry clean recommended",
		},
	}
}
