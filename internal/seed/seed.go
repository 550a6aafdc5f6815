// Package seed holds the default catalog and reference-data records
// written on first init. Every record has a fixed id so seeding stays
// idempotent no matter how many times it runs.
package seed

import (
	"wahibashop/internal/catalog"
	"wahibashop/internal/domain"
)

// Defaults returns the seed records per collection. Orders and
// messages are never seeded.
func Defaults() catalog.Seeds {
	return catalog.Seeds{
		catalog.ColProducts:      anySlice(Products()),
		catalog.ColHeroImages:    anySlice(HeroImages()),
		catalog.ColClientResults: anySlice(ClientResults()),
		catalog.ColTestimonials:  anySlice(Testimonials()),
	}
}

func Products() []domain.Product {
	return []domain.Product{
		{
			ID:   "prod-lissage-pro",
			Slug: "lissage-proteine-pro",
			Name: domain.Localized{
				"fr": "Lissage Protéiné Pro",
				"ar": "بروتين فرد الشعر برو",
			},
			ShortDescription: domain.Localized{
				"fr": "Lissage professionnel longue durée, sans formol.",
				"ar": "فرد احترافي يدوم طويلاً، خالٍ من الفورمالين.",
			},
			DescriptionBlocks: map[string][]domain.DescriptionBlock{
				"fr": {
					{ID: "b1", Kind: domain.BlockText, Content: "Un soin lissant à la kératine qui discipline les cheveux les plus rebelles."},
				},
				"ar": {
					{ID: "b1", Kind: domain.BlockText, Content: "علاج فرد بالكيراتين يروض أكثر أنواع الشعر تمرداً."},
				},
			},
			PriceCents: 19500,
			Images:     []string{"https://images.wahibashop.com/products/lissage-pro-cover.jpg"},
			Category:   "Lissage",
			Variations: []domain.Variation{
				{ID: "v1", Name: "1L Pro", PriceCents: 19500, Stock: 50},
				{ID: "v2", Name: "Kit 100ml", PriceCents: 4500, Stock: 100},
			},
			IsFeatured: true,
		},
		{
			ID:   "prod-serum-eclat",
			Slug: "serum-eclat-argan",
			Name: domain.Localized{
				"fr": "Sérum Éclat à l'Argan",
				"ar": "سيروم اللمعان بالأرغان",
			},
			ShortDescription: domain.Localized{
				"fr": "Brillance immédiate, pointes nourries.",
				"ar": "لمعان فوري وأطراف مغذاة.",
			},
			PriceCents: 3995,
			Images:     []string{"https://images.wahibashop.com/products/serum-eclat-cover.jpg"},
			Category:   "Soins",
			IsFeatured: true,
		},
		{
			ID:   "prod-masque-keratine",
			Slug: "masque-reparateur-keratine",
			Name: domain.Localized{
				"fr": "Masque Réparateur Kératine",
				"ar": "قناع الإصلاح بالكيراتين",
			},
			ShortDescription: domain.Localized{
				"fr": "Répare la fibre en profondeur en 10 minutes.",
				"ar": "يصلح الشعرة بعمق في 10 دقائق.",
			},
			PriceCents: 3345,
			Images:     []string{"https://images.wahibashop.com/products/masque-keratine-cover.jpg"},
			Category:   "Soins",
		},
		{
			ID:   "prod-shampoing-doux",
			Slug: "shampoing-doux-sans-sulfate",
			Name: domain.Localized{
				"fr": "Shampoing Doux Sans Sulfate",
				"ar": "شامبو لطيف خالٍ من السلفات",
			},
			ShortDescription: domain.Localized{
				"fr": "Prolonge les effets du lissage.",
				"ar": "يطيل مفعول الفرد.",
			},
			PriceCents: 3599,
			Images:     []string{"https://images.wahibashop.com/products/shampoing-doux-cover.jpg"},
			Category:   "Shampoing",
		},
	}
}

func HeroImages() []domain.HeroImage {
	return []domain.HeroImage{
		{ID: "hero-1", URL: "https://images.wahibashop.com/hero/salon.jpg", Position: "50% 50%"},
		{ID: "hero-2", URL: "https://images.wahibashop.com/hero/produits.jpg", Position: "50% 35%"},
	}
}

func ClientResults() []domain.ClientResult {
	return []domain.ClientResult{
		{ID: "result-1", Image: "https://images.wahibashop.com/results/avant-apres-1.jpg", Handle: "@sarah_beauty", Tag: "#Transformation"},
		{ID: "result-2", Image: "https://images.wahibashop.com/results/avant-apres-2.jpg", Handle: "@amal.hair", Tag: "#Lissage"},
	}
}

func Testimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{
			ID:     "testi-1",
			Text:   "Mes cheveux n'ont jamais été aussi lisses, même après plusieurs lavages.",
			Author: "Sarah L.",
			Role:   "Cliente vérifiée",
		},
		{
			ID:     "testi-2",
			Text:   "نتيجة رائعة من أول استعمال، أنصح به.",
			Author: "Amal K.",
			Role:   "Cliente vérifiée",
		},
	}
}

func anySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
