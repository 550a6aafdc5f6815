package domain

// Localized holds per-language copies of a string, keyed by language
// code ("fr", "ar").
type Localized map[string]string

type BlockKind string

const (
	BlockText  BlockKind = "text"
	BlockImage BlockKind = "image"
)

// DescriptionBlock is one ordered chunk of a product description,
// either a paragraph of text or an image URL.
type DescriptionBlock struct {
	ID      string    `json:"id"`
	Kind    BlockKind `json:"kind"`
	Content string    `json:"content"`
}

type Variation struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	// Stock is informational only; order placement does not decrement it.
	Stock int `json:"stock"`
}

type Product struct {
	ID                string                        `json:"id"`
	Slug              string                        `json:"slug"`
	Name              Localized                     `json:"name"`
	ShortDescription  Localized                     `json:"shortDescription,omitempty"`
	DescriptionBlocks map[string][]DescriptionBlock `json:"descriptionBlocks,omitempty"`
	PriceCents        int64                         `json:"priceCents"`
	Images            []string                      `json:"images,omitempty"`
	Category          string                        `json:"category,omitempty"`
	Variations        []Variation                   `json:"variations,omitempty"`
	IsFeatured        bool                          `json:"isFeatured"`
}

// CoverImage returns the first image, the cover by convention.
func (p Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
