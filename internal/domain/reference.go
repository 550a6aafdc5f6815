package domain

// Reference data: catalog-adjacent content managed by administrators,
// with no coupling to carts or orders.

type HeroImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	// Position is a CSS object-position value, e.g. "50% 50%".
	Position string `json:"position,omitempty"`
}

type ClientResult struct {
	ID     string `json:"id"`
	Image  string `json:"image"`
	Handle string `json:"handle"`
	Tag    string `json:"tag,omitempty"`
}

type Testimonial struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}
