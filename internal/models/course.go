package models

// Course is the canonical catalog item every downstream component operates
// on. Upstream payloads arrive in several near-identical shapes; they are
// normalised into this struct exactly once, at load time.
type Course struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Instructor       string  `json:"instructor"`
	InstructorAvatar string  `json:"instructorAvatar,omitempty"`
	Category         string  `json:"category"`
	Level            string  `json:"level"`
	Duration         float64 `json:"duration"`
	Rating           float64 `json:"rating"`
	RatingCount      int     `json:"ratingCount"`
	StudentCount     int     `json:"studentCount"`
	Price            int     `json:"price"`
	DiscountPrice    int     `json:"discountPrice,omitempty"`
	Language         string  `json:"language"`
	Thumbnail        string  `json:"thumbnail"`
}

// Course levels as normalised from upstream.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelUnspecified  = "Unspecified"
)

// EffectivePrice returns the price after the discount is applied. A
// negative result indicates a data-quality issue upstream; it is passed
// through rather than clamped.
func (c Course) EffectivePrice() int {
	if c.DiscountPrice > 0 {
		return c.Price - c.DiscountPrice
	}
	return c.Price
}

// Free reports whether the course costs nothing after discounts.
func (c Course) Free() bool {
	return c.EffectivePrice() <= 0
}
