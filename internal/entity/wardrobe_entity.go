package entity

// WardrobeItem is a single garment in the user's dressing, used by the
// outfit-creation assistant mode.
type WardrobeItem struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Image string `json:"image"`
}

type Testimonial struct {
	Id           int    `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Text         string `json:"text"`
	Rating       int    `json:"rating"`
	BoxPurchased string `json:"box_purchased"`
}
