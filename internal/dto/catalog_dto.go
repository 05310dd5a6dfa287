package dto

type SustainabilityResponse struct {
	Co2Saved     string `json:"co2_saved"`
	WaterSaved   string `json:"water_saved"`
	WasteReduced string `json:"waste_reduced"`
}

type BoxResponse struct {
	Id              string                 `json:"id"`
	Name            string                 `json:"name"`
	Category        string                 `json:"category"`
	Description     string                 `json:"description"`
	LongDescription string                 `json:"long_description"`
	Price           float64                `json:"price"`
	OriginalValue   float64                `json:"original_value"`
	Items           int                    `json:"items"`
	Images          []string               `json:"images"`
	Tags            []string               `json:"tags"`
	Rating          float64                `json:"rating"`
	Reviews         int                    `json:"reviews"`
	Sustainability  SustainabilityResponse `json:"sustainability"`
}

type TestimonialResponse struct {
	Id           int    `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Text         string `json:"text"`
	Rating       int    `json:"rating"`
	BoxPurchased string `json:"box_purchased"`
}
