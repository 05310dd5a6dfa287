package entity

// Sustainability holds the estimated environmental savings of buying a box
// second-hand instead of new.
type Sustainability struct {
	Co2Saved     string `json:"co2_saved"`
	WaterSaved   string `json:"water_saved"`
	WasteReduced string `json:"waste_reduced"`
}

// Box is one purchasable bundle of second-hand garments. Boxes are defined
// statically at startup and never mutated.
type Box struct {
	Id              string         `json:"id"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	LongDescription string         `json:"long_description"`
	Price           float64        `json:"price"`
	OriginalValue   float64        `json:"original_value"`
	Items           int            `json:"items"`
	Images          []string       `json:"images"`
	Tags            []string       `json:"tags"`
	Rating          float64        `json:"rating"`
	Reviews         int            `json:"reviews"`
	Sustainability  Sustainability `json:"sustainability"`
}
