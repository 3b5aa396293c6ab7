package banner

// Hero is the landing carousel slide.
type Hero struct {
	Eyebrow      string `json:"eyebrow"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Image        string `json:"image"`
	CallToAction string `json:"callToAction"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Banner is everything above the product grid.
type Banner struct {
	Hero  Hero   `json:"hero"`
	Stats []Stat `json:"stats"`
}
