package catalog

// GalleryCard is one template showcased in the gallery section.
type GalleryCard struct {
	Template    Template `json:"template"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

var gallery = []GalleryCard{
	{Template: TemplateClassic, Title: "Classic Frame", Description: "A clean white border that suits any portrait."},
	{Template: TemplateCollage, Title: "Fun Collage", Description: "Playful layout for barkada shots and event photos."},
	{Template: TemplateSeasonal, Title: "Seasonal Theme", Description: "Holiday and intramurals designs, refreshed every term."},
	{Template: TemplateSchool, Title: "School Spirit", Description: "School colors and crest for class and club pictures."},
}

// Gallery returns the template cards in display order.
func Gallery() []GalleryCard {
	out := make([]GalleryCard, len(gallery))
	copy(out, gallery)
	return out
}

// LookupCard finds the gallery card for a template.
func LookupCard(t Template) (GalleryCard, bool) {
	for _, card := range gallery {
		if card.Template == t {
			return card, true
		}
	}
	return GalleryCard{}, false
}
