package structured_data

// BreadcrumbSegment is one step of the trail. An empty URL marks the current page.
type BreadcrumbSegment struct {
	Name string
	URL  string
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

type BreadcrumbRecord struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func (BreadcrumbRecord) SchemaType() string { return "BreadcrumbList" }

// BuildBreadcrumb positions segments from 1. An empty trail yields an empty list.
func BuildBreadcrumb(segments []BreadcrumbSegment) BreadcrumbRecord {
	items := make([]ListItem, 0, len(segments))
	for i, s := range segments {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     s.Name,
			Item:     s.URL,
		})
	}
	return BreadcrumbRecord{
		Context:         SchemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}
