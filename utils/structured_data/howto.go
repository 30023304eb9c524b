package structured_data

type HowToInput struct {
	Name        string
	Description string
	URL         string
	Steps       []HowToStepInput
}

type HowToStepInput struct {
	Name string
	Text string
}

type HowToStep struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Text     string `json:"text"`
}

type HowToRecord struct {
	Context     string       `json:"@context"`
	Type        string       `json:"@type"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Author      Person       `json:"author"`
	Publisher   Organization `json:"publisher"`
	Step        []HowToStep  `json:"step"`
}

func (HowToRecord) SchemaType() string { return "HowTo" }

func BuildHowTo(in HowToInput) HowToRecord {
	steps := make([]HowToStep, 0, len(in.Steps))
	for i, s := range in.Steps {
		steps = append(steps, HowToStep{Type: "HowToStep", Position: i + 1, Name: s.Name, Text: s.Text})
	}
	return HowToRecord{
		Context:     SchemaContext,
		Type:        "HowTo",
		Name:        in.Name,
		Description: in.Description,
		URL:         in.URL,
		Author:      Author(),
		Publisher:   Publisher(),
		Step:        steps,
	}
}
