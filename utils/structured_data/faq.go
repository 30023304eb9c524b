package structured_data

type FAQPair struct {
	Question string
	Answer   string
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type FAQRecord struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

func (FAQRecord) SchemaType() string { return "FAQPage" }

func BuildFAQ(pairs []FAQPair) FAQRecord {
	questions := make([]Question, 0, len(pairs))
	for _, p := range pairs {
		questions = append(questions, Question{
			Type:           "Question",
			Name:           p.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: p.Answer},
		})
	}
	return FAQRecord{
		Context:    SchemaContext,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}
