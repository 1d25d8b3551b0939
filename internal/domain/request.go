package domain

// ScoringContext carries the optional wearing context of a request.
type ScoringContext struct {
	Occasion     string `mapstructure:"occasion"      json:"occasion,omitempty"`
	Culture      string `mapstructure:"culture"       json:"culture,omitempty"`
	EventType    string `mapstructure:"event_type"    json:"event_type,omitempty"`
	GarmentColor string `mapstructure:"garment_color" json:"garment_color,omitempty"`
	AgeRange     string `mapstructure:"age_range"     json:"age_range,omitempty"`
	Climate      string `mapstructure:"climate"       json:"climate,omitempty"`
}

// IsZero reports whether no context field is set.
func (c ScoringContext) IsZero() bool { return c == ScoringContext{} }

// ScoreRequest is one (garment, body, context) scoring input.
type ScoreRequest struct {
	Garment GarmentProfile `json:"garment"`
	Body    BodyProfile    `json:"body"`
	Context map[string]any `json:"context,omitempty"`
}
