package domain

// ScoreEntry is one persisted scoring run.
type ScoreEntry struct {
	Timestamp    string          `json:"timestamp"`
	Title        string          `json:"title,omitempty"`
	Category     GarmentCategory `json:"category"`
	BodyShape    BodyShape       `json:"body_shape"`
	OverallScore float64         `json:"overall_score"`
	Verdict      string          `json:"verdict"`
	Revision     string          `json:"revision,omitempty"`
}

// NewScoreEntry summarizes a result for history.
func NewScoreEntry(timestamp, title, revision string, r *ScoreResult) ScoreEntry {
	return ScoreEntry{
		Timestamp:    timestamp,
		Title:        title,
		Category:     r.Category,
		BodyShape:    r.BodyShape,
		OverallScore: r.OverallScore,
		Verdict:      r.Verdict,
		Revision:     revision,
	}
}
