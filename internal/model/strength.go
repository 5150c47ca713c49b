package model

// Strength is the report produced by the strength estimator. It is
// immutable once created.
type Strength struct {
	Score     int      `json:"score"`
	Feedback  Feedback `json:"feedback"`
	CrackTime string   `json:"crack_time"`
	Guesses   float64  `json:"guesses"`
}

// Feedback carries the estimator's human-readable advice.
type Feedback struct {
	Warning     string   `json:"warning"`
	Suggestions []string `json:"suggestions"`
}
