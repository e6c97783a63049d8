package schema

// AxisScore is one axis's normalized score, in [0, 100] with two decimals.
type AxisScore struct {
	Axis  string  `json:"axis"`
	Score float64 `json:"score"`
}

// Result is the ordered set of axis scores for one respondent.
// Order is the canonical axis order of the configuration that produced it.
type Result []AxisScore

// Names returns the axis names in order.
func (r Result) Names() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = s.Axis
	}
	return out
}

// Values returns the scores in order.
func (r Result) Values() []float64 {
	out := make([]float64, len(r))
	for i, s := range r {
		out[i] = s.Score
	}
	return out
}

// Map returns the scores keyed by axis name.
func (r Result) Map() map[string]float64 {
	out := make(map[string]float64, len(r))
	for _, s := range r {
		out[s.Axis] = s.Score
	}
	return out
}

// Report is the top-level output document.
type Report struct {
	Tool    string  `json:"tool"`
	Version string  `json:"version"`
	Input   Input   `json:"input"`
	Summary Summary `json:"summary"`
	Scores  Result  `json:"scores"`
}

// Input captures the parameters used for this run.
type Input struct {
	ResponsesFile string `json:"responses_file"`
	ResponsesHash string `json:"responses_hash"` // SHA-256 of the responses file
	ResponseCount int    `json:"response_count"`
	Instrument    string `json:"instrument"`
	AxesFile      string `json:"axes_file,omitempty"`
	Strict        bool   `json:"strict"`
}

// Summary holds derived figures over all axis scores.
type Summary struct {
	Mean      float64 `json:"mean"`
	Strongest string  `json:"strongest"`
	Weakest   string  `json:"weakest"`
}
