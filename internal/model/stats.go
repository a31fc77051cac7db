package model

// Derived aggregate shapes returned to the dashboard layer. Field names
// follow the established wire contract of the analytics API, which
// predates this service.

// GroupStat is one dimension bucket of survey-level totals.
type GroupStat struct {
	Dimension     string  `json:"dimension"`
	Key           string  `json:"key"`
	Count         int     `json:"count"`
	TotalScoreSum float64 `json:"total_score_sum"`
	AverageScore  float64 `json:"average_score"`
}

// QuestionScore summarizes recomputed scores for one question.
type QuestionScore struct {
	QuestionID    string  `json:"question_id"`
	QuestionText  string  `json:"question_text"`
	ResponseCount int     `json:"response_count"`
	TotalScore    float64 `json:"total_score"`
	AvgScore      float64 `json:"avg_score"`
}

// Series is one named line on a line chart, aligned to the categories axis.
type Series struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

// LineSeries is the chart payload: one category per observed dimension
// value, one series per requested measure.
type LineSeries struct {
	Categories []string `json:"categories"`
	Series     []Series `json:"series"`
}

// BreakdownEntry is a single named count.
type BreakdownEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DistributionBucket is one option (or sentinel) bucket with its
// per-dimension breakdown.
type DistributionBucket struct {
	Name      string           `json:"name"`
	Value     int              `json:"value"`
	Breakdown []BreakdownEntry `json:"breakdown"`
}

// QuestionDistribution is the full option-selection distribution for
// one question.
type QuestionDistribution struct {
	ID    string               `json:"id"`
	Title string               `json:"title"`
	Type  QuestionType         `json:"type"`
	Data  []DistributionBucket `json:"data"`
}

// PieDistribution is the single-option pie view.
type PieDistribution struct {
	Option    string           `json:"option"`
	Dimension string           `json:"dimension"`
	Data      []BreakdownEntry `json:"data"`
}
