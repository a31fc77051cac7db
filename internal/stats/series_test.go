package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgpulse/internal/model"
)

func TestLineSeriesCategoriesIncludeUnknown(t *testing.T) {
	answers := []model.Answer{
		{Department: strPtr("技术部"), TotalScore: floatPtr(8)},
		{Department: strPtr("市场部"), TotalScore: floatPtr(4)},
		{TotalScore: floatPtr(6)},
	}

	series, err := LineSeries(nil, answers, DimensionDepartment, nil, true)
	require.NoError(t, err)
	// Sorted, with the unknown sentinel bucketed rather than excluded.
	assert.Equal(t, []string{"市场部", "技术部", "未知部门"}, series.Categories)
	require.Len(t, series.Series, 1)
	assert.Equal(t, SurveyTotalSeriesName, series.Series[0].Name)
	assert.Equal(t, []float64{4, 8, 6}, series.Series[0].Data)
}

func TestLineSeriesSkipsUnscoredQuestions(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion("1",
			model.Option{Text: "非常满意", Score: floatPtr(5)},
			model.Option{Text: "不满意", Score: floatPtr(1)},
		),
		// Choice question with no declared weights: silently skipped.
		singleChoiceQuestion("2", model.Option{Text: "无分值"}),
		{ID: "3", Text: "q3", Type: model.QuestionTypeTextInput},
	}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{"1":"非常满意","2":"无分值","3":"文字"}`},
		{Department: strPtr("技术部"), Answers: `{"1":"不满意"}`},
		{Department: strPtr("市场部"), Answers: `{"1":"非常满意"}`},
	}

	series, err := LineSeries(questions, answers, DimensionDepartment, []string{"1", "2", "3", "404"}, false)
	require.NoError(t, err)
	require.Len(t, series.Series, 1)
	assert.Equal(t, "Q1 q1", series.Series[0].Name)
	assert.Equal(t, []float64{5, 3}, series.Series[0].Data)
}

func TestLineSeriesNilTotalsExcludedFromAverage(t *testing.T) {
	answers := []model.Answer{
		{Position: strPtr("工程师"), TotalScore: floatPtr(10)},
		{Position: strPtr("工程师")},
	}

	series, err := LineSeries(nil, answers, DimensionPosition, nil, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, series.Series[0].Data)
}

func TestLineSeriesInvalidDimension(t *testing.T) {
	_, err := LineSeries(nil, nil, Dimension("tenure"), nil, false)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
