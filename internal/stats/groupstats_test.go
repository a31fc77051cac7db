package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgpulse/internal/model"
)

func TestGroupStatsExcludesMissingDimension(t *testing.T) {
	answers := []model.Answer{
		{SurveyID: "s1", Department: strPtr("技术部"), TotalScore: floatPtr(8)},
		{SurveyID: "s1", TotalScore: floatPtr(5)},
	}

	stats, err := GroupStats(answers, DimensionDepartment)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "技术部", stats[0].Key)
	assert.Equal(t, 1, stats[0].Count)
	assert.Equal(t, 8.0, stats[0].TotalScoreSum)
	assert.Equal(t, 8.0, stats[0].AverageScore)
}

func TestGroupStatsAveragesAndNilTotals(t *testing.T) {
	answers := []model.Answer{
		{Department: strPtr("技术部"), TotalScore: floatPtr(8)},
		{Department: strPtr("技术部"), TotalScore: floatPtr(4)},
		{Department: strPtr("技术部")}, // no stored total; still counted
		{Department: strPtr("市场部"), TotalScore: floatPtr(6)},
	}

	stats, err := GroupStats(answers, DimensionDepartment)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, 3, stats[0].Count)
	assert.Equal(t, 12.0, stats[0].TotalScoreSum)
	assert.Equal(t, 4.0, stats[0].AverageScore)
	assert.Equal(t, "市场部", stats[1].Key)
	assert.Equal(t, 6.0, stats[1].AverageScore)
}

func TestGroupStatsOrganizationResolution(t *testing.T) {
	answers := []model.Answer{
		{OrganizationName: strPtr("集团总部"), TotalScore: floatPtr(10)},
		{OrganizationID: strPtr("42"), TotalScore: floatPtr(4)},
		{TotalScore: floatPtr(2)},
	}

	stats, err := GroupStats(answers, DimensionOrganization)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, "集团总部", stats[0].Key)
	assert.Equal(t, "组织#42", stats[1].Key)
	assert.Equal(t, "未知组织", stats[2].Key)
}

func TestGroupStatsInvalidDimension(t *testing.T) {
	_, err := GroupStats(nil, Dimension("salary"))
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestPerQuestionScores(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion("1",
			model.Option{Text: "非常满意", Score: floatPtr(5)},
			model.Option{Text: "不满意", Score: floatPtr(1)},
		),
		{ID: "2", Text: "q2", Type: model.QuestionTypeTextInput},
	}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{"1":"非常满意","2":"有话说"}`},
		{Department: strPtr("技术部"), Answers: `{"1":"不满意"}`},
		{Department: strPtr("市场部"), Answers: `{"1":"非常满意","2":""}`},
		{Department: strPtr("技术部"), Answers: `{corrupt`},
	}

	scores := PerQuestionScores(questions, answers, nil, nil)
	require.Len(t, scores, 2)

	assert.Equal(t, "1", scores[0].QuestionID)
	assert.Equal(t, 3, scores[0].ResponseCount)
	assert.Equal(t, 11.0, scores[0].TotalScore)
	assert.Equal(t, 3.67, scores[0].AvgScore)

	// Text answers count responses but never score; empty strings don't count.
	assert.Equal(t, 1, scores[1].ResponseCount)
	assert.Equal(t, 0.0, scores[1].TotalScore)
}

func TestPerQuestionScoresFilters(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion("1", model.Option{Text: "好", Score: floatPtr(3)}),
	}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Position: strPtr("工程师"), Answers: `{"1":"好"}`},
		{Department: strPtr("市场部"), Position: strPtr("工程师"), Answers: `{"1":"好"}`},
		{Answers: `{"1":"好"}`},
	}

	scores := PerQuestionScores(questions, answers, strPtr("技术部"), nil)
	assert.Equal(t, 1, scores[0].ResponseCount)

	scores = PerQuestionScores(questions, answers, nil, strPtr("工程师"))
	assert.Equal(t, 2, scores[0].ResponseCount)

	scores = PerQuestionScores(questions, answers, strPtr("技术部"), strPtr("销售"))
	assert.Equal(t, 0, scores[0].ResponseCount)
}

func TestPerQuestionScoresNoQuestions(t *testing.T) {
	assert.Empty(t, PerQuestionScores(nil, []model.Answer{{Answers: `{"1":"x"}`}}, nil, nil))
}
