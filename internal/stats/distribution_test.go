package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgpulse/internal/model"
)

func bucketByName(t *testing.T, dist model.QuestionDistribution, name string) model.DistributionBucket {
	t.Helper()
	for _, bucket := range dist.Data {
		if bucket.Name == name {
			return bucket
		}
	}
	t.Fatalf("bucket %q not found in %s", name, dist.ID)
	return model.DistributionBucket{}
}

func TestOptionDistributionTextQuestion(t *testing.T) {
	questions := []model.Question{{ID: "1", Text: "建议", Type: model.QuestionTypeTextInput}}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{"1":""}`},
		{Department: strPtr("技术部"), Answers: `{"1":"hello"}`},
	}

	dists, err := OptionDistribution(questions, answers, DimensionDepartment)
	require.NoError(t, err)
	require.Len(t, dists, 1)

	answered := bucketByName(t, dists[0], AnsweredBucket)
	unanswered := bucketByName(t, dists[0], UnansweredBucket)
	assert.Equal(t, 1, answered.Value)
	assert.Equal(t, 1, unanswered.Value)
	assert.Equal(t, []model.BreakdownEntry{{Name: "技术部", Value: 1}}, answered.Breakdown)
}

func TestOptionDistributionChoiceBuckets(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion("1",
			model.Option{Text: "非常满意", Score: floatPtr(5)},
			model.Option{Text: "不满意", Score: floatPtr(1)},
		),
	}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{"1":"非常满意"}`},
		{Department: strPtr("市场部"), Answers: `{"1":"非常满意"}`},
		{Department: strPtr("技术部"), Answers: `{"1":"已删除的旧选项"}`},
		{Department: strPtr("技术部"), Answers: `{}`},
		{Position: strPtr("无部门"), Answers: `{"1":"不满意"}`},
	}

	dists, err := OptionDistribution(questions, answers, DimensionDepartment)
	require.NoError(t, err)
	dist := dists[0]

	// Declared options first, then the unanswered sentinel, then on-the-fly buckets.
	require.Len(t, dist.Data, 4)
	assert.Equal(t, "非常满意", dist.Data[0].Name)
	assert.Equal(t, "不满意", dist.Data[1].Name)
	assert.Equal(t, UnansweredBucket, dist.Data[2].Name)
	assert.Equal(t, "已删除的旧选项", dist.Data[3].Name)

	assert.Equal(t, 2, dist.Data[0].Value)
	assert.ElementsMatch(t, []model.BreakdownEntry{
		{Name: "技术部", Value: 1},
		{Name: "市场部", Value: 1},
	}, dist.Data[0].Breakdown)

	// Missing department buckets under the sentinel here, unlike GroupStats.
	assert.Equal(t, []model.BreakdownEntry{{Name: "未知部门", Value: 1}}, dist.Data[1].Breakdown)
	assert.Equal(t, []model.BreakdownEntry{{Name: "技术部", Value: 1}}, dist.Data[2].Breakdown)

	// Bucket totals partition the five answers exactly for a single-choice question.
	total := 0
	for _, bucket := range dist.Data {
		total += bucket.Value
	}
	assert.Equal(t, len(answers), total)
}

func TestOptionDistributionCorruptBlob(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion("1", model.Option{Text: "a"}),
		{ID: "2", Text: "q2", Type: model.QuestionTypeNumberInput},
	}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{broken`},
		{Department: strPtr("技术部"), Answers: ``},
	}

	dists, err := OptionDistribution(questions, answers, DimensionDepartment)
	require.NoError(t, err)
	for _, dist := range dists {
		unanswered := bucketByName(t, dist, UnansweredBucket)
		assert.Equal(t, 2, unanswered.Value, "question %s", dist.ID)
	}
}

func TestOptionDistributionMultiChoiceCountsPerSelection(t *testing.T) {
	questions := []model.Question{{
		ID:   "1",
		Text: "多选",
		Type: model.QuestionTypeMultiChoice,
		Options: []model.Option{
			{Text: "薪资"}, {Text: "环境"},
		},
	}}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{"1":["薪资","环境"]}`},
	}

	dists, err := OptionDistribution(questions, answers, DimensionDepartment)
	require.NoError(t, err)

	// One count per selected option: totals may exceed the answer count.
	total := 0
	for _, bucket := range dists[0].Data {
		total += bucket.Value
	}
	assert.Equal(t, 2, total)
	assert.Equal(t, 0, bucketByName(t, dists[0], UnansweredBucket).Value)
}

func TestOptionDistributionNumberAnswerOnChoice(t *testing.T) {
	questions := []model.Question{
		singleChoiceQuestion("1", model.Option{Text: "3"}),
	}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{"1":3}`},
	}

	dists, err := OptionDistribution(questions, answers, DimensionDepartment)
	require.NoError(t, err)
	assert.Equal(t, 1, bucketByName(t, dists[0], "3").Value)
}

func TestOptionDistributionInvalidDimension(t *testing.T) {
	_, err := OptionDistribution(nil, nil, Dimension("age"))
	assert.ErrorIs(t, err, ErrInvalidDimension)
}

func TestPieOptionDistribution(t *testing.T) {
	questions := []model.Question{
		{
			ID:   "1",
			Text: "多选",
			Type: model.QuestionTypeMultiChoice,
			Options: []model.Option{
				{Text: "薪资"}, {Text: "环境"},
			},
		},
	}
	answers := []model.Answer{
		{Department: strPtr("技术部"), Answers: `{"1":["薪资","环境"]}`},
		{Department: strPtr("市场部"), Answers: `{"1":["环境"]}`},
		{Department: strPtr("技术部"), Answers: `{"1":[]}`},
		{Department: strPtr("市场部"), Answers: ``},
	}

	pie, err := PieOptionDistribution(questions, answers, "1", "环境", DimensionDepartment, true)
	require.NoError(t, err)
	assert.Equal(t, "环境", pie.Option)
	assert.ElementsMatch(t, []model.BreakdownEntry{
		{Name: UnansweredBucket, Value: 2},
		{Name: "技术部", Value: 1},
		{Name: "市场部", Value: 1},
	}, pie.Data)

	pie, err = PieOptionDistribution(questions, answers, "1", "薪资", DimensionDepartment, false)
	require.NoError(t, err)
	assert.Equal(t, []model.BreakdownEntry{{Name: "技术部", Value: 1}}, pie.Data)
}

func TestPieOptionDistributionUnknownQuestion(t *testing.T) {
	pie, err := PieOptionDistribution(nil, []model.Answer{{Answers: `{"1":"x"}`}}, "1", "x", DimensionDepartment, true)
	require.NoError(t, err)
	assert.Empty(t, pie.Data)
}

func TestPieOptionDistributionInvalidDimension(t *testing.T) {
	_, err := PieOptionDistribution(nil, nil, "1", "x", Dimension("region"), true)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
