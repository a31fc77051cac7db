package stats

import "orgpulse/internal/model"

// bucketCounts is an insertion-ordered counter of dimension keys
type bucketCounts struct {
	order  []string
	counts map[string]int
}

func newBucketCounts() *bucketCounts {
	return &bucketCounts{counts: map[string]int{}}
}

func (b *bucketCounts) bump(key string) {
	if _, ok := b.counts[key]; !ok {
		b.order = append(b.order, key)
	}
	b.counts[key]++
}

func (b *bucketCounts) entries() (int, []model.BreakdownEntry) {
	total := 0
	breakdown := make([]model.BreakdownEntry, 0, len(b.order))
	for _, key := range b.order {
		total += b.counts[key]
		breakdown = append(breakdown, model.BreakdownEntry{Name: key, Value: b.counts[key]})
	}
	return total, breakdown
}

// questionBuckets accumulates one question's option buckets in
// declaration order, growing on the fly for selections that no longer
// match a declared option.
type questionBuckets struct {
	question *model.Question
	order    []string
	buckets  map[string]*bucketCounts
}

func newQuestionBuckets(q *model.Question) *questionBuckets {
	acc := &questionBuckets{question: q, buckets: map[string]*bucketCounts{}}
	if q.Type.IsChoice() && len(q.Options) > 0 {
		for _, opt := range q.Options {
			acc.ensure(opt.Text)
		}
	} else {
		acc.ensure(AnsweredBucket)
	}
	acc.ensure(UnansweredBucket)
	return acc
}

func (a *questionBuckets) ensure(name string) *bucketCounts {
	bucket, ok := a.buckets[name]
	if !ok {
		bucket = newBucketCounts()
		a.buckets[name] = bucket
		a.order = append(a.order, name)
	}
	return bucket
}

// OptionDistribution counts option selections per question with a
// breakdown over the given dimension, every dimension resolving
// through the sentinel-substituting rule. Answers whose blob is
// missing or unparseable credit every question's unanswered bucket for
// that respondent's key. Selections that match no declared option get
// a bucket of their own, so distributions survive option edits made
// after answers were collected.
func OptionDistribution(questions []model.Question, answers []model.Answer, dim Dimension) ([]model.QuestionDistribution, error) {
	if !dim.Valid() {
		return nil, ErrInvalidDimension
	}
	if len(questions) == 0 {
		return []model.QuestionDistribution{}, nil
	}

	accs := make([]*questionBuckets, 0, len(questions))
	for i := range questions {
		accs = append(accs, newQuestionBuckets(&questions[i]))
	}

	for i := range answers {
		a := &answers[i]
		key := resolveKey(a, dim)

		decoded := DecodeAnswers(a.Answers)
		if decoded == nil {
			for _, acc := range accs {
				acc.ensure(UnansweredBucket).bump(key)
			}
			continue
		}

		for _, acc := range accs {
			v, ok := decoded[acc.question.ID]
			if !ok || !v.IsAnswered() {
				acc.ensure(UnansweredBucket).bump(key)
				continue
			}
			if acc.question.Type.IsChoice() {
				for _, selected := range v.Selections() {
					acc.ensure(selected).bump(key)
				}
			} else {
				acc.ensure(AnsweredBucket).bump(key)
			}
		}
	}

	result := make([]model.QuestionDistribution, 0, len(accs))
	for _, acc := range accs {
		data := make([]model.DistributionBucket, 0, len(acc.order))
		for _, name := range acc.order {
			total, breakdown := acc.buckets[name].entries()
			data = append(data, model.DistributionBucket{Name: name, Value: total, Breakdown: breakdown})
		}
		result = append(result, model.QuestionDistribution{
			ID:    acc.question.ID,
			Title: acc.question.Text,
			Type:  acc.question.Type,
			Data:  data,
		})
	}
	return result, nil
}
