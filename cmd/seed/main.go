package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"orgpulse/internal/model"
	"orgpulse/internal/repository"
	"orgpulse/internal/stats"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

var departments = []string{"技术部", "产品部", "市场部", "人事部"}
var positions = []string{"专员", "主管", "经理"}

type org struct {
	id   string
	name string
}

var orgs = []org{
	{"org-1", "集团总部"},
	{"org-2", "华东分公司"},
	{"org-3", "华南分公司"},
}

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "orgpulse"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	surveyRepo := repository.NewSurveyRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	answerRepo := repository.NewAnswerRepo(db)

	survey := &model.Survey{
		AdminID:     "admin_demo",
		Title:       "员工满意度调研",
		Description: "季度组织氛围与满意度调查",
	}
	surveyID, err := surveyRepo.Create(ctx, survey)
	if err != nil {
		log.Fatalf("Failed to insert survey: %v", err)
	}

	questions := []*model.Question{
		{
			SurveyID: surveyID,
			Text:     "您对目前的工作满意吗?",
			Type:     model.QuestionTypeSingleChoice,
			Order:    1,
			Options: []model.Option{
				{Text: "非常满意", Score: floatPtr(5)},
				{Text: "满意", Score: floatPtr(4)},
				{Text: "一般", Score: floatPtr(3)},
				{Text: "不满意", Score: floatPtr(1)},
			},
		},
		{
			SurveyID: surveyID,
			Text:     "您认为公司最需要改进的方面有哪些?",
			Type:     model.QuestionTypeMultiChoice,
			Order:    2,
			Options: []model.Option{
				{Text: "薪资待遇", Score: floatPtr(2)},
				{Text: "办公环境", Score: floatPtr(4)},
				{Text: "晋升机制", Score: floatPtr(3)},
				{Text: "团队氛围", Score: floatPtr(1)},
			},
		},
		{
			SurveyID: surveyID,
			Text:     "您还有什么其他建议?",
			Type:     model.QuestionTypeTextInput,
			Order:    3,
		},
		{
			SurveyID: surveyID,
			Text:     "您在公司工作了几年?",
			Type:     model.QuestionTypeNumberInput,
			Order:    4,
		},
	}

	for _, q := range questions {
		if err := stats.ValidateQuestion(q); err != nil {
			log.Fatalf("Invalid seed question %q: %v", q.Text, err)
		}
		if _, err := questionRepo.Create(ctx, q); err != nil {
			log.Fatalf("Failed to insert question: %v", err)
		}
	}

	// Follow-up shown only to respondents who picked 不满意 above
	followUp := &model.Question{
		SurveyID:         surveyID,
		Text:             "导致您不满意的主要原因是什么?",
		Type:             model.QuestionTypeConditional,
		Order:            5,
		ParentQuestionID: &questions[0].ID,
		TriggerOptions:   []model.TriggerOption{{OptionText: "不满意"}},
	}
	if err := stats.ValidateQuestion(followUp); err != nil {
		log.Fatalf("Invalid follow-up question: %v", err)
	}
	if _, err := questionRepo.Create(ctx, followUp); err != nil {
		log.Fatalf("Failed to insert follow-up question: %v", err)
	}

	all := make([]model.Question, 0, len(questions)+1)
	for _, q := range questions {
		all = append(all, *q)
	}
	all = append(all, *followUp)
	if err := stats.ValidateQuestionGraph(all); err != nil {
		log.Fatalf("Seed question graph invalid: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	count := 0
	for i := 0; i < 60; i++ {
		satisfaction := questions[0].Options[rng.Intn(len(questions[0].Options))]

		blob := map[string]interface{}{
			questions[0].ID: satisfaction.Text,
			questions[1].ID: pickMulti(rng, questions[1].Options),
			questions[3].ID: rng.Intn(10) + 1,
		}
		if rng.Intn(2) == 0 {
			blob[questions[2].ID] = "希望多组织团队活动"
		}
		// Only answer the follow-up when its trigger actually fired
		if stats.IsActive(followUp, stats.TextValue(satisfaction.Text)) {
			blob[followUp.ID] = "加班太多"
		}

		encoded, err := json.Marshal(blob)
		if err != nil {
			log.Fatalf("Failed to encode answers: %v", err)
		}

		decoded := stats.DecodeAnswers(string(encoded))
		total := stats.TotalScoreForSurvey(all, decoded)

		answer := &model.Answer{
			SurveyID:   surveyID,
			Answers:    string(encoded),
			TotalScore: &total,
		}
		if rng.Intn(10) > 0 { // a few respondents skip the attributes
			answer.Department = strPtr(departments[rng.Intn(len(departments))])
			answer.Position = strPtr(positions[rng.Intn(len(positions))])
			o := orgs[rng.Intn(len(orgs))]
			answer.OrganizationID = strPtr(o.id)
			answer.OrganizationName = strPtr(o.name)
		}

		if _, err := answerRepo.Create(ctx, answer); err != nil {
			log.Fatalf("Failed to insert answer: %v", err)
		}
		count++
	}

	fmt.Printf("Seeded survey %s (%q) with %d questions and %d answers\n",
		surveyID, survey.Title, len(all), count)
}

func pickMulti(rng *rand.Rand, options []model.Option) []string {
	picked := []string{}
	for _, o := range options {
		if rng.Intn(2) == 0 {
			picked = append(picked, o.Text)
		}
	}
	if len(picked) == 0 {
		picked = append(picked, options[0].Text)
	}
	return picked
}
