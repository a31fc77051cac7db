package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"orgpulse/internal/model"
)

// AnswerRepo is the answer store. Answers are written once at
// submission; there is no update path.
type AnswerRepo interface {
	Create(ctx context.Context, answer *model.Answer) (string, error)
	GetByID(ctx context.Context, id string) (*model.Answer, error)
	ListBySurveyID(ctx context.Context, surveyID string, filter *model.AnswerFilter) ([]model.Answer, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{collection: db.Collection("answers")}
}

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) (string, error) {
	if answer.ID == "" {
		answer.ID = primitive.NewObjectID().Hex()
	}
	if answer.SubmittedAt.IsZero() {
		answer.SubmittedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, answer)
	if err != nil {
		return "", err
	}
	return answer.ID, nil
}

func (r *answerRepo) GetByID(ctx context.Context, id string) (*model.Answer, error) {
	var answer model.Answer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&answer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepo) ListBySurveyID(ctx context.Context, surveyID string, filter *model.AnswerFilter) ([]model.Answer, error) {
	query := bson.M{"surveyId": surveyID}
	if filter != nil {
		if filter.Department != nil {
			query["department"] = *filter.Department
		}
		if filter.Position != nil {
			query["position"] = *filter.Position
		}
		if len(filter.OrganizationIDs) > 0 {
			query["organizationId"] = bson.M{"$in": filter.OrganizationIDs}
		}
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []model.Answer
	if err = cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
