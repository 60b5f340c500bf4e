package repository

import (
	"context"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// FindByQuiz returns the quiz's questions in question-number order, answer
// key included. Callers showing questions to students must Sanitize them.
func (r *QuestionRepository) FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "question_number", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"quiz_id": quizID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) InsertMany(ctx context.Context, questions []models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	docs := make([]any, 0, len(questions))
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, questions[i])
	}
	_, err := r.Col.InsertMany(ctx, docs)
	return err
}

func (r *QuestionRepository) DeleteByQuiz(ctx context.Context, quizID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"quiz_id": quizID})
	return err
}
