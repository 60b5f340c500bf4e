package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Documents are stored with hex-string _id values generated here, so the
// string ID fields on the models round-trip through the driver unchanged.
type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Quiz, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

// FindPublished lists published quizzes, optionally narrowed to a class
// and/or subject.
func (r *QuizRepository) FindPublished(ctx context.Context, classID, subjectID string) ([]models.Quiz, error) {
	filter := bson.M{"is_published": true}
	if classID != "" {
		filter["class_id"] = classID
	}
	if subjectID != "" {
		filter["subject_id"] = subjectID
	}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, cur.Err()
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

// UpdateTotals refreshes the published totals after the question set changed.
// Only the quiz document moves; attempt snapshots keep their own total_marks.
func (r *QuizRepository) UpdateTotals(ctx context.Context, id string, totalMarks, questionsCount int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"total_marks":     totalMarks,
		"questions_count": questionsCount,
		"updated_at":      time.Now().UTC(),
	}})
	return err
}
