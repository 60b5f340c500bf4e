package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bhosaleparag/tution-platform-sub000/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col      *mongo.Collection
	Counters *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{
		Col:      db.Collection("attempts"),
		Counters: db.Collection("attempt_counters"),
	}
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&attempt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

// NextAttemptNumber bumps the per-(quiz, student) counter document with an
// atomic $inc upsert, so concurrent starts for the same pair can never read
// the same value. First attempt is 1.
func (r *AttemptRepository) NextAttemptNumber(ctx context.Context, quizID, studentID string) (int, error) {
	filter := bson.M{"quiz_id": quizID, "student_id": studentID}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int `bson:"seq"`
	}
	if err := r.Counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// Complete transitions an attempt from in_progress to completed. The status
// is part of the filter, so a duplicate submit matches nothing and reports
// false instead of re-scoring an immutable attempt.
func (r *AttemptRepository) Complete(ctx context.Context, id string, completion models.AttemptCompletion) (bool, error) {
	answers := completion.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.AttemptInProgress},
		bson.M{"$set": bson.M{
			"answers":          answers,
			"score":            completion.Score,
			"correct_count":    completion.CorrectCount,
			"wrong_count":      completion.WrongCount,
			"unanswered_count": completion.UnansweredCount,
			"time_spent":       completion.TimeSpent,
			"status":           models.AttemptCompleted,
			"completed_at":     time.Now().UTC(),
		}},
	)
	if err != nil {
		return false, err
	}
	// MatchedCount, not ModifiedCount: the filter matching is what proves the
	// attempt was still in_progress.
	return res.MatchedCount > 0, nil
}

// FindCompletedByQuiz returns completed attempts ordered the way the
// leaderboard ranks them: score desc, time asc, then completion time and id
// to keep equal pairs deterministic.
func (r *AttemptRepository) FindCompletedByQuiz(ctx context.Context, quizID string) ([]models.Attempt, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "score", Value: -1},
		{Key: "time_spent", Value: 1},
		{Key: "completed_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	return r.findCompleted(ctx, bson.M{"quiz_id": quizID, "status": models.AttemptCompleted}, opts)
}

func (r *AttemptRepository) FindCompletedByStudent(ctx context.Context, studentID string) ([]models.Attempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: -1}})
	return r.findCompleted(ctx, bson.M{"student_id": studentID, "status": models.AttemptCompleted}, opts)
}

func (r *AttemptRepository) findCompleted(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Attempt, error) {
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.Attempt
	for cur.Next(ctx) {
		var a models.Attempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, cur.Err()
}

func (r *AttemptRepository) HasCompleted(ctx context.Context, quizID, studentID string) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{
		"quiz_id":    quizID,
		"student_id": studentID,
		"status":     models.AttemptCompleted,
	}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *AttemptRepository) CountInProgress(ctx context.Context, quizID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{
		"quiz_id": quizID,
		"status":  models.AttemptInProgress,
	})
}
