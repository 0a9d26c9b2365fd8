package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"taskmaster/middleware"
	"taskmaster/model"
	"taskmaster/utils"
)

var ErrSubjectNotFound = errors.New("subject not found")

type SubjectsRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for SubjectsRepo
func GetSubjectsRepo(client *mongo.Client) *SubjectsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "taskmaster")
	collectionName := utils.GetEnvAsString("SUBJECTS_COLLECTION", "subjects")
	return &SubjectsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateSubject inserts a new subject
func (r *SubjectsRepo) CreateSubject(ctx context.Context, subject *model.Subject) error {
	if subject.UserID == "" {
		return errors.New("user ID is required")
	}

	timer := middleware.TrackDBOperation("insert", "subjects")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, subject)
	return err
}

// GetUserSubjects retrieves all subjects for a user
func (r *SubjectsRepo) GetUserSubjects(ctx context.Context, userID string) ([]*model.Subject, error) {
	timer := middleware.TrackDBOperation("find", "subjects")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subjects []*model.Subject
	if err = cursor.All(ctx, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// GetSubject retrieves one subject owned by the user
func (r *SubjectsRepo) GetSubject(ctx context.Context, subjectID, userID string) (*model.Subject, error) {
	timer := middleware.TrackDBOperation("find_one", "subjects")
	defer timer.ObserveDuration()

	var subject model.Subject
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": subjectID, "user_id": userID}).Decode(&subject)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// UpdateSubject replaces the mutable fields of a subject
func (r *SubjectsRepo) UpdateSubject(ctx context.Context, subjectID, userID string, updates *model.Subject) error {
	filter := bson.M{
		"_id":     subjectID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"name":       updates.Name,
			"code":       updates.Code,
			"instructor": updates.Instructor,
			"location":   updates.Location,
			"color":      updates.Color,
			"type":       updates.Type,
			"time_slots": updates.TimeSlots,
			"semester":   updates.Semester,
			"from_date":  updates.FromDate,
			"to_date":    updates.ToDate,
			"updated_at": time.Now(),
		},
	}

	timer := middleware.TrackDBOperation("update", "subjects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSubjectNotFound
	}
	return nil
}

// DeleteSubject removes a specific subject
func (r *SubjectsRepo) DeleteSubject(ctx context.Context, subjectID, userID string) error {
	timer := middleware.TrackDBOperation("delete", "subjects")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": subjectID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrSubjectNotFound
	}
	return nil
}
