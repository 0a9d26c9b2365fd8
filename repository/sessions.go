package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmaster/middleware"
	"taskmaster/model"
	"taskmaster/utils"
)

var ErrSessionNotFound = errors.New("class session not found")

type SessionsRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for SessionsRepo
func GetSessionsRepo(client *mongo.Client) *SessionsRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "taskmaster")
	collectionName := utils.GetEnvAsString("SESSIONS_COLLECTION", "class_sessions")
	return &SessionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateSessions bulk-inserts the sessions materialized for one subject
func (r *SessionsRepo) CreateSessions(ctx context.Context, sessions []*model.ClassSession) error {
	if len(sessions) == 0 {
		return nil
	}

	docs := make([]interface{}, len(sessions))
	for i, s := range sessions {
		docs[i] = s
	}

	timer := middleware.TrackDBOperation("insert_many", "class_sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertMany(ctx, docs)
	return err
}

// GetSubjectSessions retrieves the sessions of one subject ordered by date
func (r *SessionsRepo) GetSubjectSessions(ctx context.Context, subjectID, userID string) ([]*model.ClassSession, error) {
	timer := middleware.TrackDBOperation("find", "class_sessions")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"subject_id": subjectID, "user_id": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.ClassSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// GetUserSessionsInRange retrieves a user's sessions with dates inside the
// inclusive [from, to] range ("YYYY-MM-DD" strings sort lexicographically)
func (r *SessionsRepo) GetUserSessionsInRange(ctx context.Context, userID, from, to string) ([]*model.ClassSession, error) {
	timer := middleware.TrackDBOperation("find", "class_sessions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.MongoCollection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.ClassSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateSession sets the attendance flag and notes of one session
func (r *SessionsRepo) UpdateSession(ctx context.Context, sessionID, userID string, attended bool, notes string) error {
	timer := middleware.TrackDBOperation("update", "class_sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": sessionID, "user_id": userID},
		bson.M{"$set": bson.M{"attended": attended, "notes": notes}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSubjectSessions removes every session belonging to a subject, used
// when the subject is deleted or its schedule is regenerated
func (r *SessionsRepo) DeleteSubjectSessions(ctx context.Context, subjectID, userID string) (int64, error) {
	timer := middleware.TrackDBOperation("delete_many", "class_sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"subject_id": subjectID, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
