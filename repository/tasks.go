package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmaster/middleware"
	"taskmaster/model"
	"taskmaster/utils"
)

var ErrTaskNotFound = errors.New("task not found")

type TasksRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for TasksRepo
func GetTasksRepo(client *mongo.Client) *TasksRepo {
	dbName := utils.GetEnvAsString("MONGO_DB", "taskmaster")
	collectionName := utils.GetEnvAsString("TASKS_COLLECTION", "tasks")
	return &TasksRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateTask inserts a new task
func (r *TasksRepo) CreateTask(ctx context.Context, task *model.Task) error {
	if task.UserID == "" {
		return errors.New("user ID is required")
	}

	timer := middleware.TrackDBOperation("insert", "tasks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, task)
	return err
}

// GetUserTasks retrieves all tasks for a user
func (r *TasksRepo) GetUserTasks(ctx context.Context, userID string) ([]*model.Task, error) {
	timer := middleware.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask retrieves one task owned by the user
func (r *TasksRepo) GetTask(ctx context.Context, taskID, userID string) (*model.Task, error) {
	timer := middleware.TrackDBOperation("find_one", "tasks")
	defer timer.ObserveDuration()

	var task model.Task
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": taskID, "user_id": userID}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// UpdateTask replaces the mutable fields of a task
func (r *TasksRepo) UpdateTask(ctx context.Context, taskID, userID string, updates *model.Task) error {
	filter := bson.M{
		"_id":     taskID,
		"user_id": userID, // Ensure user owns this task
	}

	set := bson.M{
		"title":       updates.Title,
		"description": updates.Description,
		"priority":    updates.Priority,
		"completed":   updates.Completed,
		"category":    updates.Category,
		"due_date":    updates.DueDate,
		"start_time":  updates.StartTime,
		"end_time":    updates.EndTime,
		"updated_at":  time.Now(),
	}
	if updates.CompletedAt != nil {
		set["completed_at"] = *updates.CompletedAt
	}

	timer := middleware.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// DeleteTask removes a specific task
func (r *TasksRepo) DeleteTask(ctx context.Context, taskID, userID string) error {
	timer := middleware.TrackDBOperation("delete", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": taskID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// ToggleTaskComplete flips the completed flag of a task
func (r *TasksRepo) ToggleTaskComplete(ctx context.Context, taskID, userID string) (*model.Task, error) {
	task, err := r.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	now := time.Now()
	set := bson.M{
		"completed":  task.Completed,
		"updated_at": now,
	}
	if task.Completed {
		set["completed_at"] = now
		task.CompletedAt = &now
	} else {
		set["completed_at"] = nil
		task.CompletedAt = nil
	}

	timer := middleware.TrackDBOperation("update", "tasks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": taskID, "user_id": userID},
		bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// GetIncompleteDueBetween retrieves incomplete tasks across all users whose
// due date falls in the inclusive [from, to] range. Dates are "YYYY-MM-DD"
// strings, which order lexicographically.
func (r *TasksRepo) GetIncompleteDueBetween(ctx context.Context, from, to string) ([]*model.Task, error) {
	timer := middleware.TrackDBOperation("find", "tasks")
	defer timer.ObserveDuration()

	filter := bson.M{
		"completed": false,
		"due_date":  bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.MongoCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []*model.Task
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountIncompleteOverdue counts incomplete tasks across all users due before
// the given date.
func (r *TasksRepo) CountIncompleteOverdue(ctx context.Context, before string) (int64, error) {
	timer := middleware.TrackDBOperation("count", "tasks")
	defer timer.ObserveDuration()

	return r.MongoCollection.CountDocuments(ctx, bson.M{
		"completed": false,
		"due_date":  bson.M{"$gt": "", "$lt": before},
	})
}
