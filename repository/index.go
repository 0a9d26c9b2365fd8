package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tasksCollection := db.Collection("tasks")
	subjectsCollection := db.Collection("subjects")
	sessionsCollection := db.Collection("class_sessions")

	taskIndexes := []mongo.IndexModel{
		// Basic user-date index
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_tasks_date").
				SetUnique(false),
		},
		// Due-date scans for conflicts, calendar ranges and reminders
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "due_date", Value: 1},
			},
			Options: options.Index().
				SetName("user_tasks_due"),
		},
		{
			Keys: bson.D{
				{Key: "completed", Value: 1},
				{Key: "due_date", Value: 1},
			},
			Options: options.Index().
				SetName("reminder_scan"),
		},
	}

	subjectIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("user_sessions_date"),
		},
		{
			Keys: bson.D{
				{Key: "subject_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("subject_sessions_date"),
		},
	}

	if _, err := tasksCollection.Indexes().CreateMany(ctx, taskIndexes); err != nil {
		return fmt.Errorf("failed to create tasks indexes: %w", err)
	}
	if _, err := subjectsCollection.Indexes().CreateMany(ctx, subjectIndexes); err != nil {
		return fmt.Errorf("failed to create subjects indexes: %w", err)
	}
	if _, err := sessionsCollection.Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create class_sessions indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
