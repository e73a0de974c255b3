package course

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursedesk/course-backend/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_COURSES            = "courses"
	COLLECTION_NAME_INSTRUCTORS        = "instructors"
	COLLECTION_NAME_STUDENTS           = "students"
	COLLECTION_NAME_FEEDBACK_SESSIONS  = "feedbackSessions"
	COLLECTION_NAME_FEEDBACK_QUESTIONS = "feedbackQuestions"
)

type CourseDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	InstanceIDs  []string
}

func NewCourseDBService(configs db.DBConfig) (*CourseDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()
	if err != nil {
		return nil, err
	}

	courseDBSc := &CourseDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		InstanceIDs:  configs.InstanceIDs,
	}

	if err := courseDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for course DB", slog.String("error", err.Error()))
	}

	return courseDBSc, nil
}

func (dbService *CourseDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_courseDB"
}

func (dbService *CourseDBService) collectionCourses(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_COURSES)
}

func (dbService *CourseDBService) collectionInstructors(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_INSTRUCTORS)
}

func (dbService *CourseDBService) collectionStudents(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_STUDENTS)
}

func (dbService *CourseDBService) collectionFeedbackSessions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_FEEDBACK_SESSIONS)
}

func (dbService *CourseDBService) collectionFeedbackQuestions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_FEEDBACK_QUESTIONS)
}

func (dbService *CourseDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *CourseDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for course DB")
	for _, instanceID := range dbService.InstanceIDs {
		if err := dbService.createIndexesForInstructorsCollection(instanceID); err != nil {
			slog.Error("Error creating indexes for instructors", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
		if err := dbService.createIndexesForStudentsCollection(instanceID); err != nil {
			slog.Error("Error creating indexes for students", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
		if err := dbService.createIndexesForFeedbackSessionsCollection(instanceID); err != nil {
			slog.Error("Error creating indexes for feedback sessions", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
		if err := dbService.createIndexesForFeedbackQuestionsCollection(instanceID); err != nil {
			slog.Error("Error creating indexes for feedback questions", slog.String("error", err.Error()), slog.String("instanceID", instanceID))
		}
	}
	return nil
}
