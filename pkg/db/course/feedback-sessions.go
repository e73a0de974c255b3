package course

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
)

// ErrSessionAlreadyExists signals that a feedback session with the same
// (course, name) identity is already stored.
var ErrSessionAlreadyExists = errors.New("feedback session already exists for this course")

var indexesForFeedbackSessionsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "courseID", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("courseID_name_1").SetUnique(true),
	},
	{
		Keys: bson.D{
			{Key: "courseID", Value: 1},
			{Key: "submissionEnd", Value: -1},
		},
		Options: options.Index().SetName("courseID_submissionEnd_1"),
	},
}

func (dbService *CourseDBService) createIndexesForFeedbackSessionsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionFeedbackSessions(instanceID).Indexes().CreateMany(ctx, indexesForFeedbackSessionsCollection)
	return err
}

// CreateFeedbackSession validates and inserts the session. The unique
// index on (courseID, name) is the sole duplicate check, so concurrent
// creators race on the insert and the loser gets ErrSessionAlreadyExists.
func (dbService *CourseDBService) CreateFeedbackSession(instanceID string, session *courseTypes.FeedbackSession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	ret, err := dbService.collectionFeedbackSessions(instanceID).InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSessionAlreadyExists
		}
		return err
	}
	session.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *CourseDBService) GetFeedbackSession(instanceID string, courseID string, sessionName string) (session *courseTypes.FeedbackSession, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"courseID": courseID,
		"name":     sessionName,
	}
	err = dbService.collectionFeedbackSessions(instanceID).FindOne(ctx, filter).Decode(&session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

var sortBySubmissionEndDesc = bson.D{
	primitive.E{Key: "submissionEnd", Value: -1},
}

func (dbService *CourseDBService) GetFeedbackSessionsForCourse(instanceID string, courseID string) (sessions []courseTypes.FeedbackSession, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"courseID": courseID}
	opts := &options.FindOptions{}
	opts.SetSort(sortBySubmissionEndDesc)

	cursor, err := dbService.collectionFeedbackSessions(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return sessions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &sessions)
	return sessions, err
}
