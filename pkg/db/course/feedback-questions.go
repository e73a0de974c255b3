package course

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
)

var indexesForFeedbackQuestionsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "courseID", Value: 1},
			{Key: "sessionName", Value: 1},
			{Key: "questionNumber", Value: 1},
		},
		Options: options.Index().SetName("courseID_sessionName_questionNumber_1").SetUnique(true),
	},
}

func (dbService *CourseDBService) createIndexesForFeedbackQuestionsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionFeedbackQuestions(instanceID).Indexes().CreateMany(ctx, indexesForFeedbackQuestionsCollection)
	return err
}

// CreateFeedbackQuestion validates and inserts one question. Question
// numbers are unique per session, enforced by the collection index.
func (dbService *CourseDBService) CreateFeedbackQuestion(instanceID string, question *courseTypes.FeedbackQuestion) (*courseTypes.FeedbackQuestion, error) {
	if err := question.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionFeedbackQuestions(instanceID).InsertOne(ctx, question)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("question number %d is already taken in session '%s'", question.QuestionNumber, question.SessionName)
		}
		return nil, err
	}
	question.ID = ret.InsertedID.(primitive.ObjectID)
	return question, nil
}

var sortByQuestionNumberAsc = bson.D{
	primitive.E{Key: "questionNumber", Value: 1},
}

// GetFeedbackQuestions returns the questions of a session ordered by
// question number ascending.
func (dbService *CourseDBService) GetFeedbackQuestions(instanceID string, courseID string, sessionName string) (questions []courseTypes.FeedbackQuestion, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"courseID":    courseID,
		"sessionName": sessionName,
	}
	opts := &options.FindOptions{}
	opts.SetSort(sortByQuestionNumberAsc)

	cursor, err := dbService.collectionFeedbackQuestions(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return questions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &questions)
	return questions, err
}
