package course

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
)

var indexesForInstructorsCollection = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "courseID", Value: 1},
			{Key: "userID", Value: 1},
		},
		Options: options.Index().SetName("courseID_userID_1").SetUnique(true),
	},
	{
		Keys: bson.D{
			{Key: "courseID", Value: 1},
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetName("courseID_email_1"),
	},
}

func (dbService *CourseDBService) createIndexesForInstructorsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionInstructors(instanceID).Indexes().CreateMany(ctx, indexesForInstructorsCollection)
	return err
}

func (dbService *CourseDBService) AddInstructor(instanceID string, instructor *courseTypes.Instructor) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionInstructors(instanceID).InsertOne(ctx, instructor)
	if err != nil {
		return err
	}
	instructor.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

// GetInstructorByUserID resolves the instructor record of a user scoped
// to one course.
func (dbService *CourseDBService) GetInstructorByUserID(instanceID string, courseID string, userID string) (instructor *courseTypes.Instructor, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"courseID": courseID,
		"userID":   userID,
	}
	err = dbService.collectionInstructors(instanceID).FindOne(ctx, filter).Decode(&instructor)
	if err != nil {
		return nil, err
	}
	return instructor, nil
}

func (dbService *CourseDBService) GetInstructorsForCourse(instanceID string, courseID string) (instructors []courseTypes.Instructor, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"courseID": courseID}
	cursor, err := dbService.collectionInstructors(instanceID).Find(ctx, filter)
	if err != nil {
		return instructors, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &instructors)
	return instructors, err
}
