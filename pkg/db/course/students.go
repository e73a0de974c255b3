package course

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
)

var indexesForStudentsCollection = []mongo.IndexModel{
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
			{Key: "team", Value: 1},
		},
		Options: options.Index().SetName("courseID_team_1"),
	},
}

func (dbService *CourseDBService) createIndexesForStudentsCollection(instanceID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionStudents(instanceID).Indexes().CreateMany(ctx, indexesForStudentsCollection)
	return err
}

func (dbService *CourseDBService) AddStudent(instanceID string, student courseTypes.Student) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionStudents(instanceID).InsertOne(ctx, student)
	return err
}

func (dbService *CourseDBService) CountStudents(instanceID string, courseID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"courseID": courseID}
	return dbService.collectionStudents(instanceID).CountDocuments(ctx, filter)
}

func (dbService *CourseDBService) CountTeams(instanceID string, courseID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"courseID": courseID, "team": bson.M{"$nin": []interface{}{nil, ""}}}
	teams, err := dbService.collectionStudents(instanceID).Distinct(ctx, "team", filter)
	if err != nil {
		return 0, err
	}
	return int64(len(teams)), nil
}

func (dbService *CourseDBService) CountInstructors(instanceID string, courseID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"courseID": courseID}
	return dbService.collectionInstructors(instanceID).CountDocuments(ctx, filter)
}

// CountParticipantsOfCategory counts how many entities of a participant
// category exist in a course. Used to size generated choice lists.
func (dbService *CourseDBService) CountParticipantsOfCategory(instanceID string, courseID string, category string) (int64, error) {
	switch category {
	case courseTypes.PARTICIPANT_CATEGORY_STUDENTS:
		return dbService.CountStudents(instanceID, courseID)
	case courseTypes.PARTICIPANT_CATEGORY_TEAMS:
		return dbService.CountTeams(instanceID, courseID)
	case courseTypes.PARTICIPANT_CATEGORY_INSTRUCTORS:
		return dbService.CountInstructors(instanceID, courseID)
	case courseTypes.PARTICIPANT_CATEGORY_NONE:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown participant category '%s'", category)
	}
}
