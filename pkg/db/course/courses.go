package course

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
)

func (dbService *CourseDBService) CreateCourse(instanceID string, course courseTypes.Course) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now()
	}

	_, err := dbService.collectionCourses(instanceID).InsertOne(ctx, course)
	return err
}

func (dbService *CourseDBService) GetCourse(instanceID string, courseID string) (course *courseTypes.Course, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"_id": courseID}
	err = dbService.collectionCourses(instanceID).FindOne(ctx, filter).Decode(&course)
	if err != nil {
		return nil, err
	}
	return course, nil
}
