package permissionchecker

import (
	"errors"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
)

// ErrNotAuthorized is returned for every gate failure. It deliberately
// carries no detail about which lookup or check failed.
var ErrNotAuthorized = errors.New("not authorized to access this course resource")

type CourseDBConnector interface {
	GetInstructorByUserID(instanceID string, courseID string, userID string) (*courseTypes.Instructor, error)
	GetCourse(instanceID string, courseID string) (*courseTypes.Course, error)
}

// VerifyInstructorPermission resolves the requesting user to an
// instructor record of the course and checks the required permission.
// It runs before any session or question access and has no side
// effects. On success the resolved instructor and course are returned
// so callers don't have to fetch them again.
func VerifyInstructorPermission(
	db CourseDBConnector,
	instanceID string,
	userID string,
	courseID string,
	permission string,
) (*courseTypes.Instructor, *courseTypes.Course, error) {
	instructor, err := db.GetInstructorByUserID(instanceID, courseID, userID)
	if err != nil || instructor == nil {
		return nil, nil, ErrNotAuthorized
	}

	course, err := db.GetCourse(instanceID, courseID)
	if err != nil || course == nil {
		return nil, nil, ErrNotAuthorized
	}

	if !instructor.HasPermission(permission) {
		return nil, nil, ErrNotAuthorized
	}

	return instructor, course, nil
}
