package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	TimeZone  string    `bson:"timeZone" json:"timeZone"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Instructor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"userID" json:"userId"`
	CourseID    string             `bson:"courseID" json:"courseId"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Permissions []string           `bson:"permissions" json:"permissions"`
}

// HasPermission checks the instructor's per-course permission set.
func (i Instructor) HasPermission(permission string) bool {
	for _, p := range i.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

type Student struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   string             `bson:"userID" json:"userId"`
	CourseID string             `bson:"courseID" json:"courseId"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name" json:"name"`
	Team     string             `bson:"team,omitempty" json:"team,omitempty"`
	Section  string             `bson:"section,omitempty" json:"section,omitempty"`
}
