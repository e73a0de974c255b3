package types

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MAX_SESSION_NAME_LENGTH = 64

type FeedbackSession struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CourseID              string             `bson:"courseID" json:"courseId"`
	Name                  string             `bson:"name" json:"name"`
	CreatorEmail          string             `bson:"creatorEmail" json:"creatorEmail"`
	Instructions          string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	SubmissionStart       time.Time          `bson:"submissionStart" json:"submissionStart"`
	SubmissionEnd         time.Time          `bson:"submissionEnd" json:"submissionEnd"`
	GracePeriodMin        int                `bson:"gracePeriodMin" json:"gracePeriodMin"`
	SessionVisibleFrom    time.Time          `bson:"sessionVisibleFrom" json:"sessionVisibleFrom"`
	ResultsVisibleFrom    time.Time          `bson:"resultsVisibleFrom" json:"resultsVisibleFrom"`
	ClosingEmailEnabled   bool               `bson:"closingEmailEnabled" json:"closingEmailEnabled"`
	PublishedEmailEnabled bool               `bson:"publishedEmailEnabled" json:"publishedEmailEnabled"`
	TimeZone              string             `bson:"timeZone" json:"timeZone"`
	CreatedAt             time.Time          `bson:"createdAt" json:"createdAt"`
}

// Validate checks the fields the store is responsible for rejecting
// before an insert is attempted.
func (fs FeedbackSession) Validate() error {
	if fs.Name == "" {
		return errors.New("feedback session name must not be empty")
	}
	if len(fs.Name) > MAX_SESSION_NAME_LENGTH {
		return errors.New("feedback session name is too long")
	}
	if fs.CourseID == "" {
		return errors.New("course ID must not be empty")
	}
	if fs.CreatorEmail == "" {
		return errors.New("creator email must not be empty")
	}
	if !fs.SubmissionStart.Before(fs.SubmissionEnd) {
		return errors.New("submission start time must be before submission end time")
	}
	if fs.GracePeriodMin < 0 {
		return errors.New("grace period must not be negative")
	}
	return nil
}
