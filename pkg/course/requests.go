package course

import (
	"errors"
	"time"
)

// SessionCreateRequest is the payload for creating a feedback session.
// CopySessionFromCourseID optionally names a course whose equally named
// session provides the starter question set.
type SessionCreateRequest struct {
	Name                    string    `json:"name"`
	Instructions            string    `json:"instructions"`
	SubmissionStart         time.Time `json:"submissionStart"`
	SubmissionEnd           time.Time `json:"submissionEnd"`
	GracePeriodMin          int       `json:"gracePeriodMin"`
	SessionVisibleFrom      time.Time `json:"sessionVisibleFrom"`
	ResultsVisibleFrom      time.Time `json:"resultsVisibleFrom"`
	ClosingEmailEnabled     bool      `json:"closingEmailEnabled"`
	PublishedEmailEnabled   bool      `json:"publishedEmailEnabled"`
	CopySessionFromCourseID string    `json:"copySessionFromCourseId,omitempty"`
}

func (req SessionCreateRequest) Validate() error {
	if req.Name == "" {
		return errors.New("session name is required")
	}
	if req.SubmissionStart.IsZero() || req.SubmissionEnd.IsZero() {
		return errors.New("submission start and end times are required")
	}
	return nil
}
