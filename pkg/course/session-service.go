package course

import (
	"errors"
	"fmt"
	"log/slog"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
	coursedb "github.com/coursedesk/course-backend/pkg/db/course"
	"github.com/coursedesk/course-backend/pkg/utils"
)

// CourseStoreConnector is the persistence surface the session creation
// workflow depends on. *course.CourseDBService implements it.
type CourseStoreConnector interface {
	GetCourse(instanceID string, courseID string) (*courseTypes.Course, error)
	GetInstructorByUserID(instanceID string, courseID string, userID string) (*courseTypes.Instructor, error)
	CreateFeedbackSession(instanceID string, session *courseTypes.FeedbackSession) error
	GetFeedbackSession(instanceID string, courseID string, sessionName string) (*courseTypes.FeedbackSession, error)
	GetFeedbackQuestions(instanceID string, courseID string, sessionName string) ([]courseTypes.FeedbackQuestion, error)
	CreateFeedbackQuestion(instanceID string, question *courseTypes.FeedbackQuestion) (*courseTypes.FeedbackQuestion, error)
	CountParticipantsOfCategory(instanceID string, courseID string, category string) (int64, error)
}

// CreateFeedbackSession runs the creation workflow for an already
// authorized instructor: build and store the session, optionally clone
// the question set of the equally named session in another course, then
// return the canonical stored session together with the instructor's
// privileges for it.
func CreateFeedbackSession(
	db CourseStoreConnector,
	instanceID string,
	instructor *courseTypes.Instructor,
	crs *courseTypes.Course,
	req SessionCreateRequest,
) (*courseTypes.FeedbackSession, *courseTypes.SessionPrivileges, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, newInvalidRequestError(err)
	}

	// The sanitized name is the session's identity from here on.
	sessionName := utils.SanitizeTitle(req.Name)

	session := &courseTypes.FeedbackSession{
		CourseID:              crs.ID,
		Name:                  sessionName,
		CreatorEmail:          instructor.Email,
		Instructions:          req.Instructions,
		SubmissionStart:       req.SubmissionStart,
		SubmissionEnd:         req.SubmissionEnd,
		GracePeriodMin:        req.GracePeriodMin,
		SessionVisibleFrom:    req.SessionVisibleFrom,
		ResultsVisibleFrom:    req.ResultsVisibleFrom,
		ClosingEmailEnabled:   req.ClosingEmailEnabled,
		PublishedEmailEnabled: req.PublishedEmailEnabled,
		TimeZone:              crs.TimeZone,
	}

	if err := session.Validate(); err != nil {
		return nil, nil, newInvalidRequestError(err)
	}

	if err := db.CreateFeedbackSession(instanceID, session); err != nil {
		if errors.Is(err, coursedb.ErrSessionAlreadyExists) {
			return nil, nil, newInvalidRequestError(err)
		}
		// anything else is an infrastructure fault, not the caller's
		return nil, nil, err
	}

	if req.CopySessionFromCourseID != "" {
		// the source session must carry the same (sanitized) name; copy
		// does not rename
		err := copyFeedbackQuestions(db, instanceID, req.CopySessionFromCourseID, crs.ID, sessionName)
		if err != nil {
			return nil, nil, err
		}
	}

	// re-fetch to return the canonical stored representation
	created, err := db.GetFeedbackSession(instanceID, crs.ID, sessionName)
	if err != nil {
		return nil, nil, fmt.Errorf("feedback session '%s' not found after creation: %w", sessionName, err)
	}

	privileges := ComputeSessionPrivileges(instructor, created.Name)
	return created, &privileges, nil
}

// GetFeedbackSessionWithPrivileges fetches a stored session and attaches
// the instructor's privileges for it.
func GetFeedbackSessionWithPrivileges(
	db CourseStoreConnector,
	instanceID string,
	instructor *courseTypes.Instructor,
	courseID string,
	sessionName string,
) (*courseTypes.FeedbackSession, *courseTypes.SessionPrivileges, error) {
	session, err := db.GetFeedbackSession(instanceID, courseID, sessionName)
	if err != nil {
		return nil, nil, err
	}
	privileges := ComputeSessionPrivileges(instructor, session.Name)
	return session, &privileges, nil
}

// copyFeedbackQuestions clones the questions of the equally named
// session in fromCourseID into toCourseID, in question number order.
// Inserts are sequential and not rolled back: if one question fails,
// earlier clones stay and later ones are never attempted.
func copyFeedbackQuestions(
	db CourseStoreConnector,
	instanceID string,
	fromCourseID string,
	toCourseID string,
	sessionName string,
) error {
	questions, err := db.GetFeedbackQuestions(instanceID, fromCourseID, sessionName)
	if err != nil {
		return fmt.Errorf("error loading questions to copy from course '%s': %w", fromCourseID, err)
	}

	copied := 0
	for _, question := range questions {
		newQuestion := courseTypes.FeedbackQuestion{
			CourseID:              toCourseID,
			SessionName:           sessionName,
			QuestionNumber:        question.QuestionNumber,
			GiverType:             question.GiverType,
			RecipientType:         question.RecipientType,
			MaxRecipientsPerGiver: question.MaxRecipientsPerGiver,
			ShowResponsesTo:       question.ShowResponsesTo,
			ShowGiverNameTo:       question.ShowGiverNameTo,
			ShowRecipientNameTo:   question.ShowRecipientNameTo,
			Description:           question.Description,
			Details:               question.Details,
		}

		if err := normalizeQuestionDetailsForCourse(db, instanceID, toCourseID, &newQuestion.Details); err != nil {
			return err
		}

		if _, err := db.CreateFeedbackQuestion(instanceID, &newQuestion); err != nil {
			slog.Warn("aborting question copy after failure",
				slog.String("instanceID", instanceID),
				slog.String("fromCourseID", fromCourseID),
				slog.String("toCourseID", toCourseID),
				slog.Int("copied", copied),
				slog.Int("questionNumber", question.QuestionNumber),
				slog.String("error", err.Error()))
			return newInvalidRequestError(fmt.Errorf("copying question %d failed: %s", question.QuestionNumber, err.Error()))
		}
		copied++
	}

	slog.Debug("copied feedback questions",
		slog.String("instanceID", instanceID),
		slog.String("fromCourseID", fromCourseID),
		slog.String("toCourseID", toCourseID),
		slog.Int("copied", copied))
	return nil
}

// normalizeQuestionDetailsForCourse rewrites the course scoped parts of
// a question payload for its new course. Only the multi-select variant
// carries such state: its generated choice count caches how many
// participants of the target category the course has, so it must be
// recomputed from the destination course.
func normalizeQuestionDetailsForCourse(db CourseStoreConnector, instanceID string, courseID string, details *courseTypes.QuestionDetails) error {
	if details.QuestionType != courseTypes.QUESTION_TYPE_MSQ || details.Msq == nil {
		return nil
	}
	if details.Msq.GenerateOptionsFor == "" || details.Msq.GenerateOptionsFor == courseTypes.PARTICIPANT_CATEGORY_NONE {
		return nil
	}

	count, err := db.CountParticipantsOfCategory(instanceID, courseID, details.Msq.GenerateOptionsFor)
	if err != nil {
		return fmt.Errorf("error counting participants of category '%s' in course '%s': %w", details.Msq.GenerateOptionsFor, courseID, err)
	}

	msq := *details.Msq
	msq.GeneratedChoicesCount = int(count)
	details.Msq = &msq
	return nil
}
