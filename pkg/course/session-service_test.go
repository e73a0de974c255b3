package course

import (
	"errors"
	"fmt"
	"testing"
	"time"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
	coursedb "github.com/coursedesk/course-backend/pkg/db/course"
)

var errMockNotFound = errors.New("mongo: no documents in result")

type mockCourseStore struct {
	courses   map[string]courseTypes.Course
	students  map[string]int64
	teams     map[string]int64
	sessions  []courseTypes.FeedbackSession
	questions []courseTypes.FeedbackQuestion

	// simulate a failing insert for one question number
	failOnQuestionNumber int
}

func (m *mockCourseStore) GetCourse(instanceID string, courseID string) (*courseTypes.Course, error) {
	c, ok := m.courses[courseID]
	if !ok {
		return nil, errMockNotFound
	}
	return &c, nil
}

func (m *mockCourseStore) GetInstructorByUserID(instanceID string, courseID string, userID string) (*courseTypes.Instructor, error) {
	return nil, errMockNotFound
}

func (m *mockCourseStore) CreateFeedbackSession(instanceID string, session *courseTypes.FeedbackSession) error {
	if err := session.Validate(); err != nil {
		return err
	}
	for _, s := range m.sessions {
		if s.CourseID == session.CourseID && s.Name == session.Name {
			return coursedb.ErrSessionAlreadyExists
		}
	}
	session.CreatedAt = time.Now()
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *mockCourseStore) GetFeedbackSession(instanceID string, courseID string, sessionName string) (*courseTypes.FeedbackSession, error) {
	for _, s := range m.sessions {
		if s.CourseID == courseID && s.Name == sessionName {
			session := s
			return &session, nil
		}
	}
	return nil, errMockNotFound
}

func (m *mockCourseStore) GetFeedbackQuestions(instanceID string, courseID string, sessionName string) (questions []courseTypes.FeedbackQuestion, err error) {
	for _, q := range m.questions {
		if q.CourseID == courseID && q.SessionName == sessionName {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (m *mockCourseStore) CreateFeedbackQuestion(instanceID string, question *courseTypes.FeedbackQuestion) (*courseTypes.FeedbackQuestion, error) {
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if m.failOnQuestionNumber > 0 && question.QuestionNumber == m.failOnQuestionNumber {
		return nil, fmt.Errorf("question number %d is already taken in session '%s'", question.QuestionNumber, question.SessionName)
	}
	m.questions = append(m.questions, *question)
	return question, nil
}

func (m *mockCourseStore) CountParticipantsOfCategory(instanceID string, courseID string, category string) (int64, error) {
	switch category {
	case courseTypes.PARTICIPANT_CATEGORY_STUDENTS:
		return m.students[courseID], nil
	case courseTypes.PARTICIPANT_CATEGORY_TEAMS:
		return m.teams[courseID], nil
	case courseTypes.PARTICIPANT_CATEGORY_NONE:
		return 0, nil
	}
	return 0, fmt.Errorf("unknown participant category '%s'", category)
}

func testInstructor() *courseTypes.Instructor {
	return &courseTypes.Instructor{
		UserID:      "inst1",
		CourseID:    "CS101",
		Email:       "inst1@uni.edu",
		Permissions: []string{"modify-session", "view-session"},
	}
}

func testCourse() *courseTypes.Course {
	return &courseTypes.Course{ID: "CS101", Name: "Intro to CS", TimeZone: "Europe/Berlin"}
}

func testRequest() SessionCreateRequest {
	return SessionCreateRequest{
		Name:                  "Midterm Review",
		Instructions:          "Please be constructive.",
		SubmissionStart:       time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC),
		SubmissionEnd:         time.Date(2024, 10, 8, 20, 0, 0, 0, time.UTC),
		GracePeriodMin:        15,
		SessionVisibleFrom:    time.Date(2024, 9, 28, 0, 0, 0, 0, time.UTC),
		ResultsVisibleFrom:    time.Date(2024, 10, 9, 0, 0, 0, 0, time.UTC),
		ClosingEmailEnabled:   true,
		PublishedEmailEnabled: false,
	}
}

func TestCreateFeedbackSession(t *testing.T) {
	t.Parallel()

	t.Run("fields come from request, course and instructor", func(t *testing.T) {
		db := &mockCourseStore{courses: map[string]courseTypes.Course{"CS101": *testCourse()}}
		req := testRequest()

		session, privileges, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Name != req.Name ||
			session.Instructions != req.Instructions ||
			!session.SubmissionStart.Equal(req.SubmissionStart) ||
			!session.SubmissionEnd.Equal(req.SubmissionEnd) ||
			session.GracePeriodMin != req.GracePeriodMin ||
			!session.SessionVisibleFrom.Equal(req.SessionVisibleFrom) ||
			!session.ResultsVisibleFrom.Equal(req.ResultsVisibleFrom) ||
			session.ClosingEmailEnabled != req.ClosingEmailEnabled ||
			session.PublishedEmailEnabled != req.PublishedEmailEnabled {
			t.Errorf("stored session does not match request: %+v", session)
		}
		if session.TimeZone != "Europe/Berlin" {
			t.Errorf("time zone should come from the course, got %q", session.TimeZone)
		}
		if session.CreatorEmail != "inst1@uni.edu" {
			t.Errorf("creator email should come from the instructor, got %q", session.CreatorEmail)
		}
		if privileges == nil || !privileges.CanModifySession || privileges.CanSubmitSession {
			t.Errorf("unexpected privileges: %+v", privileges)
		}
	})

	t.Run("duplicate name and course is rejected", func(t *testing.T) {
		db := &mockCourseStore{courses: map[string]courseTypes.Course{"CS101": *testCourse()}}

		_, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), testRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, _, err = CreateFeedbackSession(db, "default", testInstructor(), testCourse(), testRequest())
		var invalidReq *InvalidRequestError
		if !errors.As(err, &invalidReq) {
			t.Fatalf("expected InvalidRequestError, got %v", err)
		}
		if !errors.Is(err, coursedb.ErrSessionAlreadyExists) {
			t.Errorf("cause should be preserved, got %v", err)
		}
	})

	t.Run("invalid time ordering is rejected", func(t *testing.T) {
		db := &mockCourseStore{courses: map[string]courseTypes.Course{"CS101": *testCourse()}}
		req := testRequest()
		req.SubmissionEnd = req.SubmissionStart.Add(-time.Hour)

		_, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		var invalidReq *InvalidRequestError
		if !errors.As(err, &invalidReq) {
			t.Fatalf("expected InvalidRequestError, got %v", err)
		}
		if len(db.sessions) != 0 {
			t.Errorf("no session should be stored, got %d", len(db.sessions))
		}
	})

	t.Run("session name is sanitized before use", func(t *testing.T) {
		db := &mockCourseStore{courses: map[string]courseTypes.Course{"CS101": *testCourse()}}
		req := testRequest()
		req.Name = "Midterm<b> Review</b>"

		session, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Name != "Midterm Review" {
			t.Errorf("expected sanitized name, got %q", session.Name)
		}
		if _, err := db.GetFeedbackSession("default", "CS101", "Midterm Review"); err != nil {
			t.Errorf("fetch by sanitized name should succeed: %v", err)
		}
		if _, err := db.GetFeedbackSession("default", "CS101", "Midterm<b> Review</b>"); err == nil {
			t.Errorf("fetch by raw name should fail")
		}
	})
}

func sourceQuestions(courseID string, sessionName string, n int) []courseTypes.FeedbackQuestion {
	questions := make([]courseTypes.FeedbackQuestion, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, courseTypes.FeedbackQuestion{
			CourseID:              courseID,
			SessionName:           sessionName,
			QuestionNumber:        i,
			GiverType:             courseTypes.FEEDBACK_PARTICIPANT_STUDENTS,
			RecipientType:         courseTypes.FEEDBACK_PARTICIPANT_INSTRUCTORS,
			MaxRecipientsPerGiver: 1,
			ShowResponsesTo:       []string{courseTypes.FEEDBACK_PARTICIPANT_INSTRUCTORS},
			Description:           fmt.Sprintf("question %d", i),
			Details: courseTypes.QuestionDetails{
				QuestionType: courseTypes.QUESTION_TYPE_TEXT,
				Text:         &courseTypes.TextQuestionDetails{RecommendedLength: 50},
			},
		})
	}
	return questions
}

func TestCopyFeedbackQuestions(t *testing.T) {
	t.Parallel()

	newStoreWithSource := func(numQuestions int) *mockCourseStore {
		return &mockCourseStore{
			courses: map[string]courseTypes.Course{
				"CS100": {ID: "CS100", Name: "Old course", TimeZone: "Asia/Singapore"},
				"CS101": *testCourse(),
			},
			students:  map[string]int64{"CS100": 5, "CS101": 3},
			questions: sourceQuestions("CS100", "Midterm Review", numQuestions),
		}
	}

	t.Run("all questions are cloned with the new course ID", func(t *testing.T) {
		db := newStoreWithSource(3)
		req := testRequest()
		req.CopySessionFromCourseID = "CS100"

		_, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cloned, _ := db.GetFeedbackQuestions("default", "CS101", "Midterm Review")
		if len(cloned) != 3 {
			t.Fatalf("expected 3 cloned questions, got %d", len(cloned))
		}
		source, _ := db.GetFeedbackQuestions("default", "CS100", "Midterm Review")
		for i, q := range cloned {
			src := source[i]
			if q.CourseID != "CS101" {
				t.Errorf("clone %d should carry the destination course ID, got %q", i, q.CourseID)
			}
			if q.QuestionNumber != src.QuestionNumber ||
				q.GiverType != src.GiverType ||
				q.RecipientType != src.RecipientType ||
				q.MaxRecipientsPerGiver != src.MaxRecipientsPerGiver ||
				q.Description != src.Description ||
				q.Details.QuestionType != src.Details.QuestionType {
				t.Errorf("clone %d differs from source: %+v vs %+v", i, q, src)
			}
		}
	})

	t.Run("no source questions is a no-op", func(t *testing.T) {
		db := newStoreWithSource(0)
		req := testRequest()
		req.CopySessionFromCourseID = "CS100"

		_, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cloned, _ := db.GetFeedbackQuestions("default", "CS101", "Midterm Review")
		if len(cloned) != 0 {
			t.Errorf("expected no cloned questions, got %d", len(cloned))
		}
	})

	t.Run("generated choice count is recomputed for the destination course", func(t *testing.T) {
		db := newStoreWithSource(1)
		db.questions = append(db.questions, courseTypes.FeedbackQuestion{
			CourseID:       "CS100",
			SessionName:    "Midterm Review",
			QuestionNumber: 2,
			GiverType:      courseTypes.FEEDBACK_PARTICIPANT_STUDENTS,
			RecipientType:  courseTypes.FEEDBACK_PARTICIPANT_SELF,
			Details: courseTypes.QuestionDetails{
				QuestionType: courseTypes.QUESTION_TYPE_MSQ,
				Msq: &courseTypes.MsqQuestionDetails{
					GenerateOptionsFor:    courseTypes.PARTICIPANT_CATEGORY_STUDENTS,
					GeneratedChoicesCount: 5, // stale, scoped to CS100
				},
			},
		})
		req := testRequest()
		req.CopySessionFromCourseID = "CS100"

		_, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cloned, _ := db.GetFeedbackQuestions("default", "CS101", "Midterm Review")
		if len(cloned) != 2 {
			t.Fatalf("expected 2 cloned questions, got %d", len(cloned))
		}
		msqClone := cloned[1]
		if msqClone.Details.Msq == nil {
			t.Fatalf("msq details missing on clone")
		}
		if msqClone.Details.Msq.GeneratedChoicesCount != 3 {
			t.Errorf("expected destination scoped count 3, got %d", msqClone.Details.Msq.GeneratedChoicesCount)
		}
		// the source question must stay untouched
		source, _ := db.GetFeedbackQuestions("default", "CS100", "Midterm Review")
		if source[1].Details.Msq.GeneratedChoicesCount != 5 {
			t.Errorf("source question was mutated: %d", source[1].Details.Msq.GeneratedChoicesCount)
		}
	})

	t.Run("copy aborts on first failure and keeps earlier clones", func(t *testing.T) {
		db := newStoreWithSource(5)
		db.failOnQuestionNumber = 3
		req := testRequest()
		req.CopySessionFromCourseID = "CS100"

		_, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		var invalidReq *InvalidRequestError
		if !errors.As(err, &invalidReq) {
			t.Fatalf("expected InvalidRequestError, got %v", err)
		}

		cloned, _ := db.GetFeedbackQuestions("default", "CS101", "Midterm Review")
		if len(cloned) != 2 {
			t.Fatalf("expected clones 1-2 to remain, got %d", len(cloned))
		}
		if cloned[0].QuestionNumber != 1 || cloned[1].QuestionNumber != 2 {
			t.Errorf("unexpected surviving clones: %+v", cloned)
		}
		// the session itself was created before the copy failed
		if _, err := db.GetFeedbackSession("default", "CS101", "Midterm Review"); err != nil {
			t.Errorf("session should remain after failed copy: %v", err)
		}
	})

	t.Run("full scenario with sanitized name and copy", func(t *testing.T) {
		db := &mockCourseStore{
			courses: map[string]courseTypes.Course{
				"CS100": {ID: "CS100", Name: "Old course", TimeZone: "Asia/Singapore"},
				"CS101": *testCourse(),
			},
			students: map[string]int64{"CS100": 2, "CS101": 4},
		}
		db.questions = sourceQuestions("CS100", "Midterm", 1)
		db.questions = append(db.questions, courseTypes.FeedbackQuestion{
			CourseID:       "CS100",
			SessionName:    "Midterm",
			QuestionNumber: 2,
			GiverType:      courseTypes.FEEDBACK_PARTICIPANT_STUDENTS,
			RecipientType:  courseTypes.FEEDBACK_PARTICIPANT_SELF,
			Details: courseTypes.QuestionDetails{
				QuestionType: courseTypes.QUESTION_TYPE_MSQ,
				Msq: &courseTypes.MsqQuestionDetails{
					GenerateOptionsFor:    courseTypes.PARTICIPANT_CATEGORY_STUDENTS,
					GeneratedChoicesCount: 2,
				},
			},
		})

		req := testRequest()
		req.Name = "Midterm<b>"
		req.CopySessionFromCourseID = "CS100"

		session, _, err := CreateFeedbackSession(db, "default", testInstructor(), testCourse(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.Name != "Midterm" {
			t.Errorf("expected sanitized name 'Midterm', got %q", session.Name)
		}

		cloned, _ := db.GetFeedbackQuestions("default", "CS101", "Midterm")
		if len(cloned) != 2 {
			t.Fatalf("expected 2 cloned questions, got %d", len(cloned))
		}
		if cloned[1].Details.Msq.GeneratedChoicesCount != 4 {
			t.Errorf("expected destination scoped count 4, got %d", cloned[1].Details.Msq.GeneratedChoicesCount)
		}
	})
}
