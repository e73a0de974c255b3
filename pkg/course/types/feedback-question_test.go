package types

import (
	"testing"
	"time"
)

func validQuestion() FeedbackQuestion {
	return FeedbackQuestion{
		CourseID:       "CS101",
		SessionName:    "Midterm Review",
		QuestionNumber: 1,
		GiverType:      FEEDBACK_PARTICIPANT_STUDENTS,
		RecipientType:  FEEDBACK_PARTICIPANT_INSTRUCTORS,
		Details: QuestionDetails{
			QuestionType: QUESTION_TYPE_TEXT,
		},
	}
}

func TestFeedbackQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(q *FeedbackQuestion)
		wantErr bool
	}{
		{
			name:    "valid text question",
			modify:  func(q *FeedbackQuestion) {},
			wantErr: false,
		},
		{
			name:    "question number zero",
			modify:  func(q *FeedbackQuestion) { q.QuestionNumber = 0 },
			wantErr: true,
		},
		{
			name:    "missing giver type",
			modify:  func(q *FeedbackQuestion) { q.GiverType = "" },
			wantErr: true,
		},
		{
			name:    "unknown question type",
			modify:  func(q *FeedbackQuestion) { q.Details.QuestionType = "ranking" },
			wantErr: true,
		},
		{
			name: "mcq with one choice",
			modify: func(q *FeedbackQuestion) {
				q.Details = QuestionDetails{
					QuestionType: QUESTION_TYPE_MCQ,
					Mcq:          &McqQuestionDetails{Choices: []string{"only one"}},
				}
			},
			wantErr: true,
		},
		{
			name: "msq without choices but with generation target",
			modify: func(q *FeedbackQuestion) {
				q.Details = QuestionDetails{
					QuestionType: QUESTION_TYPE_MSQ,
					Msq:          &MsqQuestionDetails{GenerateOptionsFor: PARTICIPANT_CATEGORY_STUDENTS},
				}
			},
			wantErr: false,
		},
		{
			name: "msq without choices and without generation target",
			modify: func(q *FeedbackQuestion) {
				q.Details = QuestionDetails{
					QuestionType: QUESTION_TYPE_MSQ,
					Msq:          &MsqQuestionDetails{},
				}
			},
			wantErr: true,
		},
		{
			name: "num scale with inverted bounds",
			modify: func(q *FeedbackQuestion) {
				q.Details = QuestionDetails{
					QuestionType: QUESTION_TYPE_NUM_SCALE,
					NumScale:     &NumScaleQuestionDetails{MinScale: 5, MaxScale: 1},
				}
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.modify(&q)
			err := q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFeedbackSessionValidate(t *testing.T) {
	valid := FeedbackSession{
		CourseID:        "CS101",
		Name:            "Midterm Review",
		CreatorEmail:    "inst1@uni.edu",
		SubmissionStart: time.Date(2024, 10, 1, 8, 0, 0, 0, time.UTC),
		SubmissionEnd:   time.Date(2024, 10, 8, 20, 0, 0, 0, time.UTC),
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("valid session rejected: %v", err)
	}

	noName := valid
	noName.Name = ""
	if err := noName.Validate(); err == nil {
		t.Errorf("session without name accepted")
	}

	badTimes := valid
	badTimes.SubmissionEnd = badTimes.SubmissionStart.Add(-time.Hour)
	if err := badTimes.Validate(); err == nil {
		t.Errorf("session with inverted submission window accepted")
	}

	negativeGrace := valid
	negativeGrace.GracePeriodMin = -5
	if err := negativeGrace.Validate(); err == nil {
		t.Errorf("session with negative grace period accepted")
	}
}
