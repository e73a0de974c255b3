package types

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QUESTION_TYPE_TEXT      = "text"
	QUESTION_TYPE_MCQ       = "mcq"
	QUESTION_TYPE_MSQ       = "msq"
	QUESTION_TYPE_NUM_SCALE = "numScale"
)

const (
	PARTICIPANT_CATEGORY_STUDENTS    = "students"
	PARTICIPANT_CATEGORY_TEAMS       = "teams"
	PARTICIPANT_CATEGORY_INSTRUCTORS = "instructors"
	PARTICIPANT_CATEGORY_NONE        = "none"
)

const (
	FEEDBACK_PARTICIPANT_SELF        = "self"
	FEEDBACK_PARTICIPANT_STUDENTS    = "students"
	FEEDBACK_PARTICIPANT_INSTRUCTORS = "instructors"
	FEEDBACK_PARTICIPANT_TEAMS       = "teams"
	FEEDBACK_PARTICIPANT_OWN_TEAM    = "ownTeam"
)

type FeedbackQuestion struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CourseID              string             `bson:"courseID" json:"courseId"`
	SessionName           string             `bson:"sessionName" json:"sessionName"`
	QuestionNumber        int                `bson:"questionNumber" json:"questionNumber"`
	GiverType             string             `bson:"giverType" json:"giverType"`
	RecipientType         string             `bson:"recipientType" json:"recipientType"`
	MaxRecipientsPerGiver int                `bson:"maxRecipientsPerGiver" json:"maxRecipientsPerGiver"`
	ShowResponsesTo       []string           `bson:"showResponsesTo,omitempty" json:"showResponsesTo,omitempty"`
	ShowGiverNameTo       []string           `bson:"showGiverNameTo,omitempty" json:"showGiverNameTo,omitempty"`
	ShowRecipientNameTo   []string           `bson:"showRecipientNameTo,omitempty" json:"showRecipientNameTo,omitempty"`
	Description           string             `bson:"description,omitempty" json:"description,omitempty"`
	Details               QuestionDetails    `bson:"details" json:"details"`
}

// QuestionDetails is a tagged union over question types. QuestionType
// selects which variant pointer is populated.
type QuestionDetails struct {
	QuestionType string                   `bson:"questionType" json:"questionType"`
	Text         *TextQuestionDetails     `bson:"text,omitempty" json:"text,omitempty"`
	Mcq          *McqQuestionDetails      `bson:"mcq,omitempty" json:"mcq,omitempty"`
	Msq          *MsqQuestionDetails      `bson:"msq,omitempty" json:"msq,omitempty"`
	NumScale     *NumScaleQuestionDetails `bson:"numScale,omitempty" json:"numScale,omitempty"`
}

type TextQuestionDetails struct {
	RecommendedLength int `bson:"recommendedLength,omitempty" json:"recommendedLength,omitempty"`
}

type McqQuestionDetails struct {
	Choices      []string `bson:"choices" json:"choices"`
	OtherEnabled bool     `bson:"otherEnabled,omitempty" json:"otherEnabled,omitempty"`
}

// MsqQuestionDetails is the multi-select variant. When GenerateOptionsFor
// names a participant category, the choice list is generated at display
// time and GeneratedChoicesCount caches how many options the course
// yields. The cache is scoped to the question's own course.
type MsqQuestionDetails struct {
	Choices               []string `bson:"choices,omitempty" json:"choices,omitempty"`
	OtherEnabled          bool     `bson:"otherEnabled,omitempty" json:"otherEnabled,omitempty"`
	MaxSelectableChoices  int      `bson:"maxSelectableChoices,omitempty" json:"maxSelectableChoices,omitempty"`
	GenerateOptionsFor    string   `bson:"generateOptionsFor,omitempty" json:"generateOptionsFor,omitempty"`
	GeneratedChoicesCount int      `bson:"generatedChoicesCount,omitempty" json:"generatedChoicesCount,omitempty"`
}

type NumScaleQuestionDetails struct {
	MinScale int     `bson:"minScale" json:"minScale"`
	MaxScale int     `bson:"maxScale" json:"maxScale"`
	Step     float64 `bson:"step,omitempty" json:"step,omitempty"`
}

func (qd QuestionDetails) Validate() error {
	switch qd.QuestionType {
	case QUESTION_TYPE_TEXT:
		return nil
	case QUESTION_TYPE_MCQ:
		if qd.Mcq == nil || len(qd.Mcq.Choices) < 2 {
			return errors.New("mcq question needs at least two choices")
		}
	case QUESTION_TYPE_MSQ:
		if qd.Msq == nil {
			return errors.New("msq question details missing")
		}
		if qd.Msq.GenerateOptionsFor == "" || qd.Msq.GenerateOptionsFor == PARTICIPANT_CATEGORY_NONE {
			if len(qd.Msq.Choices) < 2 {
				return errors.New("msq question needs at least two choices or a generation target")
			}
		}
	case QUESTION_TYPE_NUM_SCALE:
		if qd.NumScale == nil || qd.NumScale.MinScale >= qd.NumScale.MaxScale {
			return errors.New("numerical scale question needs minScale < maxScale")
		}
	default:
		return fmt.Errorf("unknown question type '%s'", qd.QuestionType)
	}
	return nil
}

func (fq FeedbackQuestion) Validate() error {
	if fq.CourseID == "" {
		return errors.New("course ID must not be empty")
	}
	if fq.SessionName == "" {
		return errors.New("session name must not be empty")
	}
	if fq.QuestionNumber < 1 {
		return fmt.Errorf("question number must be positive, got %d", fq.QuestionNumber)
	}
	if fq.GiverType == "" || fq.RecipientType == "" {
		return errors.New("giver and recipient types must not be empty")
	}
	return fq.Details.Validate()
}
