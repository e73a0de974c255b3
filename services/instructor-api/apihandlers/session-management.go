package apihandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/coursedesk/course-backend/pkg/apihelpers/middlewares"
	"github.com/coursedesk/course-backend/pkg/course"
	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
	pc "github.com/coursedesk/course-backend/pkg/permission-checker"
)

func (h *HttpEndpoints) AddCourseManagementAPI(rg *gin.RouterGroup) {
	coursesGroup := rg.Group("/courses")

	coursesGroup.Use(mw.GetAndValidateInstructorUserJWT(h.tokenSignKey))
	coursesGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))

	courseGroup := coursesGroup.Group("/:courseID")
	{
		courseGroup.POST("/feedback-sessions", mw.RequirePayload(), h.useCourseAuthorisedHandler(
			pc.PERMISSION_MODIFY_SESSION,
			h.createFeedbackSession,
		))
		courseGroup.GET("/feedback-sessions", h.useCourseAuthorisedHandler(
			pc.PERMISSION_VIEW_SESSION,
			h.getFeedbackSessionsForCourse,
		))
		courseGroup.GET("/feedback-sessions/:sessionName", h.useCourseAuthorisedHandler(
			pc.PERMISSION_VIEW_SESSION,
			h.getFeedbackSession,
		))
	}
}

func (h *HttpEndpoints) createFeedbackSession(c *gin.Context, req courseRequestCtx) {
	var createReq course.SessionCreateRequest
	if err := c.ShouldBindJSON(&createReq); err != nil {
		slog.Error("createFeedbackSession: error binding payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing payload"})
		return
	}

	slog.Info("createFeedbackSession: creating feedback session",
		slog.String("instanceID", req.token.InstanceID),
		slog.String("userID", req.token.Subject),
		slog.String("courseID", req.course.ID))

	session, privileges, err := course.CreateFeedbackSession(
		h.courseDBConn,
		req.token.InstanceID,
		req.instructor,
		req.course,
		createReq,
	)
	if err != nil {
		var invalidReq *course.InvalidRequestError
		if errors.As(err, &invalidReq) {
			slog.Error("createFeedbackSession: invalid request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("createFeedbackSession: unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error creating feedback session"})
		return
	}

	h.notifyCoInstructors(req, session)

	c.JSON(http.StatusOK, gin.H{"session": session, "privileges": privileges})
}

func (h *HttpEndpoints) getFeedbackSessionsForCourse(c *gin.Context, req courseRequestCtx) {
	sessions, err := h.courseDBConn.GetFeedbackSessionsForCourse(req.token.InstanceID, req.course.ID)
	if err != nil {
		slog.Error("getFeedbackSessionsForCourse: error retrieving sessions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting feedback sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *HttpEndpoints) getFeedbackSession(c *gin.Context, req courseRequestCtx) {
	sessionName := c.Param("sessionName")

	session, privileges, err := course.GetFeedbackSessionWithPrivileges(
		h.courseDBConn,
		req.token.InstanceID,
		req.instructor,
		req.course.ID,
		sessionName,
	)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feedback session not found"})
			return
		}
		slog.Error("getFeedbackSession: error retrieving session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error getting feedback session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "privileges": privileges})
}

// notifyCoInstructors sends a best-effort notice about the new session
// to the other instructors of the course. Failures are logged and never
// fail the request.
func (h *HttpEndpoints) notifyCoInstructors(req courseRequestCtx, session *courseTypes.FeedbackSession) {
	if h.smtpClients == nil {
		return
	}

	instructors, err := h.courseDBConn.GetInstructorsForCourse(req.token.InstanceID, req.course.ID)
	if err != nil {
		slog.Error("notifyCoInstructors: error retrieving instructors", slog.String("error", err.Error()))
		return
	}

	to := []string{}
	for _, instructor := range instructors {
		if instructor.Email != "" && instructor.Email != req.instructor.Email {
			to = append(to, instructor.Email)
		}
	}
	if len(to) == 0 {
		return
	}

	subject := fmt.Sprintf("New feedback session '%s' in %s", session.Name, req.course.Name)
	content := fmt.Sprintf(
		"<p>%s created the feedback session '%s' in course %s.</p><p>Submissions open %s and close %s (%s).</p>",
		req.instructor.Email,
		session.Name,
		req.course.Name,
		session.SubmissionStart.Format("2006-01-02 15:04"),
		session.SubmissionEnd.Format("2006-01-02 15:04"),
		session.TimeZone,
	)
	if err := h.smtpClients.SendMail(to, subject, content); err != nil {
		slog.Error("notifyCoInstructors: error sending notice", slog.String("error", err.Error()))
	}
}
