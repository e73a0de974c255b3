package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	courseTypes "github.com/coursedesk/course-backend/pkg/course/types"
	jwthandling "github.com/coursedesk/course-backend/pkg/jwt-handling"
	pc "github.com/coursedesk/course-backend/pkg/permission-checker"
)

// courseRequestCtx carries what the gate resolved for the handler.
type courseRequestCtx struct {
	token      *jwthandling.InstructorUserClaims
	instructor *courseTypes.Instructor
	course     *courseTypes.Course
}

// useCourseAuthorisedHandler wraps a handler with the per-course
// permission gate. The gate runs before the handler touches any session
// or question and rejects with 401 without leaking entity details.
func (h *HttpEndpoints) useCourseAuthorisedHandler(
	requiredPermission string,
	handler func(c *gin.Context, req courseRequestCtx),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.MustGet("validatedToken").(*jwthandling.InstructorUserClaims)
		courseID := c.Param("courseID")

		instructor, course, err := pc.VerifyInstructorPermission(
			h.courseDBConn,
			token.InstanceID,
			token.Subject,
			courseID,
			requiredPermission,
		)
		if err != nil {
			slog.Warn("unauthorised access attempted",
				slog.String("instanceID", token.InstanceID),
				slog.String("userID", token.Subject),
				slog.String("courseID", courseID),
				slog.String("requiredPermission", requiredPermission))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorised access attempted"})
			return
		}

		handler(c, courseRequestCtx{
			token:      token,
			instructor: instructor,
			course:     course,
		})
	}
}
