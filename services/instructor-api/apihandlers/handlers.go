package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coursedb "github.com/coursedesk/course-backend/pkg/db/course"
	smtpclient "github.com/coursedesk/course-backend/pkg/smtp-client"
)

func HealthCheckHandle(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type HttpEndpoints struct {
	courseDBConn       *coursedb.CourseDBService
	smtpClients        *smtpclient.SmtpClients
	tokenSignKey       string
	allowedInstanceIDs []string
}

func NewHTTPHandler(
	tokenSignKey string,
	courseDBConn *coursedb.CourseDBService,
	smtpClients *smtpclient.SmtpClients,
	allowedInstanceIDs []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:       tokenSignKey,
		courseDBConn:       courseDBConn,
		smtpClients:        smtpClients,
		allowedInstanceIDs: allowedInstanceIDs,
	}
}
