package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coursedesk/course-backend/pkg/apihelpers"
	"github.com/coursedesk/course-backend/services/instructor-api/apihandlers"
)

func main() {

	// Start webserver
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     conf.AllowOrigins,
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Content-Length"},
		ExposeHeaders:    []string{"Authorization", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add handlers
	router.GET("/", apihandlers.HealthCheckHandle)
	v1Root := router.Group("/v1")

	v1APIHandlers := apihandlers.NewHTTPHandler(
		conf.InstructorUserJWTSignKey,
		courseDBService,
		smtpClients,
		conf.AllowedInstanceIDs,
	)
	v1APIHandlers.AddCourseManagementAPI(v1Root)

	if conf.GinDebugMode {
		apihelpers.WriteRoutesToFile(router, "instructor-api-routes.txt")
	}

	// Start the server
	slog.Info("Starting Instructor API", slog.String("port", conf.Port))
	if !conf.UseMTLS {
		err := router.Run(":" + conf.Port)
		if err != nil {
			slog.Error("Exited Instructor API", slog.String("error", err.Error()))
			return
		}
	} else {
		// Create tls config for mutual TLS
		tlsConfig, err := apihelpers.LoadTLSConfig(conf.CertificatePaths)
		if err != nil {
			slog.Error("Error loading TLS config.", slog.String("error", err.Error()))
			return
		}

		server := &http.Server{
			Addr:      ":" + conf.Port,
			Handler:   router,
			TLSConfig: tlsConfig,
		}

		err = server.ListenAndServeTLS(conf.CertificatePaths.ServerCertPath, conf.CertificatePaths.ServerKeyPath)
		if err != nil {
			slog.Error("Exited Instructor API", slog.String("error", err.Error()))
			return
		}
	}
}
