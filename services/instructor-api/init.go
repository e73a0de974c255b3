package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/coursedesk/course-backend/pkg/apihelpers"
	"github.com/coursedesk/course-backend/pkg/db"
	coursedb "github.com/coursedesk/course-backend/pkg/db/course"
	smtpclient "github.com/coursedesk/course-backend/pkg/smtp-client"
	"github.com/coursedesk/course-backend/pkg/utils"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_GIN_DEBUG_MODE             = "GIN_DEBUG_MODE"
	ENV_INSTRUCTOR_API_LISTEN_PORT = "INSTRUCTOR_API_LISTEN_PORT"
	ENV_CORS_ALLOW_ORIGINS         = "CORS_ALLOW_ORIGINS"

	ENV_INSTRUCTOR_USER_JWT_SIGN_KEY = "INSTRUCTOR_USER_JWT_SIGN_KEY"

	ENV_REQUIRE_MUTUAL_TLS     = "REQUIRE_MUTUAL_TLS"
	ENV_MUTUAL_TLS_SERVER_CERT = "MUTUAL_TLS_SERVER_CERT"
	ENV_MUTUAL_TLS_SERVER_KEY  = "MUTUAL_TLS_SERVER_KEY"
	ENV_MUTUAL_TLS_CA_CERT     = "MUTUAL_TLS_CA_CERT"

	ENV_INSTANCE_IDS = "INSTANCE_IDS"

	ENV_COURSE_DB_ENV_PREFIX = "COURSE_DB"

	ENV_SMTP_SERVER_CONFIG_PATH = "SMTP_SERVER_CONFIG_PATH"

	ENV_LOG_TO_FILE     = "LOG_TO_FILE"
	ENV_LOG_FILENAME    = "LOG_FILENAME"
	ENV_LOG_MAX_SIZE    = "LOG_MAX_SIZE"
	ENV_LOG_MAX_AGE     = "LOG_MAX_AGE"
	ENV_LOG_MAX_BACKUPS = "LOG_MAX_BACKUPS"
	ENV_LOG_LEVEL       = "LOG_LEVEL"
	ENV_LOG_INCLUDE_SRC = "LOG_INCLUDE_SRC"
)

var (
	courseDBService *coursedb.CourseDBService
	smtpClients     *smtpclient.SmtpClients
)

type Config struct {
	// Gin configs
	GinDebugMode bool     `json:"gin_debug_mode" yaml:"gin_debug_mode"`
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
	Port         string   `json:"port" yaml:"port"`

	// JWT configs
	InstructorUserJWTSignKey string `json:"instructor_user_jwt_sign_key" yaml:"instructor_user_jwt_sign_key"`

	AllowedInstanceIDs []string `json:"allowed_instance_ids" yaml:"allowed_instance_ids"`

	// Mutual TLS configs
	UseMTLS          bool                        `json:"use_mtls" yaml:"use_mtls"`
	CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`

	CourseDBConfig db.DBConfig `json:"course_db_config" yaml:"course_db_config"`
}

var conf Config

func init() {
	utils.ReadConfigFromEnvAndInitLogger(
		ENV_LOG_LEVEL,
		ENV_LOG_INCLUDE_SRC,
		ENV_LOG_TO_FILE,
		ENV_LOG_FILENAME,
		ENV_LOG_MAX_SIZE,
		ENV_LOG_MAX_AGE,
		ENV_LOG_MAX_BACKUPS,
	)

	conf = initConfig()
	if !conf.GinDebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initDBs()

	initSmtpClients()
}

func initConfig() Config {
	conf := Config{}

	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		fmt.Println("Error reading config file: " + err.Error())
		conf = Config{}
	} else {
		err = yaml.UnmarshalStrict(yamlFile, &conf)
		if err != nil {
			fmt.Println("Error reading config file: " + err.Error())
			conf = Config{}
		}
	}

	conf.GinDebugMode = os.Getenv(ENV_GIN_DEBUG_MODE) == "true"
	conf.Port = os.Getenv(ENV_INSTRUCTOR_API_LISTEN_PORT)
	conf.AllowOrigins = strings.Split(os.Getenv(ENV_CORS_ALLOW_ORIGINS), ",")

	// JWT configs
	conf.InstructorUserJWTSignKey = os.Getenv(ENV_INSTRUCTOR_USER_JWT_SIGN_KEY)
	if conf.InstructorUserJWTSignKey == "" {
		slog.Error("Instructor user JWT sign key not set - configure INSTRUCTOR_USER_JWT_SIGN_KEY env variable.")
		panic("Instructor user JWT sign key not set")
	}

	// Mutual TLS configs
	conf.UseMTLS = os.Getenv(ENV_REQUIRE_MUTUAL_TLS) == "true"
	conf.CertificatePaths = apihelpers.CertificatePaths{
		ServerCertPath: os.Getenv(ENV_MUTUAL_TLS_SERVER_CERT),
		ServerKeyPath:  os.Getenv(ENV_MUTUAL_TLS_SERVER_KEY),
		CACertPath:     os.Getenv(ENV_MUTUAL_TLS_CA_CERT),
	}

	// Allowed instance IDs
	conf.AllowedInstanceIDs = readInstanceIDs()

	// Course db configs
	conf.CourseDBConfig = db.ReadDBConfigFromEnv("course DB", ENV_COURSE_DB_ENV_PREFIX, conf.AllowedInstanceIDs)

	return conf
}

func readInstanceIDs() []string {
	return strings.Split(os.Getenv(ENV_INSTANCE_IDS), ",")
}

func initDBs() {
	var err error
	courseDBService, err = coursedb.NewCourseDBService(conf.CourseDBConfig)
	if err != nil {
		slog.Error("Error connecting to Course DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initSmtpClients() {
	smtpConfigPath := os.Getenv(ENV_SMTP_SERVER_CONFIG_PATH)
	if smtpConfigPath == "" {
		slog.Warn("SMTP server config path not set - session notifications disabled")
		return
	}

	serverList := smtpclient.SmtpServerList{}
	if err := serverList.ReadFromFile(smtpConfigPath); err != nil {
		slog.Error("Error reading SMTP server config", slog.String("error", err.Error()))
		return
	}

	var err error
	smtpClients, err = smtpclient.NewSmtpClients(serverList)
	if err != nil {
		slog.Error("Error setting up SMTP clients", slog.String("error", err.Error()))
	}
}
