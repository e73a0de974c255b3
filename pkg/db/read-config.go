package db

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// ReadDBConfigFromEnv assembles a DBConfig from environment variables
// sharing a common prefix, e.g. COURSE_DB_CONNECTION_STR for prefix
// "COURSE_DB".
func ReadDBConfigFromEnv(dbLabel string, envPrefix string, instanceIDs []string) DBConfig {
	connStr := os.Getenv(envPrefix + "_CONNECTION_STR")
	username := os.Getenv(envPrefix + "_USERNAME")
	password := os.Getenv(envPrefix + "_PASSWORD")
	prefix := os.Getenv(envPrefix + "_CONNECTION_PREFIX") // used in test mode
	if connStr == "" || username == "" || password == "" {
		slog.Error("couldn't read DB credentials", slog.String("db", dbLabel))
		panic("couldn't read DB credentials")
	}
	uri := fmt.Sprintf(`mongodb%s://%s:%s@%s`, prefix, username, password, connStr)

	timeout, err := strconv.Atoi(os.Getenv(envPrefix + "_TIMEOUT"))
	if err != nil {
		slog.Error("DB config could not parse timeout", slog.String("error", err.Error()), slog.String("db", dbLabel))
		panic(err)
	}

	idleConnTimeout, err := strconv.Atoi(os.Getenv(envPrefix + "_IDLE_CONN_TIMEOUT"))
	if err != nil {
		slog.Error("DB config could not parse idle connection timeout", slog.String("error", err.Error()), slog.String("db", dbLabel))
		panic(err)
	}

	mps, err := strconv.Atoi(os.Getenv(envPrefix + "_MAX_POOL_SIZE"))
	if err != nil {
		slog.Error("DB config could not parse max pool size", slog.String("error", err.Error()), slog.String("db", dbLabel))
		panic(err)
	}

	return DBConfig{
		URI:             uri,
		Timeout:         timeout,
		IdleConnTimeout: idleConnTimeout,
		MaxPoolSize:     uint64(mps),
		DBNamePrefix:    os.Getenv(envPrefix + "_NAME_PREFIX"),
		InstanceIDs:     instanceIDs,
	}
}
