package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/timevault/internal/flagx"
	"github.com/joho/godotenv"
)

// envPrefix is prepended to every variable name read by parseEnv.
const envPrefix = "TIMEVAULT_"

// parseEnv overlays Config with TIMEVAULT_* environment variables.
//
// Before reading, a dotenv file is loaded into the process environment
// without overriding variables that are already set: the path given by
// -env-file, or ".env" in the working directory when that file exists.
// A missing default .env is not an error; an explicit -env-file that
// cannot be read panics, like an unreadable JSON config does.
//
// Recognised variables (suffixes after TIMEVAULT_):
//
//	GRPC_ADDR, DATABASE_DSN, SECRET_KEY, SESSION_TOKEN_VALIDITY,
//	SHARE_TOKEN_VALIDITY, BCRYPT_COST, STORAGE, STORAGE_TIMEOUT,
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT,
//	B2_BUCKET_ID, B2_KEY_ID, B2_KEY, B2_LOCAL_PATH, LOG_LEVEL, LOG_FORMAT
//
// Durations use Go syntax ("24h"). Malformed numbers and durations panic.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	envString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	envString(&config.DatabaseDSN, "DATABASE_DSN")
	envString(&config.SecretKey, "SECRET_KEY")
	envDuration(&config.SessionTokenValidity, "SESSION_TOKEN_VALIDITY")
	envDuration(&config.ShareTokenValidity, "SHARE_TOKEN_VALIDITY")
	envInt(&config.BcryptCost, "BCRYPT_COST")
	envString(&config.StorageBackend, "STORAGE")
	envDuration(&config.StorageTimeout, "STORAGE_TIMEOUT")
	envString(&config.S3RootUser, "S3_ROOT_USER")
	envString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	envString(&config.S3Bucket, "S3_BUCKET")
	envString(&config.S3Region, "S3_REGION")
	envString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	envString(&config.B2BucketID, "B2_BUCKET_ID")
	envString(&config.B2KeyID, "B2_KEY_ID")
	envString(&config.B2Key, "B2_KEY")
	envString(&config.B2LocalPath, "B2_LOCAL_PATH")
	envString(&config.LogLevel, "LOG_LEVEL")
	envString(&config.LogFormat, "LOG_FORMAT")
}

func envString(dst *string, name string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
		*dst = v
	}
}

func envInt(dst *int, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, name string) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
