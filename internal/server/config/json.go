package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/timevault/internal/flagx"
	"github.com/dmitrijs2005/timevault/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON configuration file.
// Durations use timex.Duration, so both "24h" and integer nanoseconds are
// accepted. Fields left out of the document keep their previous value.
type JsonConfig struct {
	EndpointAddrGRPC     string         `json:"endpoint_addr_grpc"`
	DatabaseDSN          string         `json:"database_dsn"`
	SecretKey            string         `json:"secret_key"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
	ShareTokenValidity   timex.Duration `json:"share_token_validity"`
	BcryptCost           int            `json:"bcrypt_cost"`
	StorageBackend       string         `json:"storage_backend"`
	StorageTimeout       timex.Duration `json:"storage_timeout"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
	B2BucketID           string         `json:"b2_bucket_id"`
	B2KeyID              string         `json:"b2_key_id"`
	B2Key                string         `json:"b2_key"`
	B2LocalPath          string         `json:"b2_local_path"`
	LogLevel             string         `json:"log_level"`
	LogFormat            string         `json:"log_format"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag into config. Without the flag nothing is loaded. An unreadable
// file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.SessionTokenValidity, c.SessionTokenValidity.Duration)
	setDuration(&config.ShareTokenValidity, c.ShareTokenValidity.Duration)
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	setString(&config.StorageBackend, c.StorageBackend)
	setDuration(&config.StorageTimeout, c.StorageTimeout.Duration)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.B2BucketID, c.B2BucketID)
	setString(&config.B2KeyID, c.B2KeyID)
	setString(&config.B2Key, c.B2Key)
	setString(&config.B2LocalPath, c.B2LocalPath)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
