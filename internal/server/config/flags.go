package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/timevault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN, or "memory"
//	-s string     token HMAC secret key
//	-t duration   session token validity (e.g., "24h")
//	-r duration   share token validity (e.g., "168h")
//	-k int        bcrypt cost
//	-m string     storage backend: s3, b2, b2-local
//	-o duration   storage call timeout
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket name
//	-g string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string     log level
//	-f string     log format: json or text
//
// Only the flags above are picked out of os.Args (see flagx.FilterArgs), so
// -c/-config and -env-file can coexist on the same command line.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-r", "-k", "-m", "-o", "-u", "-p", "-b", "-g", "-e", "-l", "-f",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.SessionTokenValidity, "t", config.SessionTokenValidity, "session token validity")
	fs.DurationVar(&config.ShareTokenValidity, "r", config.ShareTokenValidity, "share token validity")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.StorageBackend, "m", config.StorageBackend, "storage backend (s3, b2, b2-local)")
	fs.DurationVar(&config.StorageTimeout, "o", config.StorageTimeout, "storage call timeout")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json, text)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
