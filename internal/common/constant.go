// Package common contains shared constants and sentinel errors used across
// TimeVault components.
package common

// SessionTokenHeaderName is the gRPC metadata key carrying the session token.
const SessionTokenHeaderName = "session_token"

// ShareTokenHeaderName is the gRPC metadata key carrying a share token on
// public access calls.
const ShareTokenHeaderName = "share_token"
