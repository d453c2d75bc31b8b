package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/timevault/internal/common"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"validation", common.Validationf("name is required"), codes.InvalidArgument, "validation error: name is required"},
		{"duplicate", common.ErrDuplicateUsername, codes.AlreadyExists, "username already exists"},
		{"credentials", common.ErrInvalidCredentials, codes.Unauthenticated, "invalid username or password"},
		{"invalid token", common.ErrInvalidToken, codes.Unauthenticated, "invalid token"},
		{"expired token", common.ErrExpiredToken, codes.Unauthenticated, "token expired"},
		{"forbidden", common.ErrForbidden, codes.PermissionDenied, "forbidden"},
		{"password", common.ErrInvalidPassword, codes.PermissionDenied, "invalid vault password"},
		{"not found", fmt.Errorf("lookup: %w", common.ErrorNotFound), codes.NotFound, "not found"},
		{"locked", common.NewLockedError(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)), codes.FailedPrecondition, "vault is locked until 2030-01-01T00:00:00Z"},
		{"storage", fmt.Errorf("%w: put: boom", common.ErrStorageFailure), codes.Unavailable, "storage failure"},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded, context.DeadlineExceeded.Error()},
		{"canceled", context.Canceled, codes.Canceled, context.Canceled.Error()},
		{"unknown", errors.New("db exploded"), codes.Internal, "internal error"},
		{"status", status.Error(codes.Aborted, "keep me"), codes.Aborted, "keep me"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := status.Convert(toStatus(tt.err))
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}

	assert.NoError(t, toStatus(nil))
}
