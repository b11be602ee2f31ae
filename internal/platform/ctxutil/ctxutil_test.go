// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asuclub/asu-api/internal/platform/ctxutil"
	"github.com/asuclub/asu-api/internal/platform/sec"
)

/*
TestContext_RequestID verifies that request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the logger fallback behavior.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()

	// 1. Without injection, GetLogger falls back to the default logger
	assert.NotNil(t, ctxutil.GetLogger(ctx))

	// 2. Injected logger round-trips
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies claims injection and anonymous fallback.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous context yields nil claims
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Injected claims round-trip
	claims := &sec.AuthClaims{UserID: "u1", Email: "p@asuclub.org", Role: string(sec.RoleEditor)}
	ctx = ctxutil.WithAuthUser(ctx, claims)
	assert.Equal(t, claims, ctxutil.GetAuthUser(ctx))
}
