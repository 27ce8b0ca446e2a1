package camunda

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guided-buying-workers/internal/common/errors"
)

// ==========================
// 1. Retryable Classification Tests
// ==========================

func TestIsRetryableZeebeError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"connection refused", fmt.Errorf("rpc error: connection refused"), true},
		{"deadline exceeded", fmt.Errorf("context deadline exceeded"), true},
		{"unavailable", fmt.Errorf("rpc error: code = Unavailable desc = transport closing"), true},
		{"broken pipe", fmt.Errorf("write: broken pipe"), true},
		{"not found", fmt.Errorf("process definition not found"), false},
		{"invalid argument", fmt.Errorf("rpc error: code = InvalidArgument"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableZeebeError(tt.err))
		})
	}
}

// ==========================
// 2. Error Mapping Tests
// ==========================

func newTestClient() *Client {
	return &Client{
		config: &ClientConfig{
			GatewayAddress:    "localhost:26500",
			ConnectionTimeout: time.Second,
			RetryConfig:       DefaultRetryConfig,
		},
	}
}

func TestMapZeebeErrorConnectionFailure(t *testing.T) {
	c := newTestClient()

	err := c.mapZeebeError(fmt.Errorf("connection refused"), "CompleteJob", 2)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorCode("EXTERNAL_SERVICE_ERROR"), stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Contains(t, stdErr.Details, "CompleteJob")
	assert.Contains(t, stdErr.Details, "2 attempts")
}

func TestMapZeebeErrorTimeout(t *testing.T) {
	c := newTestClient()

	err := c.mapZeebeError(fmt.Errorf("context deadline exceeded"), "Topology", 0)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorCode("TIMEOUT_ERROR"), stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestMapZeebeErrorNotFound(t *testing.T) {
	c := newTestClient()

	err := c.mapZeebeError(fmt.Errorf("process definition not found"), "CreateInstance", 0)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorCode("RESOURCE_NOT_FOUND"), stdErr.Code)
	assert.False(t, stdErr.Retryable)
}

func TestMapZeebeErrorAuthentication(t *testing.T) {
	c := newTestClient()

	err := c.mapZeebeError(fmt.Errorf("permission denied"), "Topology", 0)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorCode("AUTHENTICATION_ERROR"), stdErr.Code)
}

// ==========================
// 3. Retry Execution Tests
// ==========================

func retryTestClient() *Client {
	return &Client{
		config: &ClientConfig{
			GatewayAddress:    "localhost:26500",
			ConnectionTimeout: time.Second,
			RetryConfig: &RetryConfig{
				MaxRetries: 3,
				BaseDelay:  time.Millisecond,
				MaxDelay:   5 * time.Millisecond,
			},
		},
	}
}

func TestExecuteWithRetryRecoversFromTransientErrors(t *testing.T) {
	c := retryTestClient()

	attempts := 0
	result, err := c.ExecuteWithRetry(context.Background(), func(_ context.Context) (interface{}, error) {
		attempts++
		if attempts < 3 {
			return nil, fmt.Errorf("rpc error: connection refused")
		}
		return "topology", nil
	}, "Topology")

	require.NoError(t, err)
	assert.Equal(t, "topology", result)
	assert.Equal(t, 3, attempts)
}

func TestExecuteWithRetryStopsOnTerminalErrors(t *testing.T) {
	c := retryTestClient()

	attempts := 0
	_, err := c.ExecuteWithRetry(context.Background(), func(_ context.Context) (interface{}, error) {
		attempts++
		return nil, fmt.Errorf("permission denied")
	}, "Topology")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorCode("AUTHENTICATION_ERROR"), stdErr.Code)
}

func TestExecuteWithRetryGivesUpAfterMaxRetries(t *testing.T) {
	c := retryTestClient()

	attempts := 0
	_, err := c.ExecuteWithRetry(context.Background(), func(_ context.Context) (interface{}, error) {
		attempts++
		return nil, fmt.Errorf("rpc error: connection refused")
	}, "Topology")

	require.Error(t, err)
	assert.Equal(t, c.config.RetryConfig.MaxRetries+1, attempts)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorCode("EXTERNAL_SERVICE_ERROR"), stdErr.Code)
}

func TestExecuteWithRetryHonorsContextCancellation(t *testing.T) {
	c := retryTestClient()
	c.config.RetryConfig.BaseDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	_, err := c.ExecuteWithRetry(ctx, func(_ context.Context) (interface{}, error) {
		attempts++
		return nil, fmt.Errorf("rpc error: connection refused")
	}, "Topology")

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Contains(t, err.Error(), "cancelled")
}
