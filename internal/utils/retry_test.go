// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isOK(status int) bool {
	return status == 200 || status == 201
}

func TestRetry_SucceedsFirstTime(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), 3, func(context.Context) (int, error) {
		calls++
		return 200, nil
	}, isOK)

	require.NoError(t, err)
	assert.Equal(t, 200, got)
	assert.Equal(t, 1, calls)
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	statuses := []int{502, 500, 201}
	calls := 0
	got, err := Retry(context.Background(), 3, func(context.Context) (int, error) {
		s := statuses[calls]
		calls++
		return s, nil
	}, isOK)

	require.NoError(t, err)
	assert.Equal(t, 201, got)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustedReturnsLastResult(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), 3, func(context.Context) (int, error) {
		calls++
		return 500 + calls, nil
	}, isOK)

	require.NoError(t, err)
	assert.Equal(t, 503, got)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustedReturnsLastError(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	_, err := Retry(context.Background(), 2, func(context.Context) (int, error) {
		calls++
		return 0, boom
	}, isOK)

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestRetry_ErrorThenSuccess(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), 3, func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("timeout")
		}
		return 200, nil
	}, isOK)

	require.NoError(t, err)
	assert.Equal(t, 200, got)
	assert.Equal(t, 2, calls)
}

func TestRetry_AttemptsBelowOne(t *testing.T) {
	for _, attempts := range []int{0, -4} {
		calls := 0
		_, _ = Retry(context.Background(), attempts, func(context.Context) (int, error) {
			calls++
			return 404, nil
		}, isOK)
		assert.Equal(t, 1, calls, "attempts=%d", attempts)
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Retry(ctx, 3, func(context.Context) (int, error) {
		calls++
		return 200, nil
	}, isOK)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestRetry_CancelledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := Retry(ctx, 5, func(context.Context) (int, error) {
		calls++
		cancel()
		return 500, nil
	}, isOK)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
