// Copyright (c) Microsoft. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.
package nvorbis

import (
	"fmt"
	"math/rand"
	"time"
)

// Encapsulates policy and logic of handling retries
type RetryPolicy struct {
	Clock           Clock         // Interface to clock
	MaxAttempts     int           // Maximum allowed attempts for an operation
	TimeLimit       time.Duration // Time limit for retries on subsequent failures
	MinDelay        time.Duration // Minimum delay between retries (the first retry always happens immediately)
	MaxDelay        time.Duration // Maximum delay between retries
	RandomizeDelays bool          // true to randomize delays between retries
	ExpBackoffBase  float64       // Base of the exponent function growing delays between attempts
}

// Tracks retries of one operation
type Op struct {
	RetryPolicy *RetryPolicy  // Shared policy data structure
	Attempt     int           // 1-based index of the current attempt
	Expires     time.Time     // Point in time after which no retries are allowed
	Delay       time.Duration // Last delay (grows exponentially)
}

// Creates trivial retry policy which disallows all retries
func NewNoRetryPolicy() *RetryPolicy {
	return &RetryPolicy{MaxAttempts: 1, Clock: WallClock{}}
}

// Creates the default time-based retry policy with randomized delays
// between 1sec and 1min. The backoff base is the golden ratio, so delays
// grow approximately like the Fibonacci sequence.
func NewDefaultRetryPolicy(clock Clock) *RetryPolicy {
	return &RetryPolicy{
		Clock:           clock,
		MaxAttempts:     10,
		TimeLimit:       5 * time.Minute,
		MinDelay:        1 * time.Second,
		MaxDelay:        1 * time.Minute,
		RandomizeDelays: true,
		ExpBackoffBase:  1.618}
}

// Starts a new operation (a retry context) and returns the structure tracking its attempts
func (retryPolicy *RetryPolicy) StartOperation() *Op {
	return &Op{
		Attempt:     1,
		RetryPolicy: retryPolicy,
		Expires:     retryPolicy.Clock.Now().Add(retryPolicy.TimeLimit)}
}

// Prints a diagnostic message (Printf formatting semantic) and returns true
// if the failed operation should be retried. Might sleep before returning,
// providing exponential backoff.
func (op *Op) ShouldRetry(message string, args ...interface{}) bool {
	// Deciding whether to retry by # of attempts and time
	diag := ""
	if op.Attempt >= op.RetryPolicy.MaxAttempts {
		diag = "reached max # of attempts"
	} else if op.RetryPolicy.Clock.Now().After(op.Expires) {
		diag = "exceeded max configured time interval for retries"
	}
	if diag != "" {
		Error.Printf(fmt.Sprintf("%s -> failed attempt #%d: will NOT be retried (%s)", message, op.Attempt, diag), args...)
		return false
	}
	// Computing delay (exponential backoff)
	if op.Attempt == 2 {
		op.Delay = op.RetryPolicy.MinDelay
	} else if op.Attempt > 2 {
		op.Delay = time.Duration(float64(op.Delay) * op.RetryPolicy.ExpBackoffBase)
		if op.Delay > op.RetryPolicy.MaxDelay {
			op.Delay = op.RetryPolicy.MaxDelay
		}
	}

	effectiveDelay := op.Delay
	if op.RetryPolicy.RandomizeDelays && op.Delay > op.RetryPolicy.MinDelay {
		effectiveDelay = op.RetryPolicy.MinDelay + time.Duration(float64(op.Delay-op.RetryPolicy.MinDelay)*rand.Float64())
	}

	// Logging information about the failed attempt
	Warning.Printf(fmt.Sprintf("%s -> failed attempt #%d: retrying in %s", message, op.Attempt, effectiveDelay), args...)
	op.Attempt++

	// Sleeping
	<-op.RetryPolicy.Clock.After(effectiveDelay)

	// Allowing to retry
	return true
}
