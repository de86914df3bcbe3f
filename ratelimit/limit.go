// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - throttle callers with a token bucket
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/fault"
)

// New - limiter allowing perSecond operations with the given burst,
// zero perSecond means no limit
func New(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// Set - change the rate of an existing limiter, zero means no limit
func Set(limiter *rate.Limiter, perSecond float64, burst int) {
	if perSecond <= 0 {
		limiter.SetLimit(rate.Inf)
		return
	}
	if burst < 1 {
		burst = 1
	}
	limiter.SetBurst(burst)
	limiter.SetLimit(rate.Limit(perSecond))
}

// Limit - wait until a single operation is allowed
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - wait until a batch of count operations is allowed
//
// an invalid count is limited as a single operation and reported
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := Limit(limiter); nil != err {
			return err
		}
		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
