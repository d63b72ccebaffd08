/*
 * Copyright (C) 2020-2022 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package retry

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RetryPolicyConfiguration describes a retry policy: whether retries are enabled at all, the
// backoff strategy to apply between attempts and the bounds on that backoff.
type RetryPolicyConfiguration struct {
	// Enabled states whether retries should happen at all.
	Enabled bool `mapstructure:"enabled"`
	// BackOffEnabled states whether a backoff (as opposed to a fixed delay) should be used between retries.
	BackOffEnabled bool `mapstructure:"backoff_enabled"`
	// LinearBackOffEnabled switches the backoff from exponential (default) to linear.
	LinearBackOffEnabled bool `mapstructure:"linear_backoff_enabled"`
	// RetryAfterDisabled ignores any `Retry-After` hint the failing operation may have provided.
	RetryAfterDisabled bool `mapstructure:"retry_after_disabled"`
	// RetryWaitMin is the minimum time to wait before a retry.
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	// RetryWaitMax is the maximum time to wait before a retry.
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
	// RetryMax is the maximum number of attempts, the first one included.
	RetryMax int `mapstructure:"retry_max"`
}

// Validate checks the configuration is consistent.
func (cfg *RetryPolicyConfiguration) Validate() error {
	if cfg == nil {
		return nil
	}
	if !cfg.Enabled {
		return nil
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.RetryWaitMin, validation.Min(time.Duration(0))),
		validation.Field(&cfg.RetryWaitMax, validation.Min(cfg.RetryWaitMin)),
		validation.Field(&cfg.RetryMax, validation.Min(0)),
	)
}

// DefaultNoRetryPolicyConfiguration defines a configuration for no retry being performed.
func DefaultNoRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled: false,
	}
}

// DefaultBasicRetryPolicyConfiguration defines a configuration for basic retries i.e. retrying
// straight after a failure for a maximum of 4 attempts.
func DefaultBasicRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:      true,
		RetryWaitMin: 0,
		RetryWaitMax: 0,
		RetryMax:     4,
	}
}

// DefaultRobustRetryPolicyConfiguration defines a configuration for basic retries but honouring
// any `Retry-After` hint returned by the failing operation.
func DefaultRobustRetryPolicyConfiguration() *RetryPolicyConfiguration {
	cfg := DefaultBasicRetryPolicyConfiguration()
	cfg.RetryAfterDisabled = false
	return cfg
}

// DefaultExponentialBackoffRetryPolicyConfiguration defines a configuration for retries with
// exponential backoff.
func DefaultExponentialBackoffRetryPolicyConfiguration() *RetryPolicyConfiguration {
	return &RetryPolicyConfiguration{
		Enabled:        true,
		BackOffEnabled: true,
		RetryWaitMin:   100 * time.Millisecond,
		RetryWaitMax:   5 * time.Second,
		RetryMax:       5,
	}
}

// DefaultLinearBackoffRetryPolicyConfiguration defines a configuration for retries with linear
// backoff.
func DefaultLinearBackoffRetryPolicyConfiguration() *RetryPolicyConfiguration {
	cfg := DefaultExponentialBackoffRetryPolicyConfiguration()
	cfg.LinearBackOffEnabled = true
	return cfg
}
