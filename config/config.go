/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"dirpx.dev/adx/apis"
	"dirpx.dev/adx/axapi/scope"
)

const (
	// DefaultScope represents the default for DefaultScope.
	// Transient matches the behavior of an unscoped container binding.
	DefaultScope = scope.Transient
	// DefaultStrictEqualOrder represents the default for StrictEqualOrder.
	// When false, equal-order advice is ordered by declaration sequence.
	DefaultStrictEqualOrder = false
	// DefaultMaxResolveDepth represents the default for MaxResolveDepth.
	// A value of 32 should be sufficient for all practical chains.
	DefaultMaxResolveDepth = 32
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxResolveDepth is valid.
	if cfg.MaxResolveDepth <= 0 {
		cfg.MaxResolveDepth = DefaultMaxResolveDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		DefaultScope:     DefaultScope,
		StrictEqualOrder: DefaultStrictEqualOrder,
		MaxResolveDepth:  DefaultMaxResolveDepth,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDefaultScope sets the DefaultScope option.
func WithDefaultScope(s scope.Scope) Option {
	return func(c *apis.Config) {
		c.DefaultScope = s
	}
}

// WithStrictEqualOrder sets the StrictEqualOrder option.
func WithStrictEqualOrder(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictEqualOrder = strict
	}
}

// WithMaxResolveDepth sets the MaxResolveDepth option.
// A non-positive value resets to the default.
func WithMaxResolveDepth(depth int) Option {
	return func(c *apis.Config) {
		if depth <= 0 {
			c.MaxResolveDepth = DefaultMaxResolveDepth
			return
		}
		c.MaxResolveDepth = depth
	}
}
