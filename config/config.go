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
	"github.com/blang/semver/v4"

	"github.com/schernic/dsl-json/apis"
)

const (
	// DefaultForceAccess represents the default for ForceAccess.
	// Unexported fields stay out of reach unless explicitly requested.
	DefaultForceAccess = false
	// DefaultShortPackageNames represents the default for ShortPackageNames.
	// Full import paths give distinct types distinct canonical names. Short
	// names may collide, and the synthesizer rejects a colliding request.
	DefaultShortPackageNames = false
	// DefaultMinTypeNameVersion represents the default for MinTypeNameVersion.
	// Instantiated generic names carry qualified type arguments since Go 1.18.
	DefaultMinTypeNameVersion = "1.18.0"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MinTypeNameVersion is a valid semantic version.
	if _, err := semver.ParseTolerant(cfg.MinTypeNameVersion); err != nil {
		cfg.MinTypeNameVersion = DefaultMinTypeNameVersion
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		ForceAccess:        DefaultForceAccess,
		ShortPackageNames:  DefaultShortPackageNames,
		MinTypeNameVersion: DefaultMinTypeNameVersion,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithForceAccess sets the ForceAccess option.
func WithForceAccess(force bool) Option {
	return func(c *apis.Config) {
		c.ForceAccess = force
	}
}

// WithShortPackageNames sets the ShortPackageNames option.
func WithShortPackageNames(short bool) Option {
	return func(c *apis.Config) {
		c.ShortPackageNames = short
	}
}

// WithMinTypeNameVersion sets the MinTypeNameVersion option.
// An empty or unparsable version resets to the default.
func WithMinTypeNameVersion(version string) Option {
	return func(c *apis.Config) {
		if _, err := semver.ParseTolerant(version); err != nil {
			c.MinTypeNameVersion = DefaultMinTypeNameVersion
			return
		}
		c.MinTypeNameVersion = version
	}
}
