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
	"dirpx.dev/stx/apis"
	"dirpx.dev/stx/utils/logging"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure Logger is usable.
	if cfg.Logger == nil {
		cfg.Logger = logging.NopLogger{}
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
// The logger discards everything and Copier is nil, which selects the
// built-in duplication chain (Clone method, assignment, reflective copy).
func DefaultConfig() apis.Config {
	return apis.Config{
		Logger: logging.NopLogger{},
		Copier: nil,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithLogger sets the Logger option.
// A nil logger resets to the silent default.
func WithLogger(l apis.Logger) Option {
	return func(c *apis.Config) {
		if l == nil {
			c.Logger = logging.NopLogger{}
			return
		}
		c.Logger = l
	}
}

// WithCopier sets the Copier option, replacing the reflective stage of the
// duplication chain. The copier alone decides which types it accepts; the
// built-in transparency checks are skipped. A nil copier resets to the
// built-in chain.
func WithCopier(cp apis.Copier) Option {
	return func(c *apis.Config) {
		c.Copier = cp
	}
}
