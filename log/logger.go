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

// Package log holds the process-wide zap logger used by descriptor
// synthesis and member access. It is a no-op logger until SetLogger is called.
package log

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var logger = atomic.NewPointer(zap.NewNop())

// L returns the current logger.
func L() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the process-wide logger. A nil logger restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Named returns the current logger scoped to component.
func Named(component string) *zap.Logger {
	return L().Named(component)
}
