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

package generics

import (
	"github.com/cockroachdb/errors"

	"github.com/schernic/dsl-json/apis"
)

// ErrInvalidArgument marks malformed synthesis requests: a nil or
// non-generic container, an argument count mismatch, or an unsupported
// array component. These are programming errors and never transient.
var ErrInvalidArgument = errors.New("dsljson(generics): invalid argument")

func invalidArgumentf(format string, args ...any) error {
	return errors.Mark(errors.NewWithDepthf(1, "dsljson(generics): "+format, args...), ErrInvalidArgument)
}

// ErrNameCollision marks requests whose canonical name is already bound to a
// structurally different type, e.g. through short package names or a
// registry alias. Such errors are also marked ErrInvalidArgument.
var ErrNameCollision = errors.New("dsljson(generics): canonical name collision")

func collision(name string, cached, requested apis.Type) error {
	err := errors.NewWithDepthf(1, "dsljson(generics): canonical name %q is bound to %s, not to %s",
		name, identity(cached), identity(requested))
	return errors.Mark(errors.Mark(err, ErrNameCollision), ErrInvalidArgument)
}
