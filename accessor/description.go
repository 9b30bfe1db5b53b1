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

package accessor

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/schernic/dsl-json/apis"
	"github.com/schernic/dsl-json/log"
	uref "github.com/schernic/dsl-json/utils/reflect"
)

// ErrCapabilityUnavailable is reported by the rich type-name formatter when
// the host runtime is older than Config.MinTypeNameVersion. Description
// handles it and never returns it.
var ErrCapabilityUnavailable = errors.New("dsljson(accessor): type name formatter unavailable")

var (
	// canUseTypeName is cleared at most once per process.
	canUseTypeName = atomic.NewBool(true)
	hostVersion    = runtime.Version
)

// Description renders t for diagnostics. A reflect.Type renders as its
// qualified name. Other shapes use their TypeName while the host supports
// rich names and String() otherwise.
func Description(t apis.Type, cfg apis.Config) string {
	switch tt := t.(type) {
	case nil:
		return ""
	case reflect.Type:
		return uref.QualifiedName(tt, cfg.ShortPackageNames)
	}

	if canUseTypeName.Load() {
		name, err := typeName(t, cfg)
		if err == nil {
			return name
		}
		if errors.Is(err, ErrCapabilityUnavailable) && canUseTypeName.CompareAndSwap(true, false) {
			log.Named("accessor").Info("rich type names unavailable, using String()",
				zap.String("host", hostVersion()),
				zap.String("required", cfg.MinTypeNameVersion))
		}
	}
	return t.String()
}

func typeName(t apis.Type, cfg apis.Config) (string, error) {
	if !hostSupports(cfg.MinTypeNameVersion) {
		return "", ErrCapabilityUnavailable
	}
	if n, ok := t.(apis.TypeNamer); ok {
		return n.TypeName(), nil
	}
	return t.String(), nil
}

// hostSupports reports whether the running Go version is at least min.
// Unparsable versions, such as devel builds, are assumed capable.
func hostSupports(min string) bool {
	want, err := semver.ParseTolerant(min)
	if err != nil {
		return true
	}
	have, err := semver.ParseTolerant(strings.TrimPrefix(hostVersion(), "go"))
	if err != nil {
		return true
	}
	return have.GTE(want)
}
