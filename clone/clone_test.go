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

package clone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viaMethod struct {
	N   int
	Via string
}

func (v viaMethod) Clone() viaMethod {
	v.Via = "clone"
	return v
}

type viaPtrMethod struct {
	N   int
	Via string
}

func (v *viaPtrMethod) Clone() viaPtrMethod {
	dup := *v
	dup.Via = "clone"
	return dup
}

// Value-safe: assignment is a full copy, unexported fields included.
type plain struct {
	N      int
	secret string
}

// Transparent: reference kinds, but everything exported and concrete.
type retry struct {
	Max int
}

type cfg struct {
	Hosts  []string
	Limits map[string]int
	Retry  *retry
}

// Opaque: unexported reference field, no Clone method.
type sneaky struct {
	data []byte
}

type withFunc struct {
	Run func()
}

func mustPanicUncloneable(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "expected a panic carrying an error")
		require.ErrorIs(t, err, ErrUncloneable)
	}()
	fn()
}

func TestValue_UsesCloneMethod(t *testing.T) {
	v := viaMethod{N: 7}
	dup := Value(&v, nil)
	assert.Equal(t, 7, dup.N)
	assert.Equal(t, "clone", dup.Via)
	assert.Empty(t, v.Via)
}

func TestValue_UsesPointerCloneMethod(t *testing.T) {
	v := viaPtrMethod{N: 7}
	dup := Value(&v, nil)
	assert.Equal(t, 7, dup.N)
	assert.Equal(t, "clone", dup.Via)
	assert.Empty(t, v.Via)
}

func TestValue_ValueSafeAssignment(t *testing.T) {
	v := plain{N: 1, secret: "kept"}
	dup := Value(&v, nil)
	assert.Equal(t, v, dup)
	assert.Equal(t, "kept", dup.secret)
}

func TestValue_DeepCopiesTransparentTypes(t *testing.T) {
	v := cfg{
		Hosts:  []string{"a", "b"},
		Limits: map[string]int{"rps": 10},
		Retry:  &retry{Max: 3},
	}
	dup := Value(&v, nil)

	// Mutating the original must not show through the duplicate.
	v.Hosts[0] = "z"
	v.Limits["rps"] = 99
	v.Retry.Max = 0

	assert.Equal(t, []string{"a", "b"}, dup.Hosts)
	assert.Equal(t, map[string]int{"rps": 10}, dup.Limits)
	require.NotNil(t, dup.Retry)
	assert.Equal(t, 3, dup.Retry.Max)
}

func TestValue_OpaquePanics(t *testing.T) {
	t.Run("unexported reference field", func(t *testing.T) {
		mustPanicUncloneable(t, func() {
			v := sneaky{data: []byte("x")}
			_ = Value(&v, nil)
		})
	})
	t.Run("func field", func(t *testing.T) {
		mustPanicUncloneable(t, func() {
			v := withFunc{Run: func() {}}
			_ = Value(&v, nil)
		})
	})
}

func TestValue_CustomCopier(t *testing.T) {
	// A custom copier takes over even for opaque types.
	copier := func(v any) (any, error) {
		s := v.(sneaky)
		return sneaky{data: append([]byte(nil), s.data...)}, nil
	}
	v := sneaky{data: []byte("x")}
	dup := Value(&v, copier)
	v.data[0] = 'y'
	assert.Equal(t, []byte("x"), dup.data)
}

func TestValue_CopierErrorPanics(t *testing.T) {
	boom := errors.New("boom")
	mustPanicUncloneable(t, func() {
		v := cfg{}
		_ = Value(&v, func(any) (any, error) { return nil, boom })
	})
}

func TestValue_CopierWrongTypePanics(t *testing.T) {
	mustPanicUncloneable(t, func() {
		v := cfg{}
		_ = Value(&v, func(any) (any, error) { return 42, nil })
	})
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported[viaMethod]())
	assert.True(t, Supported[viaPtrMethod]())
	assert.True(t, Supported[plain]())
	assert.True(t, Supported[cfg]())
	assert.False(t, Supported[sneaky]())
	assert.False(t, Supported[withFunc]())
}
