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

package gen

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "testdata/livecfg"

func TestGenerate_EndToEnd(t *testing.T) {
	results, err := Generate(Options{
		Dir:   fixtureDir,
		Types: []string{"Settings", "Tracker"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	settings := string(results[0].Src)
	assert.Equal(t, filepath.Join(fixtureDir, "settings_stx.go"), results[0].File)
	assert.True(t, strings.HasPrefix(settings, `// Code generated by "stxgen --type Settings"; DO NOT EDIT.`))
	assert.Contains(t, settings, "package livecfg")
	assert.Contains(t, settings, "func (SettingsCount) Select(s *Settings) *int64 { return &s.Count }")
	assert.Contains(t, settings, "func (settingsRate) Set(s *Settings, v float64)")
	assert.Contains(t, settings, "func SettingsStore() *cell.COW[Settings]")
	assert.Contains(t, settings, "func SettingsClone() Settings")

	tracker := string(results[1].Src)
	assert.Equal(t, filepath.Join(fixtureDir, "tracker_stx.go"), results[1].File)
	assert.Contains(t, tracker, "func TrackerStore() *cell.InPlace[Tracker]")
	assert.NotContains(t, tracker, "TrackerClone", "no duplication support, no clone helper")
}

func TestGenerate_EmbeddedFieldSelectors(t *testing.T) {
	results, err := Generate(Options{
		Dir:   fixtureDir,
		Types: []string{"Gateway"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	src := string(results[0].Src)
	assert.Equal(t, filepath.Join(fixtureDir, "gateway_stx.go"), results[0].File)
	assert.Contains(t, src, "type GatewayLimits struct{}")
	assert.Contains(t, src, "func (GatewayLimits) Select(s *Gateway) *Limits { return &s.Limits }")
	assert.Contains(t, src, "func (GatewayLimits) Set(s *Gateway, v Limits)")
	assert.Contains(t, src, "func GatewayStore() *cell.COW[Gateway]")
}

func TestGenerate_OutputOverride(t *testing.T) {
	results, err := Generate(Options{
		Dir:    fixtureDir,
		Types:  []string{"Settings"},
		Output: "custom_gen.go",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, filepath.Join(fixtureDir, "custom_gen.go"), results[0].File)
}

func TestGenerate_ForcedInPlaceFlowsThrough(t *testing.T) {
	results, err := Generate(Options{
		Dir:     fixtureDir,
		Types:   []string{"Settings"},
		InPlace: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	src := string(results[0].Src)
	assert.True(t, strings.HasPrefix(src, `// Code generated by "stxgen --type Settings --inplace"; DO NOT EDIT.`))
	assert.Contains(t, src, "func SettingsStore() *cell.InPlace[Settings]")
	assert.Contains(t, src, "func SettingsClone() Settings", "forcing the variant keeps the clone helper")
}

func TestGenerate_ValidatesOptionsBeforeLoading(t *testing.T) {
	_, err := Generate(Options{Dir: "no/such/dir"})
	require.ErrorIs(t, err, ErrNoTypes)

	_, err = Generate(Options{
		Dir:    "no/such/dir",
		Types:  []string{"A", "B"},
		Output: "out.go",
	})
	require.ErrorIs(t, err, ErrOutputConflict)
}

func TestGenerate_UnknownType(t *testing.T) {
	_, err := Generate(Options{Dir: fixtureDir, Types: []string{"Missing"}})
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestGenerate_RejectsNonStructTarget(t *testing.T) {
	_, err := Generate(Options{Dir: fixtureDir, Types: []string{"Mode"}})
	require.ErrorIs(t, err, ErrNotStruct)
}
