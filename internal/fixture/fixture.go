// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fixture loads YAML verification vectors for the evaluators.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/fibkont"
)

// Known conventions.
const (
	OneIndexed  = "one-indexed"  // F(1) = F(2) = 1, n >= 1
	ZeroIndexed = "zero-indexed" // F(0) = 0, F(1) = 1, n >= 0
)

// Suite is a set of verification cases under one indexing convention.
type Suite struct {
	Convention string `yaml:"convention"`
	Cases      []Case `yaml:"cases"`
}

// Case is a single expected evaluation.
type Case struct {
	N    int    `yaml:"n"`
	Want uint64 `yaml:"want"`
}

type fixtureFile struct {
	Suites []Suite `yaml:"suites"`
}

// Load parses verification suites from a YAML file. Unknown fields and
// unknown conventions are errors.
func Load(path string) ([]Suite, error) {
	if path == "" {
		return nil, fmt.Errorf("fixture: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw fixtureFile
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", abs, err)
	}
	if len(raw.Suites) == 0 {
		return nil, fmt.Errorf("fixture: %s contains no suites", abs)
	}
	for i, s := range raw.Suites {
		switch s.Convention {
		case OneIndexed, ZeroIndexed:
		default:
			return nil, fmt.Errorf("fixture: suite %d: unknown convention %q", i, s.Convention)
		}
		if len(s.Cases) == 0 {
			return nil, fmt.Errorf("fixture: suite %d (%s): no cases", i, s.Convention)
		}
	}
	return raw.Suites, nil
}

// Eval evaluates n under the suite's convention.
func (s Suite) Eval(n int) (uint64, error) {
	if s.Convention == ZeroIndexed {
		return fibkont.EvaluateZeroIndexed(n)
	}
	return fibkont.Evaluate(n)
}
