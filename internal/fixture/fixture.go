// Package fixture loads and validates the JSON test-fixture format used
// to describe a machine configuration alongside an input/expected-output
// pair, the same shape original_source's enigma_machine.rs test module
// reads from tests/*.json.
//
// Copyright (c) 2025 David Duarte
// Licensed under the MIT License
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mdelacour/enigforce/internal/letter"
	"github.com/mdelacour/enigforce/internal/plugboard"
	"github.com/mdelacour/enigforce/internal/reflector"
	"github.com/mdelacour/enigforce/internal/rotor"
	"github.com/mdelacour/enigforce/pkg/machine"
)

const schemaDoc = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["reflector_id", "rotors", "plugs", "input", "expect"],
	"additionalProperties": false,
	"properties": {
		"reflector_id": {"type": "string"},
		"rotors": {
			"type": "array",
			"items": {
				"type": "array",
				"minItems": 2,
				"maxItems": 2,
				"items": {"type": "string"}
			}
		},
		"plugs": {
			"type": "array",
			"items": {
				"type": "array",
				"minItems": 2,
				"maxItems": 2,
				"items": {"type": "string"}
			}
		},
		"input": {"type": "string"},
		"expect": {"type": "string"}
	}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("fixture.json", bytes.NewReader([]byte(schemaDoc))); err != nil {
			schemaErr = fmt.Errorf("fixture: invalid embedded schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("fixture.json")
	})
	return schema, schemaErr
}

// Fixture is a single machine-configuration-plus-expectation test case.
type Fixture struct {
	ReflectorID string     `json:"reflector_id"`
	Rotors      [][2]string `json:"rotors"`
	Plugs       [][2]string `json:"plugs"`
	Input       string     `json:"input"`
	Expect      string     `json:"expect"`
}

// Load reads and validates the fixture at path against the fixture
// schema before unmarshalling it, so a malformed fixture fails with a
// precise "unknown key"/"wrong type" error rather than an opaque
// encoding/json one.
func Load(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("fixture: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return Fixture{}, err
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Fixture{}, fmt.Errorf("fixture: %s: %w", path, err)
	}
	if err := sch.Validate(doc); err != nil {
		return Fixture{}, fmt.Errorf("fixture: %s: schema validation: %w", path, err)
	}

	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return Fixture{}, fmt.Errorf("fixture: %s: %w", path, err)
	}
	return f, nil
}

// MachineState converts the fixture's configuration into a
// machine.MachineState, ready to build a Machine from.
func (f Fixture) MachineState() (machine.MachineState, error) {
	reflID, err := reflector.ParseID(f.ReflectorID)
	if err != nil {
		return machine.MachineState{}, fmt.Errorf("fixture: %w", err)
	}

	rotors := make([]machine.RotorConfig, len(f.Rotors))
	for i, r := range f.Rotors {
		id, err := rotor.ParseID(r[0])
		if err != nil {
			return machine.MachineState{}, fmt.Errorf("fixture: rotor %d: %w", i, err)
		}
		start, err := letter.Parse(r[1])
		if err != nil {
			return machine.MachineState{}, fmt.Errorf("fixture: rotor %d: %w", i, err)
		}
		rotors[i] = machine.RotorConfig{ID: id, Start: start}
	}

	plugs := make([]plugboard.Pair, len(f.Plugs))
	for i, p := range f.Plugs {
		a, err := letter.Parse(p[0])
		if err != nil {
			return machine.MachineState{}, fmt.Errorf("fixture: plug %d: %w", i, err)
		}
		b, err := letter.Parse(p[1])
		if err != nil {
			return machine.MachineState{}, fmt.Errorf("fixture: plug %d: %w", i, err)
		}
		plugs[i] = plugboard.Pair{a, b}
	}

	return machine.NewState(plugs, rotors, reflID), nil
}
