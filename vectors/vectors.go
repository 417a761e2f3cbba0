//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package vectors implements SHA-256 known-answer test vectors. The
// vectors are stored as YAML documents and a default set with the
// FIPS 180-2 example messages is embedded in the package.
package vectors

import (
	_ "embed" // Embed the default vectors.
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/markkurossi/fips180/sha256"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultVectors []byte

// Vector defines one known-answer test.
type Vector struct {
	Name string `yaml:"name"`

	// Message is the UTF-8 input message. It is nil when the input
	// is given as Hex.
	Message *string `yaml:"message,omitempty"`

	// Hex is the hex encoded input message.
	Hex string `yaml:"hex,omitempty"`

	// Repeat is the number of times the input is repeated. Zero
	// means once.
	Repeat int `yaml:"repeat,omitempty"`

	// Digest is the expected digest as 64 lowercase hex digits.
	Digest string `yaml:"digest"`
}

func (v Vector) String() string {
	if len(v.Name) > 0 {
		return v.Name
	}
	if v.Message != nil {
		return fmt.Sprintf("%q", *v.Message)
	}
	return v.Hex
}

// Input returns the input message of the vector.
func (v Vector) Input() ([]byte, error) {
	var data []byte
	if v.Message != nil {
		data = []byte(*v.Message)
	} else {
		var err error
		data, err = hex.DecodeString(v.Hex)
		if err != nil {
			return nil, fmt.Errorf("vector %s: invalid hex input: %w", v, err)
		}
	}
	if v.Repeat > 1 {
		data = []byte(strings.Repeat(string(data), v.Repeat))
	}
	return data, nil
}

// Validate checks that the vector is well-formed.
func (v Vector) Validate() error {
	if v.Message != nil && len(v.Hex) > 0 {
		return fmt.Errorf("vector %s: both message and hex set", v)
	}
	if v.Message == nil && len(v.Hex) == 0 {
		return fmt.Errorf("vector %s: no message or hex", v)
	}
	if v.Repeat < 0 {
		return fmt.Errorf("vector %s: negative repeat %d", v, v.Repeat)
	}
	if len(v.Digest) != 2*sha256.Size {
		return fmt.Errorf("vector %s: digest has %d digits, want %d",
			v, len(v.Digest), 2*sha256.Size)
	}
	if strings.ToLower(v.Digest) != v.Digest {
		return fmt.Errorf("vector %s: digest is not lowercase", v)
	}
	if _, err := hex.DecodeString(v.Digest); err != nil {
		return fmt.Errorf("vector %s: invalid digest: %w", v, err)
	}
	if v.Message == nil {
		if _, err := hex.DecodeString(v.Hex); err != nil {
			return fmt.Errorf("vector %s: invalid hex input: %w", v, err)
		}
	}
	return nil
}

// Parse parses the YAML encoded vectors.
func Parse(data []byte) ([]Vector, error) {
	var result []Vector
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("vectors: %w", err)
	}
	for _, v := range result {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Load loads the vectors from the YAML file.
func Load(path string) ([]Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Default returns the embedded default vectors.
func Default() []Vector {
	result, err := Parse(defaultVectors)
	if err != nil {
		panic(err)
	}
	return result
}

// Failure describes a vector that did not produce the expected
// digest.
type Failure struct {
	Vector Vector
	Got    string
	Err    error
}

func (f Failure) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Vector, f.Err)
	}
	return fmt.Sprintf("%s: got %s, want %s", f.Vector, f.Got, f.Vector.Digest)
}

// Check computes the digests of the vectors and returns the failed
// ones.
func Check(vectors []Vector) []Failure {
	var failures []Failure
	for _, v := range vectors {
		input, err := v.Input()
		if err != nil {
			failures = append(failures, Failure{Vector: v, Err: err})
			continue
		}
		digest, err := sha256.DigestHex(input)
		if err != nil {
			failures = append(failures, Failure{Vector: v, Err: err})
			continue
		}
		if digest != v.Digest {
			failures = append(failures, Failure{Vector: v, Got: digest})
		}
	}
	return failures
}
