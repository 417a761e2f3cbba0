package vectors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	vectors := Default()
	if len(vectors) < 10 {
		t.Fatalf("got %d default vectors, want at least 10", len(vectors))
	}
	if testing.Short() {
		var short []Vector
		for _, v := range vectors {
			if v.Repeat <= 1 {
				short = append(short, v)
			}
		}
		vectors = short
	}
	for _, failure := range Check(vectors) {
		t.Errorf("%s", failure)
	}
}

func TestInput(t *testing.T) {
	msg := "ab"
	tests := []struct {
		v        Vector
		expected string
	}{
		{Vector{Message: &msg}, "ab"},
		{Vector{Message: &msg, Repeat: 3}, "ababab"},
		{Vector{Hex: "6162"}, "ab"},
		{Vector{Hex: "6162", Repeat: 2}, "abab"},
	}
	for _, test := range tests {
		got, err := test.v.Input()
		if err != nil {
			t.Fatalf("Input(%v): %v", test.v, err)
		}
		if string(got) != test.expected {
			t.Errorf("Input(%v) = %q, want %q", test.v, got, test.expected)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		`- {message: abc, hex: "616263", digest: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad}`,
		`- {message: abc, digest: ba7816bf}`,
		`- {message: abc, digest: BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD}`,
		`- {hex: "zz", digest: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad}`,
		`- {message: abc, repeat: -1, digest: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad}`,
		`- {message: abc, digest: xa7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad}`,
		`- {name: none, digest: e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855}`,
		`- {repeat: 2, digest: e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855}`,
		`name: not a list`,
	}
	for _, test := range tests {
		if _, err := Parse([]byte(test)); err == nil {
			t.Errorf("Parse(%s) succeeded", test)
		}
	}
}

func TestValidateInput(t *testing.T) {
	empty := ""
	digest := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	if err := (Vector{Message: &empty, Digest: digest}).Validate(); err != nil {
		t.Errorf("empty message: %v", err)
	}
	if err := (Vector{Name: "none", Digest: digest}).Validate(); err == nil {
		t.Errorf("vector without input validated")
	}
}

func TestCheckFailure(t *testing.T) {
	msg := "abc"
	vectors := []Vector{
		{
			Name:    "wrong",
			Message: &msg,
			Digest:  strings.Repeat("0", 64),
		},
		{
			Name:   "bad-hex",
			Hex:    "0",
			Digest: strings.Repeat("0", 64),
		},
	}
	failures := Check(vectors)
	if len(failures) != 2 {
		t.Fatalf("got %d failures, want 2", len(failures))
	}
	if failures[0].Got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("failure digest %s", failures[0].Got)
	}
	if failures[1].Err == nil {
		t.Errorf("bad hex input did not fail")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vectors.yaml")
	data := []byte(`
- name: empty
  message: ""
  digest: e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	vectors, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(vectors) != 1 || vectors[0].Message == nil || *vectors[0].Message != "" {
		t.Fatalf("Load: unexpected vectors %v", vectors)
	}
	if failures := Check(vectors); len(failures) != 0 {
		t.Fatalf("Check: %v", failures)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load succeeded for a missing file")
	}
}
