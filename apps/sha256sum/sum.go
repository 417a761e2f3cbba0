//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/markkurossi/fips180/sha256"
	"github.com/markkurossi/fips180/timing"
	"github.com/markkurossi/fips180/vectors"
	"github.com/markkurossi/text/superscript"
)

const (
	builtinVectors = "builtin"

	// maxBlockSamples limits the per-block rows in the timing
	// report. Longer messages report the mean and slowest block.
	maxBlockSamples = 8
)

type options struct {
	str      string
	check    string
	selftest string
	timing   bool
	trace    bool
	verbose  bool
}

type app struct {
	opts   options
	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

// readInput reads the whole named input into memory. The name "-"
// is the standard input.
func (a *app) readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(name)
}

// digest hashes data one pipeline stage at a time so that the stages
// can be timed and traced.
func (a *app) digest(data []byte) (string, error) {
	var tm *timing.Timing
	if a.opts.timing {
		tm = timing.NewTiming()
	}

	padded, err := sha256.Pad(data)
	if err != nil {
		return "", err
	}
	if tm != nil {
		tm.Sample("Pad", []string{timing.FileSize(len(padded)).String()})
	}

	blocks := sha256.ParseBlocks(padded)
	if tm != nil {
		tm.Sample("Parse", []string{fmt.Sprintf("%d blocks", len(blocks))})
	}

	var ends []time.Time
	var slowest time.Duration
	state := sha256.InitialState()
	for idx, block := range blocks {
		start := time.Now()
		state = sha256.Compress(state, block)
		if tm != nil {
			end := time.Now()
			if len(blocks) <= maxBlockSamples {
				ends = append(ends, end)
			} else if d := end.Sub(start); d > slowest {
				slowest = d
			}
		}
		if a.opts.trace {
			fmt.Fprintf(a.stdout, "H%s\t%v\n", superscript.Itoa(idx+1), state)
		}
	}
	if tm != nil {
		sample := tm.Sample("Compress",
			[]string{fmt.Sprintf("%d rounds", len(blocks)*sha256.ScheduleSize)})
		for idx, end := range ends {
			sample.SubSample(fmt.Sprintf("Block %d", idx+1), end)
		}
		if len(blocks) > maxBlockSamples {
			sample.AbsSubSample("Mean block",
				sample.Duration()/time.Duration(len(blocks)))
			sample.AbsSubSample("Slowest block", slowest)
		}
	}

	result := state.String()
	if tm != nil {
		tm.Sample("Encode", nil)
		tm.Print(a.stdout, timing.FileSize(len(data)))
	}
	a.logger.Debug("digest", "bytes", len(data), "blocks", len(blocks))

	return result, nil
}

func (a *app) printDigest(name string, data []byte) error {
	digest, err := a.digest(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintf(a.stdout, "%s  %s\n", digest, name)
	return nil
}

func (a *app) sumFiles(files []string) error {
	for _, file := range files {
		data, err := a.readInput(file)
		if err != nil {
			return err
		}
		if err := a.printDigest(file, data); err != nil {
			return err
		}
	}
	return nil
}

// parseCheckLine parses a "<digest>  <name>" line. The name may be
// prefixed with '*' for binary mode.
func parseCheckLine(line string) (digest, name string, err error) {
	idx := strings.IndexByte(line, ' ')
	if idx != 2*sha256.Size || len(line) < idx+2 {
		return "", "", fmt.Errorf("invalid checksum line: %q", line)
	}
	digest = strings.ToLower(line[:idx])
	if _, err := hex.DecodeString(digest); err != nil {
		return "", "", fmt.Errorf("invalid checksum line: %q", line)
	}
	name = line[idx+1:]
	if name[0] == ' ' || name[0] == '*' {
		name = name[1:]
	}
	if len(name) == 0 {
		return "", "", fmt.Errorf("invalid checksum line: %q", line)
	}
	return digest, name, nil
}

// checkFile verifies the checksums listed in file. It returns false
// if any of the checksums did not match.
func (a *app) checkFile(file string) (bool, error) {
	data, err := a.readInput(file)
	if err != nil {
		return false, err
	}
	ok := true
	var lineNo int
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		expected, name, err := parseCheckLine(line)
		if err != nil {
			return false, fmt.Errorf("%s:%d: %w", file, lineNo, err)
		}
		input, err := a.readInput(name)
		if err != nil {
			a.logger.Warn("cannot read input", "file", name, "error", err)
			fmt.Fprintf(a.stdout, "%s: FAILED open or read\n", name)
			ok = false
			continue
		}
		digest, err := a.digest(input)
		if err != nil {
			return false, fmt.Errorf("%s: %w", name, err)
		}
		if digest == expected {
			fmt.Fprintf(a.stdout, "%s: OK\n", name)
		} else {
			a.logger.Debug("checksum mismatch", "file", name,
				"expected", expected, "got", digest)
			fmt.Fprintf(a.stdout, "%s: FAILED\n", name)
			ok = false
		}
	}
	if err := scanner.Err(); err != nil {
		return false, err
	}
	return ok, nil
}

// selfTest runs the known-answer vectors from file, or the embedded
// vectors for builtinVectors.
func (a *app) selfTest(file string) (bool, error) {
	var vs []vectors.Vector
	if file == builtinVectors {
		vs = vectors.Default()
	} else {
		var err error
		vs, err = vectors.Load(file)
		if err != nil {
			return false, err
		}
	}
	failures := vectors.Check(vs)
	for _, failure := range failures {
		fmt.Fprintf(a.stdout, "FAIL %s\n", failure)
	}
	fmt.Fprintf(a.stdout, "%d/%d vectors passed\n",
		len(vs)-len(failures), len(vs))
	return len(failures) == 0, nil
}
