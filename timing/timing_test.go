package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		size     FileSize
		expected string
	}{
		{0, "0B"},
		{1000, "1000B"},
		{1001, "1kB"},
		{64 * 1024, "65kB"},
		{2 * 1000 * 1000, "2MB"},
		{3 * 1000 * 1000 * 1000, "3GB"},
		{4 * 1000 * 1000 * 1000 * 1000, "4TB"},
	}
	for _, test := range tests {
		if got := test.size.String(); got != test.expected {
			t.Errorf("FileSize(%d) = %s, want %s",
				uint64(test.size), got, test.expected)
		}
	}
}

func TestSamples(t *testing.T) {
	timing := NewTiming()
	first := timing.Sample("Pad", []string{"64B"})
	second := timing.Sample("Compress", nil)

	if !first.Start.Equal(timing.Start) {
		t.Errorf("first sample does not start at the timing start")
	}
	if !second.Start.Equal(first.End) {
		t.Errorf("second sample does not start at the end of the first")
	}
	if timing.Total() != second.End.Sub(timing.Start) {
		t.Errorf("Total = %v, want %v", timing.Total(), second.End.Sub(timing.Start))
	}

	second.SubSample("Block 1", second.Start.Add(time.Millisecond))
	second.SubSample("Block 2", second.Start.Add(3*time.Millisecond))
	if len(second.Samples) != 2 {
		t.Fatalf("got %d sub-samples, want 2", len(second.Samples))
	}
	if d := second.Samples[0].Duration(); d != time.Millisecond {
		t.Errorf("sub-sample duration %v, want 1ms", d)
	}
	if d := second.Samples[1].Duration(); d != 2*time.Millisecond {
		t.Errorf("second sub-sample duration %v, want 2ms", d)
	}

	second.AbsSubSample("Mean block", 5*time.Millisecond)
	if len(second.Samples) != 3 {
		t.Fatalf("got %d sub-samples, want 3", len(second.Samples))
	}
	if d := second.Samples[2].Duration(); d != 5*time.Millisecond {
		t.Errorf("absolute sub-sample duration %v, want 5ms", d)
	}
	if second.Samples[2].Abs != 5*time.Millisecond {
		t.Errorf("absolute sub-sample Abs %v, want 5ms", second.Samples[2].Abs)
	}
}

func TestPrint(t *testing.T) {
	timing := NewTiming()

	var buf bytes.Buffer
	timing.Print(&buf, 0)
	if buf.Len() != 0 {
		t.Fatalf("empty timing printed %q", buf.String())
	}

	timing.Sample("Pad", []string{"64B"})
	sample := timing.Sample("Compress", []string{"1 block"})
	sample.SubSample("Block 1", sample.End)
	sample.AbsSubSample("Slowest block", 7*time.Microsecond)
	timing.Print(&buf, 3)

	out := buf.String()
	for _, want := range []string{"Op", "Pad", "Compress", "Block 1",
		"Slowest block", "7µs", "Bytes", "Total", "3B"} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q:\n%s", want, out)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := percent(time.Second, 0); got != "-" {
		t.Errorf("percent(1s, 0) = %s", got)
	}
	if got := percent(time.Second, 4*time.Second); got != "25.00%" {
		t.Errorf("percent(1s, 4s) = %s", got)
	}
}
