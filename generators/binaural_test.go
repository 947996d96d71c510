package generators

import (
	"math"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		ok   bool
	}{
		{"typical", Params{44100, 1000, 10, 10}, true},
		{"minimum", Params{1, 1, 1, 1}, true},
		{"zero rate", Params{0, 1000, 10, 10}, false},
		{"zero base", Params{44100, 0, 10, 10}, false},
		{"negative diff", Params{44100, 1000, -1, 10}, false},
		{"zero duration", Params{44100, 1000, 10, 0}, false},
		{"overflow", Params{math.MaxInt, 1000, 10, 2}, false},
	}
	for _, tt := range tests {
		err := tt.p.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected an error for %+v", tt.name, tt.p)
		}
	}
}

func TestBinauralToneRejectsInvalid(t *testing.T) {
	if _, err := BinauralTone(Params{44100, 1000, 0, 10}); err == nil {
		t.Error("Expected error for zero frequency difference")
	}
}

func TestBinauralToneFirstFrames(t *testing.T) {
	p := Params{SampleRate: 8, BaseFrequency: 1, FrequencyDiff: 1, Duration: 1}
	s, err := BinauralTone(p)
	if err != nil {
		t.Fatal(err)
	}

	buf := make([][2]float64, 16)
	n, ok := s.Stream(buf)
	if !ok || n != 8 {
		t.Fatalf("Stream returned (%d, %v), want (8, true)", n, ok)
	}

	for i := 0; i < n; i++ {
		tm := float64(i) / 8
		wantL := math.Sin(2 * math.Pi * tm)
		wantR := math.Sin(4 * math.Pi * tm)
		if math.Abs(buf[i][0]-wantL) > 1e-12 || math.Abs(buf[i][1]-wantR) > 1e-12 {
			t.Errorf("frame %d = %v, want [%v %v]", i, buf[i], wantL, wantR)
		}
	}

	// t=0 is on the axis, t=duration is not
	if buf[0][0] != 0 || buf[0][1] != 0 {
		t.Errorf("first frame = %v, want silence", buf[0])
	}

	if n, ok := s.Stream(buf); ok || n != 0 {
		t.Errorf("exhausted Stream returned (%d, %v), want (0, false)", n, ok)
	}
}

func TestBinauralToneLongestClip(t *testing.T) {
	if testing.Short() {
		t.Skip("streams an hour of audio")
	}

	p := Params{SampleRate: 44100, BaseFrequency: 2000, FrequencyDiff: 60, Duration: 3600}
	s, err := BinauralTone(p)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	buf := make([][2]float64, 4096)
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		total += n
	}

	if total != 158760000 {
		t.Errorf("streamed %d frames, want 158760000", total)
	}
}
