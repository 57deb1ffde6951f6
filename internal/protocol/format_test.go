package protocol

import (
	"fmt"
	"strings"
	"testing"

	"github.com/skoona/sknSensors-IRService/internal/command"
)

func TestFormatCapture(t *testing.T) {
	tests := []struct {
		name    string
		capture *Capture
		want    string
	}{
		{
			name:    "short form with bits",
			capture: &Capture{Type: NEC, Value: 0x20DF10EF, Bits: 32},
			want:    "3,20DF10EF,32",
		},
		{
			name:    "stateful omits bit count",
			capture: &Capture{Type: Gree, Bits: 64, State: []byte{0x19, 0x08, 0x40, 0x00, 0x00, 0x00, 0x00, 0x06}},
			want:    "24,1908400000000006",
		},
		{
			name:    "unknown appends raw durations",
			capture: &Capture{Type: Unknown, Value: 0xA90, Bits: 0, Raw: []uint32{8950, 4450, 600}},
			want:    "-1,A90;8950,4450,600,0",
		},
		{
			name:    "oversized duration split into max zero pairs",
			capture: &Capture{Type: Unknown, Value: 0x0, Bits: 0, Raw: []uint32{70000}},
			want:    "-1,0;65535,0,4465,0",
		},
		{
			name:    "double oversized duration",
			capture: &Capture{Type: Unknown, Value: 0x0, Bits: 0, Raw: []uint32{140000}},
			want:    "-1,0;65535,0,65535,0,8930,0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCapture(tt.capture); got != tt.want {
				t.Errorf("FormatCapture() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTripShortForm(t *testing.T) {
	// Parsing "p,hex(c),b,r" and feeding the dispatched result back through
	// the receive formatter must reproduce "p,hex(c)" with the bit count
	// appended (none of the short-form set is stateful).
	codes := []uint64{0x0, 0x1, 0xA90, 0x20DF10EF, 0xFFFFFFFFFFFFFFFF}
	for _, p := range ShortForm() {
		for _, code := range codes {
			for _, bits := range []int{0, p.DefaultBits()} {
				for _, repeats := range []int{0, 1, 4} {
					input := fmt.Sprintf("%d,%X,%d,%d", int(p), code, bits, repeats)
					cmd, err := command.Parse(input)
					if err != nil {
						t.Fatalf("Parse(%q) error = %v", input, err)
					}

					tx := &fakeTransmitter{}
					if err := Dispatch(tx, cmd); err != nil {
						t.Fatalf("Dispatch(%q) error = %v", input, err)
					}

					report := FormatCapture(&Capture{Type: tx.proto, Value: tx.code, Bits: tx.bits})
					wantPrefix := fmt.Sprintf("%d,%X", int(p), code)
					if !strings.HasPrefix(report, wantPrefix+",") {
						t.Errorf("round trip %q -> %q, want prefix %q", input, report, wantPrefix)
					}
					wantSuffix := fmt.Sprintf(",%d", EffectiveBits(p, bits))
					if !strings.HasSuffix(report, wantSuffix) {
						t.Errorf("round trip %q -> %q, want bit suffix %q", input, report, wantSuffix)
					}
				}
			}
		}
	}
}

func TestFormatEcho(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short form applies effective bits",
			input: "3,20DF10EF",
			want:  "3,20DF10EF,32",
		},
		{
			name:  "short form keeps explicit bits",
			input: "4,A90,12,2",
			want:  "4,A90,12",
		},
		{
			name:  "long form echoes payload",
			input: "30,38000,9000,4500,560,560",
			want:  "30,38000,9000,4500,560,560",
		},
		{
			name:  "stateful echoes payload",
			input: "24,1908400000000006",
			want:  "24,1908400000000006",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := command.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := FormatEcho(cmd); got != tt.want {
				t.Errorf("FormatEcho(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestProtocolPredicates(t *testing.T) {
	if !Protocol(3).Supported() {
		t.Error("NEC should be supported")
	}
	if Protocol(9999).Supported() {
		t.Error("9999 should not be supported")
	}
	if Unused.Supported() {
		t.Error("reserved id 0 should not be supported")
	}
	for _, p := range []Protocol{Raw, Pronto, GlobalCache, Gree, Daikin} {
		if !p.IsLongForm() {
			t.Errorf("%v should be long-form", p)
		}
	}
	for _, p := range []Protocol{NEC, Sony, Samsung} {
		if p.IsLongForm() {
			t.Errorf("%v should be short-form", p)
		}
		if p.IsStateful() {
			t.Errorf("%v should not be stateful", p)
		}
	}
	if got := NEC.String(); got != "NEC" {
		t.Errorf("NEC.String() = %q", got)
	}
	if got := Unknown.String(); got != "UNKNOWN" {
		t.Errorf("Unknown.String() = %q", got)
	}
}
