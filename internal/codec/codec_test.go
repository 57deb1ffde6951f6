package codec

import (
	"errors"
	"testing"
)

func TestParseRaw(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
		verify  func(t *testing.T, p *RawPayload)
	}{
		{
			name:    "frequency plus durations",
			payload: "38000,9000,4500,560,560",
			verify: func(t *testing.T, p *RawPayload) {
				if p.FrequencyHz != 38000 {
					t.Errorf("frequency = %d, want 38000", p.FrequencyHz)
				}
				want := []uint16{9000, 4500, 560, 560}
				if len(p.Durations) != len(want) {
					t.Fatalf("durations len = %d, want %d", len(p.Durations), len(want))
				}
				for i := range want {
					if p.Durations[i] != want[i] {
						t.Errorf("durations[%d] = %d, want %d", i, p.Durations[i], want[i])
					}
				}
			},
		},
		{
			name:    "minimum two values",
			payload: "38000,560",
			verify: func(t *testing.T, p *RawPayload) {
				if len(p.Durations) != 1 {
					t.Errorf("durations len = %d, want 1", len(p.Durations))
				}
			},
		},
		{
			name:    "single value is insufficient",
			payload: "38000",
			wantErr: true,
		},
		{
			name:    "empty payload is insufficient",
			payload: "",
			wantErr: true,
		},
		{
			name:    "non numeric duration",
			payload: "38000,abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseRaw(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRaw(%q) error = %v, wantErr %v", tt.payload, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.verify != nil {
				tt.verify(t, p)
			}
		})
	}
}

func TestParseRawInsufficientError(t *testing.T) {
	_, err := ParseRaw("38000")
	if !errors.Is(err, ErrInsufficientValues) {
		t.Errorf("ParseRaw(\"38000\") error = %v, want ErrInsufficientValues", err)
	}
}

func TestParsePronto(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		repeats int
		wantErr bool
		verify  func(t *testing.T, p *ProntoPayload)
	}{
		{
			name:    "plain payload keeps caller repeats",
			payload: "0000,0067,0000,0015,0060,0018",
			repeats: 5,
			verify: func(t *testing.T, p *ProntoPayload) {
				if p.Repeats != 5 {
					t.Errorf("repeats = %d, want 5", p.Repeats)
				}
				if p.HasOverride {
					t.Error("HasOverride = true, want false")
				}
				if len(p.Values) != 6 {
					t.Errorf("values len = %d, want 6", len(p.Values))
				}
				if p.Values[1] != 0x0067 {
					t.Errorf("values[1] = 0x%04X, want 0x0067", p.Values[1])
				}
			},
		},
		{
			name:    "R token overrides caller repeats",
			payload: "R2,0000,0067,0000,0015,0060,0018",
			repeats: 9,
			verify: func(t *testing.T, p *ProntoPayload) {
				if p.Repeats != 2 {
					t.Errorf("repeats = %d, want 2 (override)", p.Repeats)
				}
				if !p.HasOverride {
					t.Error("HasOverride = false, want true")
				}
				// The R2 token must not appear in the value sequence
				if len(p.Values) != 6 {
					t.Errorf("values len = %d, want 6", len(p.Values))
				}
				if p.Values[0] != 0x0000 || p.Values[1] != 0x0067 {
					t.Errorf("values start = [0x%04X 0x%04X], want [0x0000 0x0067]",
						p.Values[0], p.Values[1])
				}
			},
		},
		{
			name:    "lowercase r also overrides",
			payload: "r3,0000,0067,0000,0015,0060,0018",
			verify: func(t *testing.T, p *ProntoPayload) {
				if p.Repeats != 3 {
					t.Errorf("repeats = %d, want 3", p.Repeats)
				}
			},
		},
		{
			name:    "below minimum value count",
			payload: "0000,0067,0000,0015,0060",
			wantErr: true,
		},
		{
			name:    "override does not count toward minimum",
			payload: "R2,0000,0067,0000,0015,0060",
			wantErr: true,
		},
		{
			name:    "garbage override",
			payload: "Rx,0000,0067,0000,0015,0060,0018",
			wantErr: true,
		},
		{
			name:    "non hex value",
			payload: "0000,0067,0000,0015,0060,ZZZZ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePronto(tt.payload, tt.repeats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePronto(%q) error = %v, wantErr %v", tt.payload, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.verify != nil {
				tt.verify(t, p)
			}
		})
	}
}

func TestParseProntoInsufficientError(t *testing.T) {
	_, err := ParsePronto("0000,0067", 0)
	if !errors.Is(err, ErrInsufficientValues) {
		t.Errorf("short pronto error = %v, want ErrInsufficientValues", err)
	}
}

func TestParseGlobalCache(t *testing.T) {
	// A prefixed and an unprefixed payload must consume to the identical
	// value sequence.
	prefixed, err := ParseGlobalCache("1:1,1,38000,1,1,170,170")
	if err != nil {
		t.Fatalf("ParseGlobalCache(prefixed) error = %v", err)
	}
	plain, err := ParseGlobalCache("38000,1,1,170,170")
	if err != nil {
		t.Fatalf("ParseGlobalCache(plain) error = %v", err)
	}
	if len(prefixed.Values) != len(plain.Values) {
		t.Fatalf("value counts differ: %d vs %d", len(prefixed.Values), len(plain.Values))
	}
	for i := range plain.Values {
		if prefixed.Values[i] != plain.Values[i] {
			t.Errorf("values[%d]: prefixed %d != plain %d", i, prefixed.Values[i], plain.Values[i])
		}
	}

	if _, err := ParseGlobalCache(""); !errors.Is(err, ErrInsufficientValues) {
		t.Errorf("empty payload error = %v, want ErrInsufficientValues", err)
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []byte
		wantErr bool
	}{
		{
			name:    "even length hex block",
			payload: "190E400000000000000000000000000006",
			want: []byte{0x19, 0x0E, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x06},
		},
		{
			name:    "odd length gets leading zero nibble",
			payload: "ABC",
			want:    []byte{0x0A, 0xBC},
		},
		{
			name:    "trailing tokens ignored",
			payload: "1A2B,0,0",
			want:    []byte{0x1A, 0x2B},
		},
		{
			name:    "empty state",
			payload: "",
			wantErr: true,
		},
		{
			name:    "non hex characters",
			payload: "GG11",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseState(tt.payload)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseState(%q) error = %v, wantErr %v", tt.payload, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("state[%d] = 0x%02X, want 0x%02X", i, got[i], tt.want[i])
				}
			}
		})
	}
}
