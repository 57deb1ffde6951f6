package command

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		verify  func(t *testing.T, cmd *Command)
	}{
		{
			name:  "protocol and code only",
			input: "3,20DF10EF",
			verify: func(t *testing.T, cmd *Command) {
				if cmd.Protocol != 3 {
					t.Errorf("protocol = %d, want 3", cmd.Protocol)
				}
				if cmd.Code != 0x20DF10EF {
					t.Errorf("code = 0x%X, want 0x20DF10EF", cmd.Code)
				}
				if cmd.Bits != 0 {
					t.Errorf("bits = %d, want 0", cmd.Bits)
				}
				if cmd.Repeats != 0 {
					t.Errorf("repeats = %d, want 0", cmd.Repeats)
				}
			},
		},
		{
			name:  "full four token form",
			input: "7,E0E040BF,32,2",
			verify: func(t *testing.T, cmd *Command) {
				if cmd.Protocol != 7 {
					t.Errorf("protocol = %d, want 7", cmd.Protocol)
				}
				if cmd.Code != 0xE0E040BF {
					t.Errorf("code = 0x%X, want 0xE0E040BF", cmd.Code)
				}
				if cmd.Bits != 32 {
					t.Errorf("bits = %d, want 32", cmd.Bits)
				}
				if cmd.Repeats != 2 {
					t.Errorf("repeats = %d, want 2", cmd.Repeats)
				}
			},
		},
		{
			name:  "payload preserves everything after first comma",
			input: "30,38000,1,1,170,170,20,63",
			verify: func(t *testing.T, cmd *Command) {
				if cmd.Payload != "38000,1,1,170,170,20,63" {
					t.Errorf("payload = %q, want raw substring", cmd.Payload)
				}
				// 38000 is also valid hex, so the unconditional code parse
				// still succeeds even though it is a don't-care here
				if cmd.Code != 0x38000 {
					t.Errorf("code = 0x%X, want 0x38000", cmd.Code)
				}
			},
		},
		{
			name:  "non hex second token is a don't-care",
			input: "25,R2,0000,0067",
			verify: func(t *testing.T, cmd *Command) {
				if cmd.Code != 0 {
					t.Errorf("code = 0x%X, want 0 for non-hex token", cmd.Code)
				}
				if cmd.Payload != "R2,0000,0067" {
					t.Errorf("payload = %q, want %q", cmd.Payload, "R2,0000,0067")
				}
			},
		},
		{
			name:  "garbage bits and repeats treated as absent",
			input: "3,4FB4AB0F,abc,xyz",
			verify: func(t *testing.T, cmd *Command) {
				if cmd.Bits != 0 {
					t.Errorf("bits = %d, want 0", cmd.Bits)
				}
				if cmd.Repeats != 0 {
					t.Errorf("repeats = %d, want 0", cmd.Repeats)
				}
			},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no comma at all",
			input:   "3",
			wantErr: true,
		},
		{
			name:    "missing code token",
			input:   "3,",
			wantErr: true,
		},
		{
			name:    "non numeric protocol id",
			input:   "NEC,20DF10EF",
			wantErr: true,
		},
		{
			name:    "negative protocol id",
			input:   "-1,20DF10EF",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedCommand) {
					t.Errorf("Parse(%q) error = %v, want ErrMalformedCommand", tt.input, err)
				}
				return
			}
			if tt.verify != nil {
				tt.verify(t, cmd)
			}
		})
	}
}

func TestParsePayloadInvariant(t *testing.T) {
	// The payload must always be the original substring after the first
	// comma, for short-form and long-form commands alike.
	inputs := map[string]string{
		"3,20DF10EF,32,1":          "20DF10EF,32,1",
		"25,R2,0000,0067,0000":     "R2,0000,0067,0000",
		"31,1:1,1,38000,1,1,170":   "1:1,1,38000,1,1,170",
		"16,0x1122334455667788AA,": "0x1122334455667788AA,",
	}
	for input, want := range inputs {
		cmd, err := Parse(input)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", input, err)
			continue
		}
		if cmd.Payload != want {
			t.Errorf("Parse(%q).Payload = %q, want %q", input, cmd.Payload, want)
		}
	}
}
