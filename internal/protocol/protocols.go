package protocol

import "fmt"

// Protocol identifies a supported infrared waveform protocol. The numeric
// values are wire-stable: they appear verbatim in command strings and
// receive reports, and follow the de-facto numbering used by embedded IR
// libraries so captures and commands stay interchangeable with other
// gateways.
type Protocol int

const (
	// Unknown is the sentinel decode type for unrecognized captures. It
	// never appears in the dispatch table; receive reports carry the raw
	// duration train instead.
	Unknown Protocol = -1
	// Unused is reserved and never dispatchable.
	Unused Protocol = 0

	RC5          Protocol = 1
	RC6          Protocol = 2
	NEC          Protocol = 3
	Sony         Protocol = 4
	Panasonic    Protocol = 5
	JVC          Protocol = 6
	Samsung      Protocol = 7
	Whynter      Protocol = 8
	AiwaRCT501   Protocol = 9
	LG           Protocol = 10
	Sanyo        Protocol = 11
	Mitsubishi   Protocol = 12
	Dish         Protocol = 13
	Sharp        Protocol = 14
	Coolix       Protocol = 15
	Daikin       Protocol = 16
	Denon        Protocol = 17
	Kelvinator   Protocol = 18
	Sherwood     Protocol = 19
	MitsubishiAC Protocol = 20
	RCMM         Protocol = 21
	SanyoLC7461  Protocol = 22
	RC5X         Protocol = 23
	Gree         Protocol = 24
	Pronto       Protocol = 25
	Argo         Protocol = 27
	Trotec       Protocol = 28
	Nikai        Protocol = 29
	Raw          Protocol = 30
	GlobalCache  Protocol = 31
	ToshibaAC    Protocol = 32
	FujitsuAC    Protocol = 33
	Midea        Protocol = 34
	MagiQuest    Protocol = 35
	Lasertag     Protocol = 36
	CarrierAC    Protocol = 37
	HaierAC      Protocol = 38
	HitachiAC    Protocol = 40
	GICable      Protocol = 43
	HaierACYRW02 Protocol = 44
	WhirlpoolAC  Protocol = 45
	SamsungAC    Protocol = 46
	Lutron       Protocol = 47
	ElectraAC    Protocol = 48
	PanasonicAC  Protocol = 49
	Pioneer      Protocol = 50
	LG2          Protocol = 51
	Teco         Protocol = 55
	Samsung36    Protocol = 56
	TCL112AC     Protocol = 57
	LegoPF       Protocol = 58
)

// policy holds the static dispatch parameters for one protocol: the bit
// width used when the caller supplies none, the repeat floor the caller's
// value is raised to (never lowered from), and the state block size for
// stateful AC protocols.
type policy struct {
	name        string
	defaultBits int
	minRepeats  int
	stateBytes  int // >0 marks a stateful AC protocol
}

// policies is the protocol dispatch policy table. Raw, Pronto and GlobalCache
// carry no scalar defaults because their payloads define their own shape;
// they appear here so their ids are recognized as supported.
var policies = map[Protocol]policy{
	RC5:          {name: "RC5", defaultBits: 12},
	RC6:          {name: "RC6", defaultBits: 20},
	NEC:          {name: "NEC", defaultBits: 32},
	Sony:         {name: "SONY", defaultBits: 20, minRepeats: 2},
	Panasonic:    {name: "PANASONIC", defaultBits: 48},
	JVC:          {name: "JVC", defaultBits: 16},
	Samsung:      {name: "SAMSUNG", defaultBits: 32},
	Whynter:      {name: "WHYNTER", defaultBits: 32},
	AiwaRCT501:   {name: "AIWA_RC_T501", defaultBits: 15, minRepeats: 1},
	LG:           {name: "LG", defaultBits: 28},
	Sanyo:        {name: "SANYO", defaultBits: 12},
	Mitsubishi:   {name: "MITSUBISHI", defaultBits: 16, minRepeats: 1},
	Dish:         {name: "DISH", defaultBits: 16, minRepeats: 3},
	Sharp:        {name: "SHARP", defaultBits: 15},
	Coolix:       {name: "COOLIX", defaultBits: 24, minRepeats: 1},
	Denon:        {name: "DENON", defaultBits: 14},
	Sherwood:     {name: "SHERWOOD", defaultBits: 32, minRepeats: 1},
	RCMM:         {name: "RCMM", defaultBits: 24},
	SanyoLC7461:  {name: "SANYO_LC7461", defaultBits: 42},
	RC5X:         {name: "RC5X", defaultBits: 13},
	Nikai:        {name: "NIKAI", defaultBits: 24},
	Midea:        {name: "MIDEA", defaultBits: 48, minRepeats: 1},
	MagiQuest:    {name: "MAGIQUEST", defaultBits: 56},
	Lasertag:     {name: "LASERTAG", defaultBits: 13},
	CarrierAC:    {name: "CARRIER_AC", defaultBits: 32},
	GICable:      {name: "GICABLE", defaultBits: 16, minRepeats: 1},
	Lutron:       {name: "LUTRON", defaultBits: 35},
	Pioneer:      {name: "PIONEER", defaultBits: 64},
	LG2:          {name: "LG2", defaultBits: 28},
	Teco:         {name: "TECO", defaultBits: 35},
	Samsung36:    {name: "SAMSUNG36", defaultBits: 36},
	LegoPF:       {name: "LEGOPF", defaultBits: 16},

	// Long-form codecs
	Pronto:      {name: "PRONTO"},
	Raw:         {name: "RAW"},
	GlobalCache: {name: "GLOBALCACHE"},

	// Stateful AC protocols; state block sizes in bytes
	Daikin:       {name: "DAIKIN", stateBytes: 27},
	Kelvinator:   {name: "KELVINATOR", stateBytes: 16},
	MitsubishiAC: {name: "MITSUBISHI_AC", stateBytes: 18, minRepeats: 1},
	Gree:         {name: "GREE", stateBytes: 8},
	Argo:         {name: "ARGO", stateBytes: 12},
	Trotec:       {name: "TROTEC", stateBytes: 9},
	ToshibaAC:    {name: "TOSHIBA_AC", stateBytes: 9, minRepeats: 1},
	FujitsuAC:    {name: "FUJITSU_AC", stateBytes: 16},
	HaierAC:      {name: "HAIER_AC", stateBytes: 9},
	HitachiAC:    {name: "HITACHI_AC", stateBytes: 28},
	HaierACYRW02: {name: "HAIER_AC_YRW02", stateBytes: 14},
	WhirlpoolAC:  {name: "WHIRLPOOL_AC", stateBytes: 21},
	SamsungAC:    {name: "SAMSUNG_AC", stateBytes: 14},
	ElectraAC:    {name: "ELECTRA_AC", stateBytes: 13},
	PanasonicAC:  {name: "PANASONIC_AC", stateBytes: 27},
	TCL112AC:     {name: "TCL112_AC", stateBytes: 14},
}

// Supported reports whether p has a dispatch table entry.
func (p Protocol) Supported() bool {
	_, ok := policies[p]
	return ok
}

// IsStateful reports whether p carries an AC-style state block instead of a
// scalar code.
func (p Protocol) IsStateful() bool {
	return policies[p].stateBytes > 0
}

// IsLongForm reports whether p's command payload is structured rather than
// a scalar code: the three bespoke codecs plus every stateful AC protocol.
func (p Protocol) IsLongForm() bool {
	switch p {
	case Raw, Pronto, GlobalCache:
		return true
	}
	return p.IsStateful()
}

// DefaultBits returns the bit width used when the caller supplies none.
func (p Protocol) DefaultBits() int {
	return policies[p].defaultBits
}

// MinRepeats returns the repeat floor for p. Several protocols need one or
// more repeats to be reliably recognized by receivers.
func (p Protocol) MinRepeats() int {
	return policies[p].minRepeats
}

// StateBytes returns the expected state block size for stateful protocols,
// zero otherwise.
func (p Protocol) StateBytes() int {
	return policies[p].stateBytes
}

// String returns the protocol's conventional name.
func (p Protocol) String() string {
	if p == Unknown {
		return "UNKNOWN"
	}
	if s, ok := policies[p]; ok {
		return s.name
	}
	return fmt.Sprintf("UNSUPPORTED(%d)", int(p))
}

// ShortForm returns all dispatchable scalar-code protocol ids, useful for
// exercising the full table.
func ShortForm() []Protocol {
	out := make([]Protocol, 0, len(policies))
	for p := range policies {
		if !p.IsLongForm() {
			out = append(out, p)
		}
	}
	return out
}
