package wipe

import "fmt"

// Algorithm selects the overwrite schedule for a session.
type Algorithm string

const (
	AlgoZero    Algorithm = "zero"
	AlgoRandom  Algorithm = "random"
	AlgoDod5220 Algorithm = "dod5220"
	AlgoGutmann Algorithm = "gutmann"
	AlgoCustom  Algorithm = "custom"
)

// ParseAlgorithm validates an algorithm name from flags or config.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	switch a {
	case AlgoZero, AlgoRandom, AlgoDod5220, AlgoGutmann, AlgoCustom:
		return a, nil
	default:
		return "", fmt.Errorf("unsupported wipe algorithm: %s", s)
	}
}

// PatternKind discriminates the byte content of a pass.
type PatternKind int

const (
	PatternFixed PatternKind = iota
	PatternSequence
	PatternRandom
)

// Pattern is the byte content written during one pass: a fixed byte, a
// fixed repeating sequence, or fresh random bytes on every buffer fill.
type Pattern struct {
	Kind PatternKind
	Byte byte
	Seq  []byte
}

// PassSpec describes one overwrite pass within a schedule.
type PassSpec struct {
	Pass        int
	TotalPasses int
	Pattern     Pattern
}

func fixed(b byte) Pattern  { return Pattern{Kind: PatternFixed, Byte: b} }
func seq(b ...byte) Pattern { return Pattern{Kind: PatternSequence, Seq: b} }
func random() Pattern       { return Pattern{Kind: PatternRandom} }

// gutmannFixed holds the 27 deterministic steps of the standard 35-pass
// Gutmann schedule; four random passes precede and follow them.
var gutmannFixed = []Pattern{
	fixed(0x55),
	fixed(0xAA),
	seq(0x92, 0x49, 0x24),
	seq(0x49, 0x24, 0x92),
	seq(0x24, 0x92, 0x49),
	fixed(0x00),
	fixed(0x11),
	fixed(0x22),
	fixed(0x33),
	fixed(0x44),
	fixed(0x55),
	fixed(0x66),
	fixed(0x77),
	fixed(0x88),
	fixed(0x99),
	fixed(0xAA),
	fixed(0xBB),
	fixed(0xCC),
	fixed(0xDD),
	fixed(0xEE),
	fixed(0xFF),
	seq(0x92, 0x49, 0x24),
	seq(0x49, 0x24, 0x92),
	seq(0x24, 0x92, 0x49),
	seq(0x6D, 0xB6, 0xDB),
	seq(0xB6, 0xDB, 0x6D),
	seq(0xDB, 0x6D, 0xB6),
}

// PassesFor returns the ordered pass schedule for an algorithm. The pass
// count and pattern kinds are deterministic; random content is not.
// customPasses only applies to AlgoCustom and must be at least 1.
func PassesFor(algo Algorithm, customPasses int) ([]PassSpec, error) {
	var patterns []Pattern

	switch algo {
	case AlgoZero:
		patterns = []Pattern{fixed(0x00)}
	case AlgoRandom:
		patterns = []Pattern{random()}
	case AlgoDod5220:
		patterns = []Pattern{fixed(0x00), fixed(0xFF), random()}
	case AlgoGutmann:
		patterns = make([]Pattern, 0, 35)
		for i := 0; i < 4; i++ {
			patterns = append(patterns, random())
		}
		patterns = append(patterns, gutmannFixed...)
		for i := 0; i < 4; i++ {
			patterns = append(patterns, random())
		}
	case AlgoCustom:
		if customPasses < 1 {
			return nil, fmt.Errorf("custom algorithm requires at least 1 pass, got %d", customPasses)
		}
		patterns = make([]Pattern, customPasses)
		for i := range patterns {
			patterns[i] = random()
		}
	default:
		return nil, fmt.Errorf("unsupported wipe algorithm: %s", algo)
	}

	specs := make([]PassSpec, len(patterns))
	for i, p := range patterns {
		specs[i] = PassSpec{Pass: i + 1, TotalPasses: len(patterns), Pattern: p}
	}
	return specs, nil
}

// Name describes the pattern for pass_start events.
func (p Pattern) Name() string {
	switch p.Kind {
	case PatternFixed:
		return fmt.Sprintf("0x%02X", p.Byte)
	case PatternSequence:
		s := "0x"
		for _, b := range p.Seq {
			s += fmt.Sprintf("%02X", b)
		}
		return s
	default:
		return "random"
	}
}

// Fill materializes the pattern into buf. Random patterns draw fresh bytes
// from src on every call, so no more than one buffer of entropy is ever
// held in memory.
func (p Pattern) Fill(buf []byte, src ByteSource) error {
	switch p.Kind {
	case PatternFixed:
		for i := range buf {
			buf[i] = p.Byte
		}
	case PatternSequence:
		for i := range buf {
			buf[i] = p.Seq[i%len(p.Seq)]
		}
	case PatternRandom:
		return src.Fill(buf)
	}
	return nil
}
