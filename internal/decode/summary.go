package decode

import "errors"

// Summary counts the outcome of a run.
type Summary struct {
	Lines          int // Lines read, including blank ones
	Blank          int // Empty lines skipped without a diagnostic
	Decoded        int // Records written to the output
	Failures       map[ErrorKind]int
	TimingDisabled bool // High-precision timing switched itself off
}

// NewSummary creates an empty summary
func NewSummary() *Summary {
	return &Summary{Failures: make(map[ErrorKind]int)}
}

// Failed returns the number of skipped records
func (s *Summary) Failed() int {
	n := 0
	for _, c := range s.Failures {
		n += c
	}
	return n
}

// Attempted returns the number of non-blank lines
func (s *Summary) Attempted() int {
	return s.Lines - s.Blank
}

// DecodedRatio returns Decoded / Attempted, or 1 for an empty input
func (s *Summary) DecodedRatio() float64 {
	if s.Attempted() == 0 {
		return 1
	}
	return float64(s.Decoded) / float64(s.Attempted())
}

func (s *Summary) recordFailure(err error) {
	var re *RecordError
	if errors.As(err, &re) {
		s.Failures[re.Kind]++
		return
	}
	s.Failures[KindPayload]++
}
