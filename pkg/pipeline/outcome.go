package pipeline

import "strconv"

// Outcome is the terminal extraction of a run: a final number, or the
// distinct no-result marker. A failed run never exposes a numeric value,
// so a displayed number is always a real result.
type Outcome struct {
	Value  float64
	Failed bool
}

func Success(v float64) Outcome {
	return Outcome{Value: v}
}

func Failure() Outcome {
	return Outcome{Failed: true}
}

func (o Outcome) IsSuccess() bool {
	return !o.Failed
}

func (o Outcome) String() string {
	if o.Failed {
		return "no result"
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}
