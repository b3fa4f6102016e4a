package classify

import (
	"errors"
	"fmt"
)

type Label string

const (
	WarRelated   Label = "War-related"
	PeaceRelated Label = "Peace-related"
)

var ErrLengthMismatch = errors.New("density length mismatch")

// Densities holds index-aligned war and peace scores, one per chapter.
type Densities struct {
	War   []float64
	Peace []float64
}

// Check fails when either sequence does not have one entry per chapter.
func (d Densities) Check(chapters int) error {
	if len(d.War) != chapters || len(d.Peace) != chapters {
		return fmt.Errorf("%w: %d war, %d peace, %d chapters", ErrLengthMismatch, len(d.War), len(d.Peace), chapters)
	}
	return nil
}

// Classify labels each chapter War-related only when its war density is
// strictly greater than its peace density. Nothing is labelled on mismatch.
func Classify(d Densities, chapters int) ([]Label, error) {
	if err := d.Check(chapters); err != nil {
		return nil, err
	}
	labels := make([]Label, chapters)
	for i := range labels {
		labels[i] = Decide(d.War[i], d.Peace[i])
	}
	return labels, nil
}

func Decide(war, peace float64) Label {
	if war > peace {
		return WarRelated
	}
	return PeaceRelated
}

func Tally(labels []Label) (war, peace int) {
	for _, l := range labels {
		if l == WarRelated {
			war++
		} else {
			peace++
		}
	}
	return war, peace
}
