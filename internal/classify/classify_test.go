package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	d := Densities{
		War:   []float64{0.4, 0.2, 0.6},
		Peace: []float64{0.3, 0.5, 0.2},
	}
	labels, err := Classify(d, 3)
	require.NoError(t, err)
	assert.Equal(t, []Label{WarRelated, PeaceRelated, WarRelated}, labels)
}

func TestClassifyTieIsPeace(t *testing.T) {
	labels, err := Classify(Densities{War: []float64{0.3, 0}, Peace: []float64{0.3, 0}}, 2)
	require.NoError(t, err)
	assert.Equal(t, []Label{PeaceRelated, PeaceRelated}, labels)
}

func TestClassifyLengthMismatch(t *testing.T) {
	tests := []struct {
		name     string
		d        Densities
		chapters int
	}{
		{name: "war shorter", d: Densities{War: []float64{0.1}, Peace: []float64{0.1, 0.2}}, chapters: 2},
		{name: "peace shorter", d: Densities{War: []float64{0.1, 0.2}, Peace: []float64{0.1}}, chapters: 2},
		{name: "chapter count differs", d: Densities{War: []float64{0.1}, Peace: []float64{0.2}}, chapters: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := Classify(tt.d, tt.chapters)
			require.ErrorIs(t, err, ErrLengthMismatch)
			assert.Nil(t, labels)
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	labels, err := Classify(Densities{}, 0)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestTally(t *testing.T) {
	war, peace := Tally([]Label{WarRelated, PeaceRelated, WarRelated})
	assert.Equal(t, 2, war)
	assert.Equal(t, 1, peace)
}
