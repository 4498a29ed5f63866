package series

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := New("pcepi", []float64{101.2, 101.9, 102.4})
	require.NoError(t, err)
	require.Equal(t, "pcepi", s.Name())
	require.Equal(t, 3, s.Len())
	require.Equal(t, []float64{101.2, 101.9, 102.4}, s.Values())
	require.Equal(t, 102.4, s.Value(2))
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"empty", []float64{}},
		{"nil", nil},
		{"nan", []float64{1, math.NaN(), 3}},
		{"positive inf", []float64{1, math.Inf(1)}},
		{"negative inf", []float64{math.Inf(-1), 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("bad", tt.values)
			require.Error(t, err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	input := []float64{1, 2, 3}
	s, err := New("copy", input)
	require.NoError(t, err)

	input[0] = 99
	assert.Equal(t, 1.0, s.Value(0))
}

func TestIndex(t *testing.T) {
	s, err := New("idx", []float64{5, 6, 7, 8})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 4}, s.Index())
}

func TestNewTimed(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.AddDate(0, 1, 0), base.AddDate(0, 2, 0)}

	s, err := NewTimed("timed", []float64{1, 2, 3}, times)
	require.NoError(t, err)
	require.True(t, s.Timed())
	require.Len(t, s.Times(), 3)

	ts, ok := s.TimeAt(1)
	require.True(t, ok)
	assert.Equal(t, base.AddDate(0, 1, 0), ts)

	_, ok = s.TimeAt(3)
	assert.False(t, ok)
	_, ok = s.TimeAt(-1)
	assert.False(t, ok)
}

func TestNewTimed_Invalid(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("length mismatch", func(t *testing.T) {
		_, err := NewTimed("bad", []float64{1, 2, 3}, []time.Time{base})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatched lengths")
	})

	t.Run("descending timestamps", func(t *testing.T) {
		times := []time.Time{base.AddDate(0, 1, 0), base}
		_, err := NewTimed("bad", []float64{1, 2}, times)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ascending")
	})

	t.Run("duplicate timestamps allowed", func(t *testing.T) {
		times := []time.Time{base, base}
		_, err := NewTimed("dup", []float64{1, 2}, times)
		require.NoError(t, err)
	})
}

func TestUntimedSeries(t *testing.T) {
	s, err := New("plain", []float64{1, 2})
	require.NoError(t, err)

	assert.False(t, s.Timed())
	assert.Nil(t, s.Times())
	_, ok := s.TimeAt(0)
	assert.False(t, ok)
}

func TestFingerprint(t *testing.T) {
	s1, err := New("one", []float64{1, 2, 3})
	require.NoError(t, err)
	s2, err := New("two", []float64{1, 2, 3})
	require.NoError(t, err)
	s3, err := New("one", []float64{1, 2, 4})
	require.NoError(t, err)

	// Same observations, same fingerprint regardless of name.
	assert.Equal(t, s1.Fingerprint(), s2.Fingerprint())
	assert.NotEqual(t, s1.Fingerprint(), s3.Fingerprint())
}

func TestSummaryStats(t *testing.T) {
	s, err := New("stats", []float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, s.Mean(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), s.StdDev(), 1e-12)
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
}

func TestString(t *testing.T) {
	s, err := New("plain", []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "Series{Name: plain, Len: 3}", s.String())

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	timed, err := NewTimed("timed", []float64{1, 2}, []time.Time{base, base.AddDate(0, 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, "Series{Name: timed, Len: 2, Span: 2020-01-01..2020-02-01}", timed.String())
}
