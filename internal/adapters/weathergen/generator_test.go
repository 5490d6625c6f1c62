package weathergen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brinevale/voyager-go/internal/domain/dice"
)

// scriptedSource replays fixed die faces, midpoint once exhausted.
type scriptedSource struct {
	faces []int
	pos   int
}

func (s *scriptedSource) Intn(n int) int {
	if s.pos < len(s.faces) {
		face := s.faces[s.pos]
		s.pos++
		if face < 1 {
			face = 1
		}
		if face > n {
			face = n
		}
		return face - 1
	}
	return n / 2
}

func TestGeneratorCalmClearDay(t *testing.T) {
	gen := NewGeneratorFromSource(&scriptedSource{faces: []int{4, 6, 50, 60, 3, 10, 8, 80, 90}})

	rec, err := gen.GenerateDayWeather(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 15, rec.Wind.SpeedMPH)
	assert.Equal(t, "E", rec.Wind.Direction)
	assert.Equal(t, 65, rec.Temperature.High)
	assert.Equal(t, 52, rec.Temperature.Low)
	assert.Empty(t, rec.Precipitation.Type)
	assert.Equal(t, "clear", rec.Sky)
}

func TestGeneratorGaleWithStorm(t *testing.T) {
	gen := NewGeneratorFromSource(&scriptedSource{faces: []int{8, 9, 3, 2, 17, 5, 20, 1, 6}})

	rec, err := gen.GenerateDayWeather(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 54, rec.Wind.SpeedMPH)
	assert.Equal(t, "NW", rec.Wind.Direction)
	assert.Equal(t, "thunderstorm", rec.Precipitation.Type)
	assert.Equal(t, "storm clouds", rec.Sky)
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(42)
	b := NewGenerator(42)

	for i := 0; i < 5; i++ {
		recA, err := a.GenerateDayWeather(context.Background())
		require.NoError(t, err)
		recB, err := b.GenerateDayWeather(context.Background())
		require.NoError(t, err)
		assert.Equal(t, recA, recB)
	}
}

func TestCommandAdapterParsesOutput(t *testing.T) {
	adapter := NewCommandAdapter(`echo {"wind":{"speed_mph":18,"direction":"W"},"sky":"clear"}`, nil)

	rec, err := adapter.GenerateDayWeather(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 18, rec.Wind.SpeedMPH)
	assert.Equal(t, "W", rec.Wind.Direction)
	assert.Equal(t, "clear", rec.Sky)
}

func TestCommandAdapterFallsBackOnFailure(t *testing.T) {
	adapter := NewCommandAdapter("/nonexistent/weather-cmd", NewGenerator(7))

	rec, err := adapter.GenerateDayWeather(context.Background())
	require.NoError(t, err)
	assert.Positive(t, rec.Wind.SpeedMPH)
}

func TestCommandAdapterMalformedOutputWithoutFallback(t *testing.T) {
	adapter := NewCommandAdapter("echo not-json", nil)

	_, err := adapter.GenerateDayWeather(context.Background())
	require.Error(t, err)
}

var _ dice.Source = (*scriptedSource)(nil)
