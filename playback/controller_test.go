package playback

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/engine"
)

type lines []string

func (l *lines) Println(line string) { *l = append(*l, line) }

type fakeSim struct {
	cfg       config.Config
	steps     int
	trains    int
	stepEvery int
}

func (s *fakeSim) Config() config.Config { return s.cfg }
func (s *fakeSim) World() engine.World { return engine.World{} }

func (s *fakeSim) Step() (string, bool) {
	s.steps++
	if s.stepEvery > 0 && s.steps%s.stepEvery == 0 {
		return fmt.Sprintf("step gen %d", s.steps/s.stepEvery), true
	}
	return "", false
}

func (s *fakeSim) Train() string {
	s.trains++
	return fmt.Sprintf("generation %d", s.trains)
}

type fakeEngine struct {
	built []*fakeSim
	err   error
}

func (e *fakeEngine) DefaultConfig() config.Config { return config.Default() }

func (e *fakeEngine) New(cfg config.Config) (engine.Simulation, error) {
	if e.err != nil {
		return nil, e.err
	}
	s := &fakeSim{cfg: cfg, stepEvery: 3}
	e.built = append(e.built, s)
	return s, nil
}

func newTestController(t *testing.T) (*Controller, *fakeEngine, *lines) {
	t.Helper()
	eng := &fakeEngine{}
	out := &lines{}
	c, err := New(eng, out)
	require.NoError(t, err)
	return c, eng, out
}

func TestNewStartsActiveWithDefaults(t *testing.T) {
	c, eng, _ := newTestController(t)

	assert.True(t, c.Active())
	require.Len(t, eng.built, 1)
	assert.Equal(t, config.Default(), c.Simulation().Config())
}

func TestNewPropagatesEngineError(t *testing.T) {
	_, err := New(&fakeEngine{err: errors.New("nope")}, &lines{})
	assert.Error(t, err)
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	c, _, _ := newTestController(t)

	assert.False(t, c.Toggle())
	assert.True(t, c.Toggle())
	assert.True(t, c.Active())
}

func TestStepOnlyWhenActive(t *testing.T) {
	c, eng, out := newTestController(t)
	sim := eng.built[0]

	c.Step()
	c.Step()
	assert.Equal(t, 2, sim.steps)
	assert.Empty(t, *out)

	c.Step()
	assert.Equal(t, lines{"step gen 1"}, *out)

	c.Toggle()
	c.Step()
	assert.Equal(t, 3, sim.steps, "paused controller does not step")
}

func TestTrainSeparatesSummaries(t *testing.T) {
	c, eng, out := newTestController(t)

	require.NoError(t, c.Train(3))

	assert.Equal(t, 3, eng.built[0].trains)
	assert.Equal(t, lines{"generation 1", "", "generation 2", "", "generation 3"}, *out)
}

func TestTrainIgnoresPause(t *testing.T) {
	c, eng, out := newTestController(t)
	c.Toggle()

	require.NoError(t, c.Train(1))
	assert.Equal(t, 1, eng.built[0].trains)
	assert.Equal(t, lines{"generation 1"}, *out)
	assert.False(t, c.Active())
}

func TestTrainRejectsNonPositive(t *testing.T) {
	c, eng, out := newTestController(t)

	assert.Error(t, c.Train(0))
	assert.Error(t, c.Train(-1))
	assert.Zero(t, eng.built[0].trains)
	assert.Empty(t, *out)
}

func TestResetReplacesSimulation(t *testing.T) {
	c, eng, _ := newTestController(t)
	first := c.Simulation()

	cfg := config.Default()
	cfg.WorldAnimals = 5
	require.NoError(t, c.Reset(cfg))

	require.Len(t, eng.built, 2)
	assert.NotSame(t, first, c.Simulation())
	assert.Equal(t, 5, c.Simulation().Config().WorldAnimals)
}

func TestResetFailureKeepsSimulation(t *testing.T) {
	c, eng, _ := newTestController(t)
	first := c.Simulation()

	eng.err = errors.New("rejected")
	assert.EqualError(t, c.Reset(config.Default()), "rejected")
	assert.Same(t, first, c.Simulation())
}

func TestResetKeepsActiveFlag(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Toggle()

	require.NoError(t, c.Reset(config.Default()))
	assert.False(t, c.Active())
}

func TestOnGeneration(t *testing.T) {
	c, _, _ := newTestController(t)

	var got []string
	c.OnGeneration(func(_ engine.Simulation, summary string) {
		got = append(got, summary)
	})

	require.NoError(t, c.Train(2))
	c.Step()
	c.Step()
	c.Step()

	assert.Equal(t, []string{"generation 1", "generation 2", "step gen 1"}, got)
}

func TestOnReset(t *testing.T) {
	c, eng, _ := newTestController(t)

	var got []engine.Simulation
	c.OnReset(func(sim engine.Simulation) { got = append(got, sim) })

	require.NoError(t, c.Reset(config.Default()))
	eng.err = errors.New("rejected")
	require.Error(t, c.Reset(config.Default()))

	require.Len(t, got, 1)
	assert.Same(t, eng.built[1], got[0])
}
