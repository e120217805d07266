package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/shorelark/config"
	"github.com/pthm-cable/shorelark/engine"
	"github.com/pthm-cable/shorelark/playback"
)

type countingSim struct {
	cfg    config.Config
	trains int
}

func (s *countingSim) Config() config.Config { return s.cfg }

func (s *countingSim) World() engine.World { return engine.World{} }

func (s *countingSim) Step() (string, bool) { return "", false }

func (s *countingSim) Train() string {
	s.trains++
	return fmt.Sprintf("generation %d:", s.trains-1)
}

type countingEngine struct {
	sims []*countingSim
}

func (e *countingEngine) DefaultConfig() config.Config { return config.Default() }

func (e *countingEngine) New(cfg config.Config) (engine.Simulation, error) {
	if len(cfg.Extra) > 0 {
		return nil, fmt.Errorf("unknown config field(s): %d", len(cfg.Extra))
	}
	s := &countingSim{cfg: cfg}
	e.sims = append(e.sims, s)
	return s, nil
}

func newSession(t *testing.T) (*Interpreter, *playback.Controller, *countingEngine, *lines) {
	t.Helper()
	eng := &countingEngine{}
	out := &lines{}
	pb, err := playback.New(eng, out)
	require.NoError(t, err)
	return NewInterpreter(pb, eng.DefaultConfig, out), pb, eng, out
}

func TestSessionTrainThree(t *testing.T) {
	in, _, eng, out := newSession(t)

	require.NoError(t, in.Exec("t 3"))

	assert.Equal(t, 3, eng.sims[0].trains)
	assert.Equal(t, lines{
		"",
		"$ t 3",
		"generation 0:",
		"",
		"generation 1:",
		"",
		"generation 2:",
	}, *out)
}

func TestSessionPauseExtraLeavesActive(t *testing.T) {
	in, pb, _, _ := newSession(t)

	assert.Error(t, in.Exec("pause extra"))
	assert.True(t, pb.Active())
}

func TestSessionBracketsLeaveHandle(t *testing.T) {
	in, pb, eng, _ := newSession(t)
	before := pb.Simulation()

	assert.ErrorIs(t, in.Exec("r [a=1]"), ErrSyntax)
	assert.Same(t, before, pb.Simulation())
	assert.Len(t, eng.sims, 1)
}

func TestSessionEngineRejectsUnknownGeneric(t *testing.T) {
	in, pb, _, out := newSession(t)
	before := pb.Simulation()

	require.Error(t, in.Exec("r i:bogus=1"))
	assert.Same(t, before, pb.Simulation(), "reset is atomic")
	assert.Equal(t, "  ^ err: unknown config field(s): 1", (*out)[len(*out)-1])
}

func TestSessionResetInstallsNewHandle(t *testing.T) {
	in, pb, _, _ := newSession(t)

	require.NoError(t, in.Exec("r a=50 f=30 n=5 p=2"))

	cfg := pb.Simulation().Config()
	assert.Equal(t, 50, cfg.WorldAnimals)
	assert.Equal(t, 30, cfg.WorldFoods)
	assert.Equal(t, 5, cfg.BrainNeurons)
	assert.Equal(t, 2, cfg.EyeCells)
	assert.Equal(t, config.Default().FoodSize, cfg.FoodSize)
}
