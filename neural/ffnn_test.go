package neural

import (
	"math"
	"math/rand"
	"testing"
)

func TestWeightCount(t *testing.T) {
	// 3 inputs -> 4 hidden -> 2 outputs: 4*(3+1) + 2*(4+1)
	if got := WeightCount([]int{3, 4, 2}); got != 26 {
		t.Errorf("WeightCount = %d, want 26", got)
	}
}

func TestNewFFNN(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	nn := NewFFNN(rng, []int{3, 4, 2})

	w := nn.Weights()
	if len(w) != 26 {
		t.Fatalf("got %d weights, want 26", len(w))
	}
	for i, v := range w {
		if v < -1 || v > 1 {
			t.Errorf("weight %d = %f, outside [-1, 1]", i, v)
		}
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	nn := NewFFNN(rng, []int{2, 3, 2})

	clone, err := FromWeights(nn.Topology(), nn.Weights())
	if err != nil {
		t.Fatalf("FromWeights: %v", err)
	}

	in := []float64{0.3, 0.9}
	a, b := nn.Forward(in), clone.Forward(in)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("output %d differs: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestFromWeightsRejectsBadInput(t *testing.T) {
	if _, err := FromWeights([]int{3}, nil); err == nil {
		t.Error("single layer accepted")
	}
	if _, err := FromWeights([]int{2, 0}, nil); err == nil {
		t.Error("empty layer accepted")
	}
	if _, err := FromWeights([]int{2, 1}, []float64{1, 2}); err == nil {
		t.Error("short chromosome accepted")
	}
}

func TestForward(t *testing.T) {
	// one neuron: bias 0.5, weights -0.3 and 0.8
	nn, err := FromWeights([]int{2, 1}, []float64{0.5, -0.3, 0.8})
	if err != nil {
		t.Fatal(err)
	}

	got := nn.Forward([]float64{0.5, 1.0})[0]
	want := -0.3*0.5 + 0.8*1.0 + 0.5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Forward = %f, want %f", got, want)
	}

	if got := nn.Forward([]float64{-10, -10})[0]; got != 0 {
		t.Errorf("negative activation not clipped: %f", got)
	}
}

func TestForwardDoesNotModifyInputs(t *testing.T) {
	nn := NewFFNN(rand.New(rand.NewSource(1)), []int{3, 2, 2})
	in := []float64{0.1, 0.2, 0.3}

	nn.Forward(in)

	if in[0] != 0.1 || in[1] != 0.2 || in[2] != 0.3 {
		t.Errorf("inputs modified: %v", in)
	}
}
