// Package neural provides feedforward neural network brains and the genetic
// operators that evolve them between generations.
package neural

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// layer maps inputs to outputs through weights (outputs x inputs) and biases,
// followed by ReLU.
type layer struct {
	weights *mat.Dense
	biases  *mat.VecDense
}

// FFNN is a fully connected feedforward network.
type FFNN struct {
	topology []int
	layers   []layer
}

// NewFFNN creates a network with weights and biases drawn uniformly from
// [-1, 1]. topology lists the neuron count of every layer, inputs first.
func NewFFNN(rng *rand.Rand, topology []int) *FFNN {
	weights := make([]float64, WeightCount(topology))
	for i := range weights {
		weights[i] = rng.Float64()*2 - 1
	}
	nn, _ := FromWeights(topology, weights)
	return nn
}

// WeightCount is the chromosome length of a network with the given topology.
func WeightCount(topology []int) int {
	n := 0
	for i := 1; i < len(topology); i++ {
		n += topology[i] * (topology[i-1] + 1)
	}
	return n
}

// FromWeights builds a network from a flat chromosome as returned by Weights.
// Each neuron contributes its bias followed by one weight per input.
func FromWeights(topology []int, weights []float64) (*FFNN, error) {
	if len(topology) < 2 {
		return nil, fmt.Errorf("topology needs at least 2 layers, got %d", len(topology))
	}
	for i, n := range topology {
		if n < 1 {
			return nil, fmt.Errorf("layer %d has %d neurons", i, n)
		}
	}
	if want := WeightCount(topology); len(weights) != want {
		return nil, fmt.Errorf("got %d weights, topology needs %d", len(weights), want)
	}

	nn := &FFNN{topology: append([]int(nil), topology...)}
	off := 0
	for i := 1; i < len(topology); i++ {
		in, out := topology[i-1], topology[i]
		l := layer{
			weights: mat.NewDense(out, in, nil),
			biases:  mat.NewVecDense(out, nil),
		}
		for r := 0; r < out; r++ {
			l.biases.SetVec(r, weights[off])
			off++
			for c := 0; c < in; c++ {
				l.weights.Set(r, c, weights[off])
				off++
			}
		}
		nn.layers = append(nn.layers, l)
	}
	return nn, nil
}

// Topology returns a copy of the layer sizes.
func (nn *FFNN) Topology() []int {
	return append([]int(nil), nn.topology...)
}

// Weights flattens the network into a chromosome.
func (nn *FFNN) Weights() []float64 {
	out := make([]float64, 0, WeightCount(nn.topology))
	for _, l := range nn.layers {
		rows, cols := l.weights.Dims()
		for r := 0; r < rows; r++ {
			out = append(out, l.biases.AtVec(r))
			for c := 0; c < cols; c++ {
				out = append(out, l.weights.At(r, c))
			}
		}
	}
	return out
}

// Forward propagates inputs through every layer. len(inputs) must match the
// first layer.
func (nn *FFNN) Forward(inputs []float64) []float64 {
	if len(inputs) != nn.topology[0] {
		panic(fmt.Sprintf("neural: got %d inputs, want %d", len(inputs), nn.topology[0]))
	}

	x := mat.NewVecDense(len(inputs), append([]float64(nil), inputs...))
	for _, l := range nn.layers {
		rows, _ := l.weights.Dims()
		y := mat.NewVecDense(rows, nil)
		y.MulVec(l.weights, x)
		y.AddVec(y, l.biases)
		for i := 0; i < rows; i++ {
			y.SetVec(i, relu(y.AtVec(i)))
		}
		x = y
	}
	return append([]float64(nil), x.RawVector().Data...)
}

func relu(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
