package multinet

import (
	"github.com/google/uuid"
)

// Network is a layered feed-forward neural network together with everything the engine tracks
// about it: its chosen strategies, its error matrix pair and its statistics.
//
// Layers, Neurons and Weights are stored in flat slices ("arenas"). A Layer refers to the range of
// Neurons it owns and a Neuron to the range of Weights it owns, so appending and traversal are
// O(1) and every element keeps a stable index for the life of the Network. The previous and next
// layers of Layers[i] are simply Layers[i-1] and Layers[i+1].
type Network struct {
	ID    uuid.UUID
	Name  string
	Color string

	// Enabled Networks take part in training; disabled ones are kept but skipped
	Enabled bool

	LearningRate float64

	Randomizer      Randomizer
	RandomizerParam float64
	Cost            CostFunction
	BackPropagation BackPropagationStrategy

	// the per-Network decision state of BackPropagation
	bp BackPropagationState

	// The values a Task writes into binary inputs for "off" and "on"
	InputInitial0, InputInitial1 float64

	// The two admissible target values. The Neuron of the target class gets TargetHigh, every
	// other output Neuron gets TargetLow.
	TargetLow, TargetHigh float64

	// whether or not the weights feeding the first hidden layer are changed by back-propagation
	AdjustFirstLayerWeights bool

	Layers  []Layer
	Neurons []Neuron
	Weights []Weight

	// ErrorMatrix is the buffer currently being written; ErrorMatrix.Next is its pair
	ErrorMatrix *ErrorMatrix
	Stats       *Statistics
	Dynamic     *DynamicStatistics

	// the index of the class of the current example
	TargetClass int

	// Backup is the structural copy taken right after the Network was built, used to restart
	// training from the same starting point. It is nil for copies.
	Backup *Network

	// the descriptor that the Network was built from
	spec NetworkSpec

	// scratch space for finding the predicted class
	outs []float64
}

// Layer is a contiguous range of Neurons within a Network
type Layer struct {
	// ID is the position of the layer in the Network; 0 is the input layer
	ID int

	// The Neurons of the layer are Network.Neurons[First:End]
	First, End int

	// whether or not the last Neuron of the layer is a bias Neuron
	Bias bool
}

// Size returns the number of Neurons in the layer, including the bias Neuron if there is one
func (l Layer) Size() int {
	return l.End - l.First
}

// Neuron is a single unit of a Layer. Its incoming Weights are Network.Weights[FirstWeight:EndWeight]
type Neuron struct {
	// ID is the position of the Neuron within its layer
	ID    int
	Layer int

	Activation float64

	// Input is the raw value before the activation function
	Input float64

	Target float64

	// Bias Neurons have a constant activation of 1 and no incoming weights
	IsBias bool

	Function      ActivationFunction
	FunctionParam float64

	ActivationInit      Initializer
	ActivationInitParam float64
	WeightsInit         Initializer
	WeightsInitParam    float64

	// optional display label
	Label string

	FirstWeight, EndWeight int

	// the error term used during back-propagation
	delta float64
}

// NumWeights returns the number of incoming weights of the Neuron
func (n Neuron) NumWeights() int {
	return n.EndWeight - n.FirstWeight
}

// Weight is a single connection, owned by the downstream Neuron. From is the index (in
// Network.Neurons) of the upstream Neuron.
type Weight struct {
	ID    int
	Value float64
	From  int
}
