package multinet

// Names used when a descriptor leaves a strategy empty. These are registered by the strategy
// subpackages, which must be imported (usually with a blank import) for Build to succeed.
const (
	DefaultActivation      string = "LogisticSigmoid"
	DefaultCost            string = "MeanSquaredError"
	DefaultActivationInit  string = "None"
	DefaultWeightsInit     string = "Centered"
	DefaultBackPropagation string = "Always"
)

// NeuronSpec describes the strategy choices for one Neuron. Nil parameters fall back to the
// default of the chosen strategy.
type NeuronSpec struct {
	Activation      string   `json:"activation,omitempty"`
	ActivationParam *float64 `json:"activation_param,omitempty"`

	ActivationInit      string   `json:"activation_init,omitempty"`
	ActivationInitParam *float64 `json:"activation_init_param,omitempty"`

	WeightsInit      string   `json:"weights_init,omitempty"`
	WeightsInitParam *float64 `json:"weights_init_param,omitempty"`

	Label string `json:"label,omitempty"`
}

// merge fills the empty fields of 'n' from 'def'
func (n NeuronSpec) merge(def NeuronSpec) NeuronSpec {
	if n.Activation == "" {
		n.Activation = def.Activation
	}
	if n.ActivationParam == nil {
		n.ActivationParam = def.ActivationParam
	}
	if n.ActivationInit == "" {
		n.ActivationInit = def.ActivationInit
	}
	if n.ActivationInitParam == nil {
		n.ActivationInitParam = def.ActivationInitParam
	}
	if n.WeightsInit == "" {
		n.WeightsInit = def.WeightsInit
	}
	if n.WeightsInitParam == nil {
		n.WeightsInitParam = def.WeightsInitParam
	}
	return n
}

// LayerSpec describes one layer. Neuron applies to every Neuron of the layer; Neurons, if given,
// must have exactly Size entries and overrides Neuron field by field.
type LayerSpec struct {
	Size    int          `json:"size"`
	Bias    bool         `json:"bias,omitempty"`
	Neuron  NeuronSpec   `json:"neuron"`
	Neurons []NeuronSpec `json:"neurons,omitempty"`
}

// NetworkSpec is the topology descriptor a Network is built from
type NetworkSpec struct {
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
	Enabled bool   `json:"enabled"`

	LearningRate float64 `json:"learning_rate"`

	Randomizer      string   `json:"randomizer,omitempty"`
	RandomizerParam *float64 `json:"randomizer_param,omitempty"`

	Cost            string `json:"cost,omitempty"`
	BackPropagation string `json:"back_propagation,omitempty"`

	InputInitial0 float64 `json:"input_initial_0"`
	InputInitial1 float64 `json:"input_initial_1"`

	// TargetLow is the target of the output Neurons that are not the target class. The target
	// class always gets 1.
	TargetLow float64 `json:"target_low"`

	AdjustFirstLayerWeights bool `json:"adjust_first_layer_weights"`

	Layers []LayerSpec `json:"layers"`
}

// Param is a small helper for filling the optional parameters of specs
func Param(v float64) *float64 {
	return &v
}
