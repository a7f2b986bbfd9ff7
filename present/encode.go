package present

import (
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	mn "github.com/sharnoff/multinet"
	"github.com/sharnoff/multinet/engine"
)

// MaxSeriesPoints is the number of most recent time series points included in an encoded frame
const MaxSeriesPoints int = 200

// EncodeFrame converts a Frame into a protobuf Struct. Parts of the Frame that are not set are
// left out.
func EncodeFrame(f *engine.Frame) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"time": unixSeconds(f.Time),
	}

	if f.ErrorMatrices != nil {
		list := make([]interface{}, len(f.ErrorMatrices))
		for i, em := range f.ErrorMatrices {
			list[i] = encodeErrorMatrix(em)
		}
		m["error_matrices"] = list
	}

	if f.Networks != nil {
		list := make([]interface{}, len(f.Networks))
		for i, n := range f.Networks {
			list[i] = encodeNetwork(n)
		}
		m["networks"] = list
	}

	if f.Statistics != nil {
		m["statistics"] = encodeStatistics(f.Statistics)
	}

	if f.Timer != nil {
		m["timer"] = map[string]interface{}{
			"elapsed": f.Timer.Elapsed.Seconds(),
			"cpu":     f.Timer.CPU,
		}
	}

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to encode frame\n")
	}
	return s, nil
}

// MarshalFrame encodes a Frame as protobuf JSON, or as protobuf binary if 'binary' is true
func MarshalFrame(f *engine.Frame, binary bool) ([]byte, error) {
	s, err := EncodeFrame(f)
	if err != nil {
		return nil, err
	}

	if binary {
		return proto.Marshal(s)
	}
	return protojson.Marshal(s)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func ints(values []int64) []interface{} {
	list := make([]interface{}, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}

func strs(values []string) []interface{} {
	list := make([]interface{}, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}

func encodeErrorMatrix(s engine.ErrorMatrixSnapshot) map[string]interface{} {
	em := s.Matrix

	rows := make([]interface{}, len(em.Matrix))
	for i, r := range em.Matrix {
		rows[i] = ints(r)
	}

	return map[string]interface{}{
		"id":         s.ID.String(),
		"name":       s.Name,
		"classes":    strs(em.Classes),
		"matrix":     rows,
		"input":      ints(em.Input),
		"output":     ints(em.Output),
		"count":      em.Count,
		"max_input":  em.MaxInput(),
		"max_output": em.MaxOutput(),
		"accuracy":   em.Accuracy(),
	}
}

func encodeNetwork(n *mn.Network) map[string]interface{} {
	layers := make([]interface{}, len(n.Layers))
	for li, l := range n.Layers {
		neurons := make([]interface{}, 0, l.Size())
		for i := l.First; i < l.End; i++ {
			nr := n.Neurons[i]

			weights := make([]interface{}, 0, nr.NumWeights())
			for _, w := range n.Weights[nr.FirstWeight:nr.EndWeight] {
				weights = append(weights, w.Value)
			}

			neurons = append(neurons, map[string]interface{}{
				"id":         nr.ID,
				"activation": nr.Activation,
				"input":      nr.Input,
				"target":     nr.Target,
				"bias":       nr.IsBias,
				"label":      nr.Label,
				"weights":    weights,
			})
		}

		layers[li] = map[string]interface{}{
			"id":      l.ID,
			"bias":    l.Bias,
			"neurons": neurons,
		}
	}

	return map[string]interface{}{
		"id":            n.ID.String(),
		"name":          n.Name,
		"color":         n.Color,
		"learning_rate": n.LearningRate,
		"layers":        layers,
	}
}

func encodeSeries(points []mn.Point) []interface{} {
	if len(points) > MaxSeriesPoints {
		points = points[len(points)-MaxSeriesPoints:]
	}

	list := make([]interface{}, len(points))
	for i, p := range points {
		list[i] = []interface{}{unixSeconds(p.Time), p.Value}
	}
	return list
}

func encodeStatistics(s *engine.StatisticsSnapshot) map[string]interface{} {
	nets := make([]interface{}, len(s.Networks))
	for i, n := range s.Networks {
		st := n.Stats
		nets[i] = map[string]interface{}{
			"id":                     n.ID.String(),
			"name":                   n.Name,
			"color":                  n.Color,
			"rounds":                 st.Rounds,
			"correct_rounds":         st.CorrectRounds,
			"back_propagations":      st.BackPropagations,
			"percent_correct":        st.PercentCorrect(),
			"average_cost":           st.AverageCost(),
			"window_percent_correct": st.WindowPercentCorrect(),
			"window_average_cost":    st.WindowAverageCost(),
			"last_cost":              st.LastCost,
			"percent_correct_series": encodeSeries(n.Dynamic.PercentCorrect),
			"average_cost_series":    encodeSeries(n.Dynamic.AverageCost),
		}
	}

	e := s.Engine
	return map[string]interface{}{
		"networks": nets,
		"engine": map[string]interface{}{
			"elapsed":                   e.Elapsed.Seconds(),
			"rounds":                    e.Rounds,
			"windows":                   e.Windows,
			"rounds_per_second":         e.RoundsPerSecond(),
			"average_rounds_per_second": e.AverageRoundsPerSecond(),
			"dropped_error_matrix":      e.ErrorMatrix.Dropped,
			"dropped_network":           e.Network.Dropped,
			"dropped_statistics":        e.Statistics.Dropped,
		},
	}
}
