// Package multinet trains several small feed-forward neural networks side by side on the same
// stream of examples, so that topologies and hyperparameters can be compared live.
//
// Strategies
//
// Every configurable behavior is a named strategy in one of seven families: activation
// functions, cost functions, initializers, distributions, randomizers, back-propagation timing,
// and tasks. The subpackages "activations", "costfuncs", "initializers", "distributions",
// "randomizers", "backprop" and "tasks" register their strategies from init(), so they are usually
// imported for their side effects:
//
//		import (
//			mn "github.com/sharnoff/multinet"
//			_ "github.com/sharnoff/multinet/activations"
//			_ "github.com/sharnoff/multinet/costfuncs"
//			// ...
//		)
//
// Strategies are looked up by name with Resolve (or the typed Resolve* functions), enumerated in
// registration order with List, and described with Describe.
//
// Networks
//
// A Network is built once from a NetworkSpec:
//
//		net, err := mn.Build(spec, task.Classes(), nil)
//
// Build resolves every strategy name, so nothing is looked up again while training. The layers,
// Neurons and Weights of a Network are kept in flat slices and refer to each other by index.
//
// Each Network owns a pair of ErrorMatrices (see ErrorMatrix), its Statistics and its
// DynamicStatistics. The training loop itself lives in the subpackage "engine".
package multinet
