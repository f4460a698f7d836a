// Package process implements the stochastic evolution rules that advance
// the raw underlying level one time step at a time.
//
// Each rule consumes the current level, one correlated standard-normal
// shock, and the step size in year fractions. Display transforms and
// seasonal shifts are applied elsewhere and never feed back into the
// evolving state.
package process
