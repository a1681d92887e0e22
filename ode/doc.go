// Package ode integrates first-order initial value problems dy/dx = f(x, y)
// with the explicit second-order Runge-Kutta method in Heun's form and
// records every step (slopes, predictor point, corrected value).
//
//	res, err := ode.RK2(ode.Problem{
//		Equation: "x + y", X0: 0, Y0: 1, H: 0.2, TargetX: 0.4,
//	}, ode.DefaultOptions())
//	// res.FinalY == 1.5768
//
// The step size is fixed; adaptive stepping is out of scope.
package ode
