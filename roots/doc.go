// Package roots finds real roots of single-variable formulas and records
// every step it takes.
//
// Two methods are provided:
//
//   - Bisection: scan unit intervals [s+k·h, s+(k+1)·h] for a sign change,
//     then halve the accepted bracket until it is narrower than
//     10^-DecimalPlaces.
//   - Secant: iterate x2 = x1 − f(x1)·(x1 − x0)/(f(x1) − f(x0)) from two seeds.
//
// Formulas are compiled with package expr, so every evaluated point also
// carries its substitution reduction ("f(2) = (2)**3 - ... = -1") in the
// trace. Results are deterministic: the same formula and Options always
// produce the same Result and the same trace.
//
// Not finding a root is a normal outcome reported through Result.Status;
// errors are reserved for invalid input.
//
//	res, err := roots.Bisection("x**3 - x**2 + x - 7", roots.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	if res.Found() {
//		fmt.Println(res.Root) // 2.1049
//	}
package roots
