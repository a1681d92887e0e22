// Package expr compiles and evaluates real-valued formulas in one or more
// declared variables, and shows its work.
//
// The grammar is deliberately small: numeric literals (including exponent
// form such as 1e-3), the declared variable names, the binary operators
// + - * / and ** (with ^ accepted as a synonym), unary + and -, and
// parentheses. * and / bind tighter than + and - and associate left; **
// binds tighter than unary minus and associates right, so -2**2 is -4 and
// 2**3**2 is 512.
//
// Formulas are parsed once by a Pratt parser into a small AST and evaluated
// by walking the tree; user text is never executed.
//
//	f, err := expr.Compile("x**3 - x**2 + x - 7", "x")
//	if err != nil {
//		// *expr.SyntaxError: errors.Is(err, expr.ErrSyntax) or expr.ErrUnknownVariable
//	}
//	steps, v, err := f.Reduce(2)
//	// steps: "f(2) = (2)**3 - (2)**2 + (2) - 7", "= 8 - 4 + (2) - 7", "= -1"
//
// Evaluation failures (division by zero, a negative base to a fractional
// power, overflow) are reported as errors by Eval and Reduce and as NaN by
// Evaluate; they never panic.
package expr
