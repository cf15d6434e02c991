// Package heuristic provides interchangeable distance estimators for the
// cost-plus-heuristic search variant.
//
// All three estimators are pure functions over a pair of grid positions:
//
//	Manhattan — |dx| + |dy|
//	Euclidean — sqrt(dx² + dy²)
//	Chebyshev — max(|dx|, |dy|)
//
// Manhattan is the exact free-space distance for 4-connected unit-cost
// movement and is the default estimator throughout the module. Euclidean and
// Chebyshev are offered as alternative estimators, implemented exactly as in
// the reference formulas; callers selecting a non-Manhattan estimator accept
// whatever expansion behavior and path quality it produces.
package heuristic
