package optimizer

import "errors"

// ErrNoSolution is returned when the dynamic program finds no feasible
// rewrite for the given algorithm. The transition rules guarantee this
// never happens for a well-formed move sequence; it is kept as a returned
// error rather than a panic so a future relaxation of those rules fails
// loudly instead of silently.
var ErrNoSolution = errors.New("optimizer: no feasible rewrite found")
