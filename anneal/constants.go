// File: constants.go
// Role: shared numeric constants used when materializing committed moves
// into diagram terms.
package anneal

import "math"

// phaseEighth is e^{i*pi/4}, the scalar factor the cut-mode complement
// move's "minus" term picks up.
var phaseEighth = complex(math.Cos(math.Pi/4), math.Sin(math.Pi/4))
