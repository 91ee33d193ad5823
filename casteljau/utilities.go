package casteljau

import (
	"fmt"
	"math/cmplx"

	"github.com/R46narok/bezier-hodograph"
)

func ptstring(p bezier.Pair, computed bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if computed {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
