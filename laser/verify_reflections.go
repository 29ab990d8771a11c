//go:build verify_reflections
// +build verify_reflections

package laser

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Constants for verification
const (
	lengthEpsilon = 1e-7
	angleEpsilon  = 1e-7
)

func init() {
	fmt.Println("Reflection verification enabled.")
}

func verifyReflectionLaw(incident, normal, reflected r2.Vec) {
	// 1. Reflection preserves the length of the direction
	if math.Abs(r2.Norm(reflected)-r2.Norm(incident)) > lengthEpsilon {
		panic(fmt.Sprintf("reflection changed length: |%v| != |%v|", reflected, incident))
	}

	// 2. Angle of incidence should equal angle of reflection
	incidentAngle := math.Acos(clamp(-r2.Dot(r2.Unit(incident), normal)))
	reflectedAngle := math.Acos(clamp(r2.Dot(r2.Unit(reflected), normal)))
	if math.Abs(incidentAngle-reflectedAngle) > angleEpsilon {
		panic(fmt.Sprintf("angle of incidence %f should equal angle of reflection %f", incidentAngle, reflectedAngle))
	}
}

func clamp(cos float64) float64 {
	return math.Max(-1, math.Min(1, cos))
}
