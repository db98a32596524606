package env

import (
	"math"
)

// Env is one reference-sensor reading: temperature in Celsius,
// relative humidity in percent, and the Magnus-formula dewpoint
// derived from them.
type Env struct {
	Temperature float64
	Humidity    float64
	Dewpoint    float64
}

func New(temp, humidity float64) Env {
	return Env{
		Temperature: temp,
		Humidity:    humidity,
		Dewpoint:    DewpointC(temp, humidity),
	}
}

// DewpointC computes the dewpoint in Celsius from temperature and
// relative humidity. Exported so the pipeline can recompute it from
// smoothed components.
func DewpointC(t, rh float64) float64 {
	gamma := math.Log(rh/100) + (17.625*t)/(243.04+t)
	return 243.04 * gamma / (17.625 - gamma)
}
