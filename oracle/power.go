package oracle

import (
	"math"
	"time"
)

// Phi is the golden ratio, the base unit of the autonomy power scale.
const Phi = 1.6180339887498948

// PowerSource is the external autonomy signal: an independent subsystem
// providing a read-only numeric value used in tone decisions. The oracle
// never owns or mutates it.
type PowerSource interface {
	Power() float64
}

// Solar is the default power source: a deterministic diurnal oscillator.
// Power peaks at Phi*20 around midday UTC and falls to zero at night.
type Solar struct{}

func (Solar) Power() float64 {
	return solarPowerAt(time.Now().UTC())
}

func solarPowerAt(t time.Time) float64 {
	seconds := float64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	// half sine over the day: zero at midnight, Phi*20 at noon.
	return math.Sin(math.Pi*seconds/86400) * Phi * 20
}

// Fixed is a constant power source.
type Fixed float64

func (f Fixed) Power() float64 { return float64(f) }
