package kernel

import "github.com/cwbudde/algo-vecmath"

// Domain labels a multiply kernel call site. All domains currently share
// one formula; the label keeps the entry points distinct should a domain
// ever need its own.
type Domain int

const (
	DomainGeneric Domain = iota
	DomainTransport
	DomainEnergy
)

func (d Domain) String() string {
	switch d {
	case DomainGeneric:
		return "generic"
	case DomainTransport:
		return "transport"
	case DomainEnergy:
		return "energy"
	default:
		return "unknown"
	}
}

// Multiply computes results[i] = x[i] * factors[i] for the given domain.
// It returns false without writing if the lengths differ.
func Multiply(_ Domain, x, factors, results []float64) bool {
	if !ValidateLengths(len(x), len(factors), len(results)) {
		return false
	}
	vecmath.MulBlock(results, x, factors)
	return true
}

// BatchMultiply computes results[i] = values[i] * factors[i].
func BatchMultiply(values, factors, results []float64) bool {
	return Multiply(DomainGeneric, values, factors, results)
}

// TransportEmissions computes results[i] = distances[i] * factors[i].
func TransportEmissions(distances, factors, results []float64) bool {
	return Multiply(DomainTransport, distances, factors, results)
}

// EnergyEmissions computes results[i] = consumption[i] * factors[i].
func EnergyEmissions(consumption, factors, results []float64) bool {
	return Multiply(DomainEnergy, consumption, factors, results)
}

// AIEmissions prices each row by token usage when it is strictly positive
// and by the flat per-query cost otherwise:
//
//	results[i] = tokens[i] * co2PerToken[i]   if tokens[i] > 0
//	results[i] = co2PerQuery[i]               otherwise
//
// Zero and negative token counts (and NaN) take the per-query branch.
func AIEmissions(tokens, co2PerToken, co2PerQuery, results []float64) bool {
	if !ValidateLengths(len(tokens), len(co2PerToken), len(co2PerQuery), len(results)) {
		return false
	}
	for i, t := range tokens {
		if t > 0 {
			results[i] = t * co2PerToken[i]
		} else {
			results[i] = co2PerQuery[i]
		}
	}
	return true
}
