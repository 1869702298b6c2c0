// Package dist provides the sampling primitives behind the generator:
// weighted and bucketed selection, Pareto workload skew, and bounded
// statistical shaping families. Every function takes an explicit *rand.Rand
// so a seeded run is reproducible; nothing here touches global state.
package dist

import (
	"errors"
	"math"
	"math/rand"
)

var (
	// ErrInvalidDistribution reports malformed weights or probabilities.
	ErrInvalidDistribution = errors.New("invalid distribution")
	// ErrInvalidRange reports an inverted or empty sampling range.
	ErrInvalidRange = errors.New("invalid range")
	// ErrInsufficientPopulation reports a without-replacement sample larger
	// than the population.
	ErrInsufficientPopulation = errors.New("insufficient population")
)

// Bucket is one entry of an ordered bucketed distribution.
type Bucket struct {
	Name string
	Prob float64
}

// WeightedPick chooses one item with probability proportional to its weight.
// Weights need not sum to 1.
func WeightedPick[T any](r *rand.Rand, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 || len(items) != len(weights) {
		return zero, ErrInvalidDistribution
	}
	i, err := WeightedIndex(r, weights)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

// WeightedIndex picks an index with probability proportional to weights[i].
func WeightedIndex(r *rand.Rand, weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, ErrInvalidDistribution
	}
	var total float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return 0, ErrInvalidDistribution
		}
		total += w
	}
	if total <= 0 {
		return 0, ErrInvalidDistribution
	}
	draw := r.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if draw < cum {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

// BucketedPick walks buckets in order accumulating probability mass and
// returns the first bucket whose cumulative mass reaches draw. When the total
// mass falls short of 1 due to rounding, the last bucket is the fallback.
func BucketedPick(buckets []Bucket, draw float64) (string, error) {
	if len(buckets) == 0 {
		return "", ErrInvalidDistribution
	}
	var cum float64
	for _, b := range buckets {
		if b.Prob < 0 || math.IsNaN(b.Prob) {
			return "", ErrInvalidDistribution
		}
		cum += b.Prob
		if draw <= cum {
			return b.Name, nil
		}
	}
	return buckets[len(buckets)-1].Name, nil
}

// ParetoWeights partitions population into a randomly chosen top group of
// size ceil(n*topFraction) sharing topMass evenly, with the remainder sharing
// 1-topMass evenly. With defaults (0.2, 0.8) a fifth of the population
// carries four fifths of the weight.
func ParetoWeights[T comparable](r *rand.Rand, population []T, topFraction, topMass float64) (map[T]float64, error) {
	n := len(population)
	if n == 0 {
		return nil, ErrInvalidDistribution
	}
	if topFraction <= 0 || topFraction > 1 || topMass < 0 || topMass > 1 {
		return nil, ErrInvalidDistribution
	}
	nTop := int(math.Ceil(float64(n) * topFraction))
	if nTop < 1 {
		nTop = 1
	}
	shuffled := make([]T, n)
	copy(shuffled, population)
	r.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	weights := make(map[T]float64, n)
	topEach := topMass / float64(nTop)
	for _, item := range shuffled[:nTop] {
		weights[item] = topEach
	}
	if nBottom := n - nTop; nBottom > 0 {
		bottomEach := (1 - topMass) / float64(nBottom)
		for _, item := range shuffled[nTop:] {
			weights[item] = bottomEach
		}
	}
	return weights, nil
}

// PowerLaw returns n values following a power law with exponent alpha,
// normalized to sum to 1. Generated by inverse transform sampling.
func PowerLaw(r *rand.Rand, n int, alpha float64) ([]float64, error) {
	if n <= 0 || alpha <= 1 {
		return nil, ErrInvalidDistribution
	}
	values := make([]float64, n)
	var sum float64
	for i := range values {
		u := r.Float64()
		values[i] = math.Pow(1-u, -1/(alpha-1))
		sum += values[i]
	}
	for i := range values {
		values[i] /= sum
	}
	return values, nil
}

// Zipf returns the rank-frequency probability vector 1/rank^s, normalized.
func Zipf(n int, s float64) ([]float64, error) {
	if n <= 0 || s <= 0 {
		return nil, ErrInvalidDistribution
	}
	probs := make([]float64, n)
	var sum float64
	for i := range probs {
		probs[i] = 1 / math.Pow(float64(i+1), s)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// Beta samples from Beta(alpha, beta) via two gamma draws.
func Beta(r *rand.Rand, alpha, beta float64) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, ErrInvalidDistribution
	}
	x := gammaSample(r, alpha)
	y := gammaSample(r, beta)
	if x+y == 0 {
		return 0, nil
	}
	return x / (x + y), nil
}

// gammaSample draws from Gamma(shape, 1) using Marsaglia-Tsang, with the
// standard boost for shape < 1.
func gammaSample(r *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := r.Float64()
		return gammaSample(r, shape+1) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		x := r.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := r.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// LogNormal samples exp(N(mu, sigma)) clipped to [min, max]. Clipping, not
// rejection sampling, is the bias policy for all bounded families here.
func LogNormal(r *rand.Rand, mu, sigma, min, max float64) float64 {
	return Clip(math.Exp(mu+sigma*r.NormFloat64()), min, max)
}

// Exponential samples with the given scale (1/lambda), clipped to [min, max].
func Exponential(r *rand.Rand, scale, min, max float64) float64 {
	return Clip(r.ExpFloat64()*scale, min, max)
}

// NormalInt samples an integer from N(mean, std) clipped to [min, max].
func NormalInt(r *rand.Rand, mean, std float64, min, max int) int {
	v := int(mean + std*r.NormFloat64())
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// Clip bounds v to [min, max].
func Clip(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Sample draws k items without replacement.
func Sample[T any](r *rand.Rand, items []T, k int) ([]T, error) {
	if k < 0 {
		return nil, ErrInvalidRange
	}
	if k > len(items) {
		return nil, ErrInsufficientPopulation
	}
	out := make([]T, 0, k)
	for _, i := range r.Perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out, nil
}

// UniformInt returns an integer in [min, max] inclusive.
func UniformInt(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// UniformFloat returns a float in [min, max).
func UniformFloat(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}
