// Package stats implements the descriptive statistics behind the report:
// moments, percentiles and pairwise correlation. All functions operate on
// float64 slices where NaN marks a missing observation; missing values are
// skipped, never imputed.
package stats

import (
	"math"
	"sort"
)

// Summary holds the descriptive statistics of one numeric column.
// Std is the sample standard deviation. Skew and Kurtosis use the
// bias-corrected estimators, kurtosis in the excess-of-normal convention.
// Moments that need more observations than available are NaN.
type Summary struct {
	Count    int
	Mean     float64
	Std      float64
	Min      float64
	Q25      float64
	Median   float64
	Q75      float64
	Max      float64
	Skew     float64
	Kurtosis float64
}

// Describe computes the Summary of values, ignoring NaN entries.
func Describe(values []float64) Summary {
	obs := dropNaN(values)
	s := Summary{
		Count:    len(obs),
		Mean:     math.NaN(),
		Std:      math.NaN(),
		Min:      math.NaN(),
		Q25:      math.NaN(),
		Median:   math.NaN(),
		Q75:      math.NaN(),
		Max:      math.NaN(),
		Skew:     math.NaN(),
		Kurtosis: math.NaN(),
	}
	if len(obs) == 0 {
		return s
	}

	sorted := append([]float64(nil), obs...)
	sort.Float64s(sorted)

	s.Mean = mean(obs)
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q25 = Percentile(sorted, 0.25)
	s.Median = Percentile(sorted, 0.50)
	s.Q75 = Percentile(sorted, 0.75)

	n := float64(len(obs))
	if len(obs) >= 2 {
		s.Std = math.Sqrt(moment(obs, s.Mean, 2) * n / (n - 1))
	}
	if len(obs) >= 3 {
		s.Skew = skew(obs, s.Mean)
	}
	if len(obs) >= 4 {
		s.Kurtosis = kurtosis(obs, s.Mean)
	}
	return s
}

// Percentile returns the p-th quantile (0 <= p <= 1) of an already sorted,
// NaN-free slice, using linear interpolation between closest ranks.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Pearson returns the Pearson correlation coefficient of x and y over the
// pairwise-complete observations (rows where neither side is NaN).
func Pearson(x, y []float64) float64 {
	cx, cy := completePairs(x, y)
	return pearsonComplete(cx, cy)
}

// Spearman returns the Spearman rank correlation of x and y: the Pearson
// coefficient of the rank transforms, with average ranks on ties, computed
// over the pairwise-complete observations.
func Spearman(x, y []float64) float64 {
	cx, cy := completePairs(x, y)
	return pearsonComplete(ranks(cx), ranks(cy))
}

// Matrix computes the full correlation matrix of the given columns with the
// supplied pairwise coefficient. The result is symmetric with a unit
// diagonal.
func Matrix(cols [][]float64, corr func(x, y []float64) float64) [][]float64 {
	n := len(cols)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := corr(cols[i], cols[j])
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m
}

func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// moment returns the k-th central moment (biased, divided by n).
func moment(values []float64, mu float64, k int) float64 {
	sum := 0.0
	for _, v := range values {
		sum += math.Pow(v-mu, float64(k))
	}
	return sum / float64(len(values))
}

// skew is the adjusted Fisher-Pearson standardized third moment,
// g1 * sqrt(n*(n-1)) / (n-2).
func skew(values []float64, mu float64) float64 {
	n := float64(len(values))
	m2 := moment(values, mu, 2)
	if m2 == 0 {
		return math.NaN()
	}
	g1 := moment(values, mu, 3) / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// kurtosis is the bias-corrected excess kurtosis,
// (n-1)/((n-2)*(n-3)) * ((n+1)*g2 + 6) with g2 = m4/m2^2 - 3.
func kurtosis(values []float64, mu float64) float64 {
	n := float64(len(values))
	m2 := moment(values, mu, 2)
	if m2 == 0 {
		return math.NaN()
	}
	g2 := moment(values, mu, 4)/(m2*m2) - 3
	return (n - 1) / ((n - 2) * (n - 3)) * ((n+1)*g2 + 6)
}

func completePairs(x, y []float64) ([]float64, []float64) {
	cx := make([]float64, 0, len(x))
	cy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		cx = append(cx, x[i])
		cy = append(cy, y[i])
	}
	return cx, cy
}

func pearsonComplete(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	mx, my := mean(x), mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}

// ranks returns the 1-based rank transform of values, assigning tied values
// the average of the ranks they span.
func ranks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	out := make([]float64, len(values))
	for i := 0; i < len(idx); {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}
