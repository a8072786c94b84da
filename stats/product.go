package stats

import (
	"math"
	"math/cmplx"
)

// GeoMean is the tagged result of a geometric mean query. A negative
// running product under a fractional root leaves the reals, so callers
// must branch on IsComplex rather than read a single numeric field.
type GeoMean struct {
	IsComplex bool
	Real      float64
	Complex   complex128
}

// Product tracks the running product of a stream for the geometric mean.
// The product can overflow or underflow on long streams; that is accepted
// rather than corrected.
type Product struct {
	count   uint64
	product float64
}

func NewProduct() *Product {
	return &Product{product: 1.0}
}

func (p *Product) Update(value float64) {
	p.count++
	p.product *= value
}

func (p *Product) GetGeometricMean() (GeoMean, bool) {
	if p.count == 0 {
		return GeoMean{}, false
	}
	exp := 1.0 / float64(p.count)
	if p.product >= 0 {
		return GeoMean{Real: math.Pow(p.product, exp)}, true
	}
	return GeoMean{
		IsComplex: true,
		Complex:   cmplx.Pow(complex(p.product, 0), complex(exp, 0)),
	}, true
}
