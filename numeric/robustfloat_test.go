package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRobustFloatExactArithmetic(t *testing.T) {
	a := NewRobustFloat(2.0)
	b := NewRobustFloat(3.0)

	sum := a.Add(b)
	assert.Equal(t, 5.0, sum.Value())

	diff := a.Sub(b)
	assert.Equal(t, -1.0, diff.Value())

	product := a.Mul(b)
	assert.Equal(t, 6.0, product.Value())

	quotient := b.Div(a)
	assert.Equal(t, 1.5, quotient.Value())

	sq := NewRobustFloat(9.0).Sqrt()
	assert.Equal(t, 3.0, sq.Value())
}

func TestRobustFloatIsReliablyNonzero(t *testing.T) {
	exact := NewRobustFloat(1.0)
	assert.True(t, exact.IsReliablyNonzero())

	zero := NewRobustFloat(0.0)
	assert.False(t, zero.IsReliablyNonzero())

	// A value indistinguishable from zero within its own error bound must
	// not be reported as reliably nonzero.
	tinyWithHugeError := NewRobustFloatWithError(1e-300, 1e300)
	assert.False(t, tinyWithHugeError.IsReliablyNonzero())
}

func TestRobustFloatCompareEscalates(t *testing.T) {
	a := NewRobustFloat(1.0)
	b := NewRobustFloat(1.0)

	ordering, reliable := a.Compare(b)
	assert.True(t, reliable)
	assert.Equal(t, 0, ordering)

	// Construct two values whose difference cannot be reliably
	// distinguished from zero given their accumulated error.
	noisyA := NewRobustFloatWithError(1.0, 1e16)
	noisyB := NewRobustFloatWithError(1.0+1e-10, 1e16)
	_, reliable = noisyA.Compare(noisyB)
	assert.False(t, reliable)
}

func TestRobustFloatErrorBoundGrows(t *testing.T) {
	a := NewRobustFloat(1.0)
	b := NewRobustFloat(1.0)
	sum := a.Add(b)
	assert.Greater(t, sum.ErrorBound(), 0.0)
}
