// SPDX-License-Identifier: MIT

package u3coef

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/sp3rlib/su3lib"
)

// Block stores every coefficient of one label key, row-major over the
// multiplicity tuple with the last index fastest. It is immutable.
type Block struct {
	dims  Multiplicity
	coefs []float64
}

// NewBlock resolves the multiplicities of labels and evaluates the kernel once
// per index tuple, in storage order.
//
// A key with any empty channel yields an empty block (zero maxima, no values);
// that is a disallowed coupling, not an error.
//
// Errors:
//   - ErrMultiplicityOverflow if a channel exceeds su3lib.MaxK.
//   - ErrNaN if the kernel returns NaN.
func NewBlock[L Labels](k su3lib.Kernel, labels L) (*Block, error) {
	dims := labels.Multiplicity(k)
	size := dims.Size()
	if size == 0 {
		return &Block{dims: make(Multiplicity, len(dims))}, nil
	}
	if err := dims.checkCap(); err != nil {
		return nil, fmt.Errorf("%s: %w", labels, err)
	}

	coefs := make([]float64, size)
	idx := make([]int, len(dims))
	for c := range idx {
		idx[c] = 1
	}
	for off := 0; off < size; off++ {
		v := labels.Evaluate(k, idx)
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%s%v: %w", labels, idx, ErrNaN)
		}
		coefs[off] = v
		advance(idx, dims)
	}

	return &Block{dims: slices.Clone(dims), coefs: coefs}, nil
}

// advance steps a 1-based index tuple to the next one in storage order.
func advance(idx []int, dims Multiplicity) {
	for c := len(idx) - 1; c >= 0; c-- {
		if idx[c] < dims[c] {
			idx[c]++
			return
		}
		idx[c] = 1
	}
}

// Coef returns the coefficient at the 1-based multiplicity tuple idx.
// It fails with ErrInvalidIndex on the wrong arity or any index outside its
// channel; an empty block rejects every tuple.
func (b *Block) Coef(idx ...int) (float64, error) {
	off, err := b.dims.Offset(idx)
	if err != nil {
		return 0, err
	}

	return b.coefs[off], nil
}

// Dims returns a copy of the per-channel maxima.
func (b *Block) Dims() Multiplicity { return slices.Clone(b.dims) }

// Len is the number of stored values.
func (b *Block) Len() int { return len(b.coefs) }

// Empty reports whether the key is a disallowed coupling.
func (b *Block) Empty() bool { return len(b.coefs) == 0 }

// Values returns a copy of the stored values in storage order.
func (b *Block) Values() []float64 { return slices.Clone(b.coefs) }

func (b *Block) String() string {
	return fmt.Sprintf("block%v%v", []int(b.dims), b.coefs)
}
