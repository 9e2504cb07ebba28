// SPDX-License-Identifier: MIT

package u3coef

import (
	"encoding/binary"
	"log/slog"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/sp3rlib/su3lib"
)

// Cache maps label keys of one family to their coefficient blocks.
//
// In ModeCached a block is constructed at most once per key over the lifetime
// of the cache. Blocks are never evicted. A Cache does no locking: concurrent
// reads of a fully populated cache are safe, concurrent lookups that may build
// are not.
type Cache[L Labels] struct {
	kernel su3lib.Kernel
	opts   options
	blocks map[L]*Block
}

// Family aliases.
type (
	UCache    = Cache[ULabels]
	ZCache    = Cache[ZLabels]
	WCache    = Cache[WLabels]
	PhiCache  = Cache[PhiLabels]
	U9LMCache = Cache[U9LMLabels]
)

// NewCache returns an empty cache evaluating through k. It panics on a nil
// kernel (programmer error).
func NewCache[L Labels](k su3lib.Kernel, opts ...Option) *Cache[L] {
	if k == nil {
		panic("u3coef: NewCache: nil kernel")
	}

	return &Cache[L]{
		kernel: k,
		opts:   gatherOptions(opts...),
		blocks: make(map[L]*Block),
	}
}

// Mode returns the evaluation mode.
func (c *Cache[L]) Mode() Mode { return c.opts.mode }

// Kernel returns the kernel the cache evaluates through.
func (c *Cache[L]) Kernel() su3lib.Kernel { return c.kernel }

// Get returns the coefficient for labels at the 1-based multiplicity tuple idx.
//
// ModeDirect evaluates the single value through the kernel and leaves the
// cache untouched. ModeCached looks the block up, building and inserting it on
// a miss.
//
// Errors: ErrInvalidIndex, ErrNaN, ErrMultiplicityOverflow.
func (c *Cache[L]) Get(labels L, idx ...int) (float64, error) {
	if c.opts.mode == ModeDirect {
		c.notify(func(o Observer) { o.Direct(labels.Family()) })
		return Direct(c.kernel, labels, idx...)
	}

	b, err := c.lookup(labels)
	if err != nil {
		return 0, err
	}
	v, err := b.Coef(idx...)
	if err != nil {
		return 0, wrapLabels(labels, err)
	}

	return v, nil
}

// Block returns the whole block for labels. In ModeDirect the block is built
// fresh and not stored.
func (c *Cache[L]) Block(labels L) (*Block, error) {
	if c.opts.mode == ModeDirect {
		c.notify(func(o Observer) { o.Direct(labels.Family()) })
		return c.build(labels)
	}

	return c.lookup(labels)
}

// Contains reports whether a block for labels is stored.
func (c *Cache[L]) Contains(labels L) bool {
	_, ok := c.blocks[labels]
	return ok
}

// Len is the number of stored blocks.
func (c *Cache[L]) Len() int { return len(c.blocks) }

// Keys returns the stored keys in label order.
func (c *Cache[L]) Keys() []L {
	keys := maps.Keys(c.blocks)
	slices.SortFunc(keys, CompareLabels[L])

	return keys
}

// Fingerprint digests every stored key and the bit pattern of its values in
// label order. Two caches filled with the same keys from deterministic kernels
// have equal fingerprints.
func (c *Cache[L]) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, k := range c.Keys() {
		for _, v := range k.Key() {
			binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
			_, _ = d.Write(buf[:])
		}
		for _, v := range c.blocks[k].coefs {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = d.Write(buf[:])
		}
	}

	return d.Sum64()
}

func (c *Cache[L]) lookup(labels L) (*Block, error) {
	if b, ok := c.blocks[labels]; ok {
		c.notify(func(o Observer) { o.Hit(labels.Family()) })
		return b, nil
	}
	c.notify(func(o Observer) { o.Miss(labels.Family()) })

	b, err := c.build(labels)
	if err != nil {
		return nil, err
	}
	c.blocks[labels] = b

	return b, nil
}

func (c *Cache[L]) build(labels L) (*Block, error) {
	b, err := NewBlock(c.kernel, labels)
	if err != nil {
		return nil, err
	}
	c.notify(func(o Observer) { o.Build(labels.Family(), b.Len()) })
	c.opts.logger.Debug("coefficient block built",
		slog.String("family", string(labels.Family())),
		slog.String("labels", labels.String()),
		slog.Any("dims", []int(b.dims)),
		slog.Int("values", b.Len()),
	)

	return b, nil
}

func (c *Cache[L]) notify(f func(Observer)) {
	for _, o := range c.opts.observers {
		f(o)
	}
}
