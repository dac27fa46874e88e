package byteiter

import (
	"context"

	"github.com/mochidev/Bytes/ierrors"
)

// ContextSource produces bytes one at a time and may suspend while doing so,
// honoring cancellation of the given context. Once Next reports exhaustion
// without an error the source stays exhausted.
type ContextSource interface {
	Next(ctx context.Context) (byte, bool, error)
}

// ContextIterator consumes a ContextSource through windowed reads. Every read
// observes cancellation between bytes, so an abandoned read never spins on a
// source that keeps producing.
type ContextIterator struct {
	source ContextSource
}

// NewContextIterator creates a ContextIterator consuming the given source.
func NewContextIterator(source ContextSource) *ContextIterator {
	// sanitize parameters
	if source == nil {
		panic("calls to NewContextIterator require a non-nil source")
	}

	return &ContextIterator{
		source: source,
	}
}

func (i *ContextIterator) next(ctx context.Context) nextFunc {
	return func() (byte, bool, error) {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}

		b, ok, err := i.source.Next(ctx)
		if err != nil {
			return 0, false, ierrors.Wrap(err, "byte source failed")
		}

		return b, ok, nil
	}
}

// ReadExact reads exactly count bytes, see Iterator.ReadExact.
func (i *ContextIterator) ReadExact(ctx context.Context, count int) ([]byte, error) {
	return readExact(i.next(ctx), count)
}

// ReadExactIfAvailable reads exactly count bytes tolerating a source that was
// exhausted before the first byte, see Iterator.ReadExactIfAvailable.
func (i *ContextIterator) ReadExactIfAvailable(ctx context.Context, count int) ([]byte, bool, error) {
	return readExactIfAvailable(i.next(ctx), count)
}

// ReadBounded reads at least minCount and at most maxCount bytes, see
// Iterator.ReadBounded.
func (i *ContextIterator) ReadBounded(ctx context.Context, minCount int, maxCount int) ([]byte, error) {
	return readBounded(i.next(ctx), minCount, maxCount)
}

// ReadBoundedIfAvailable reads like ReadBounded tolerating a source that was
// exhausted before the first byte, see Iterator.ReadBoundedIfAvailable.
func (i *ContextIterator) ReadBoundedIfAvailable(ctx context.Context, minCount int, maxCount int) ([]byte, bool, error) {
	return readBoundedIfAvailable(i.next(ctx), minCount, maxCount)
}

// ReadGreedy reads up to maxCount bytes, stopping at exhaustion. Unlike its
// plain counterpart it can fail, since the source itself can.
func (i *ContextIterator) ReadGreedy(ctx context.Context, maxCount int) ([]byte, error) {
	return readGreedy(i.next(ctx), maxCount)
}

// ReadGreedyIfAvailable reads like ReadGreedy, reporting no value when the
// source was exhausted before the first byte.
func (i *ContextIterator) ReadGreedyIfAvailable(ctx context.Context, maxCount int) ([]byte, bool, error) {
	return readGreedyIfAvailable(i.next(ctx), maxCount)
}

// CheckByte reads one byte and compares it, see Iterator.CheckByte.
func (i *ContextIterator) CheckByte(ctx context.Context, expected byte) error {
	return checkBytes(i.next(ctx), []byte{expected})
}

// CheckByteIfAvailable reads like CheckByte tolerating an exhausted source,
// see Iterator.CheckByteIfAvailable.
func (i *ContextIterator) CheckByteIfAvailable(ctx context.Context, expected byte) (bool, error) {
	return checkBytesIfAvailable(i.next(ctx), []byte{expected})
}

// CheckBytes reads len(expected) bytes and compares them, see
// Iterator.CheckBytes.
func (i *ContextIterator) CheckBytes(ctx context.Context, expected []byte) error {
	return checkBytes(i.next(ctx), expected)
}

// CheckBytesIfAvailable reads like CheckBytes tolerating a source that was
// exhausted before the first byte, see Iterator.CheckBytesIfAvailable.
func (i *ContextIterator) CheckBytesIfAvailable(ctx context.Context, expected []byte) (bool, error) {
	return checkBytesIfAvailable(i.next(ctx), expected)
}

// Bind fixes a context, making the iterator usable wherever a Reader is
// expected. The bound iterator shares the underlying source, so reads through
// it and through the ContextIterator consume the same stream.
func (i *ContextIterator) Bind(ctx context.Context) *BoundIterator {
	return &BoundIterator{
		iterator: i,
		ctx:      ctx,
	}
}

// BoundIterator is a ContextIterator with a fixed context.
//
//nolint:containedctx // binding the context is the type's whole purpose
type BoundIterator struct {
	iterator *ContextIterator
	ctx      context.Context
}

// ReadExact reads exactly count bytes under the bound context.
func (b *BoundIterator) ReadExact(count int) ([]byte, error) {
	return b.iterator.ReadExact(b.ctx, count)
}

// ReadExactIfAvailable reads exactly count bytes under the bound context,
// tolerating a source that was exhausted before the first byte.
func (b *BoundIterator) ReadExactIfAvailable(count int) ([]byte, bool, error) {
	return b.iterator.ReadExactIfAvailable(b.ctx, count)
}
