package byteiter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mochidev/Bytes/bytecast"
	"github.com/mochidev/Bytes/byteiter"
	"github.com/mochidev/Bytes/ierrors"
)

func TestNewChannelSource(t *testing.T) {
	require.Panics(t, func() {
		byteiter.NewChannelSource(-1)
	})
}

func TestChannelSource(t *testing.T) {
	source := byteiter.NewChannelSource(2)

	go func() {
		require.NoError(t, source.Send(context.Background(), []byte{1, 2}))
		require.NoError(t, source.Send(context.Background(), nil))
		require.NoError(t, source.Send(context.Background(), []byte{3, 4, 5}))
		source.Close()
	}()

	iterator := byteiter.NewContextIterator(source)

	// windows span chunk boundaries transparently
	window, err := iterator.ReadExact(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, window)

	window, err = iterator.ReadGreedy(context.Background(), 8)
	require.NoError(t, err)
	require.Equal(t, []byte{5}, window)

	// a closed drained source is a clean exhaustion
	_, ok, err := iterator.ReadExactIfAvailable(context.Background(), 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestChannelSource_CloseWithError(t *testing.T) {
	producerErr := ierrors.New("producer gave up")
	source := byteiter.NewChannelSource(1)

	go func() {
		require.NoError(t, source.Send(context.Background(), []byte{1, 2}))
		source.CloseWithError(producerErr)
	}()

	iterator := byteiter.NewContextIterator(source)

	// the failure surfaces instead of a short-window error
	_, err := iterator.ReadExact(context.Background(), 4)
	require.ErrorIs(t, err, producerErr)
	require.NotErrorIs(t, err, bytecast.ErrInvalidMemorySize)
}

func TestChannelSource_Cancellation(t *testing.T) {
	source := byteiter.NewChannelSource(0)
	iterator := byteiter.NewContextIterator(source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a waiting consumer is released by cancellation, not stuck forever
	_, err := iterator.ReadExact(ctx, 1)
	require.ErrorIs(t, err, context.Canceled)

	// so is a producer waiting for buffer space
	require.ErrorIs(t, source.Send(ctx, []byte{1}), context.Canceled)
}

func TestChannelSource_SuspendsUntilSend(t *testing.T) {
	source := byteiter.NewChannelSource(0)
	iterator := byteiter.NewContextIterator(source)

	unblocked := make(chan struct{})
	go func() {
		defer close(unblocked)
		require.NoError(t, source.Send(context.Background(), []byte{42}))
		source.Close()
	}()

	window, err := iterator.ReadExact(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []byte{42}, window)

	<-unblocked
}
