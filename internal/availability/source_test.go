package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSimulatedSourceReturnsResolvedSlots(t *testing.T) {
	source := NewSimulatedSource(0)

	slots, err := source.Fetch(context.Background(), tuesday)
	require.NoError(t, err)
	require.Equal(t, Resolve(tuesday), slots)
}

func TestSimulatedSourceHonorsContext(t *testing.T) {
	source := NewSimulatedSource(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := source.Fetch(ctx, tuesday)
	require.ErrorIs(t, err, context.Canceled)
}
