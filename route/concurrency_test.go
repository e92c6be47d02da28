package route_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/builder"
)

func TestComputeRoute_Concurrent(t *testing.T) {
	g, err := builder.Hub()
	require.NoError(t, err)
	e := engine(t, g)
	want := e.ComputeRoute(context.Background(), "R01", "R103")
	require.True(t, want.Success)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got := e.ComputeRoute(context.Background(), "R01", "R103")
				assert.Equal(t, want.Path, got.Path)
				assert.Equal(t, want.Description, got.Description)
			}
		}()
	}
	wg.Wait()
}
