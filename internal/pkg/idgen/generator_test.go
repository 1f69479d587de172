package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnowflakeGenerator(t *testing.T) {
	t.Run("valid_node", func(t *testing.T) {
		g, err := NewSnowflakeGenerator(1)
		require.NoError(t, err)
		assert.Greater(t, g.GenerateID(), int64(0))
	})

	t.Run("node_out_of_range", func(t *testing.T) {
		_, err := NewSnowflakeGenerator(1024)
		assert.Error(t, err)
	})
}

func TestSnowflakeGenerator_Unique(t *testing.T) {
	g, err := NewSnowflakeGenerator(7)
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[int64]bool)
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := g.GenerateID()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Len(t, seen, 800)
}

func TestBookingReference(t *testing.T) {
	assert.Equal(t, "BK-0", BookingReference(0))
	assert.Equal(t, "BK-ZZ", BookingReference(36*36-1))
}
