package dedupe

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ClaimOnce(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Stop()

	assert.True(t, r.TryClaim("wamid.1"))
	assert.False(t, r.TryClaim("wamid.1"))
	assert.True(t, r.TryClaim("wamid.2"))
}

func TestRegistry_EmptyIDNeverClaims(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Stop()

	assert.False(t, r.TryClaim(""))
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_ConcurrentClaimsAreAtomic(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Stop()

	const goroutines = 50
	var wins int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if r.TryClaim("wamid.race") {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, int64(1), wins, "exactly one goroutine may win the claim")
}

func TestRegistry_ExpiredClaimCanBeRetaken(t *testing.T) {
	r := NewRegistry(time.Hour)
	defer r.Stop()

	current := time.Now()
	r.now = func() time.Time { return current }

	require.True(t, r.TryClaim("wamid.old"))
	require.False(t, r.TryClaim("wamid.old"))

	current = current.Add(2 * time.Hour)
	assert.True(t, r.TryClaim("wamid.old"))
}
