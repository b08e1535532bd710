package bucket

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide_SteadyStateAllow(t *testing.T) {
	cfg := Config{Capacity: 10, RefillRate: 1}
	prior := State{Tokens: 10, LastRefill: 0}

	d, next := Decide(cfg, prior, 1, 1000)

	assert.True(t, d.Allowed)
	assert.Equal(t, 10, d.Remaining, "refill clamps to capacity before the decrement")
	assert.Equal(t, 10, d.Limit)
	assert.Equal(t, 0, d.RetryAfter)
	assert.InDelta(t, 10.0, next.Tokens, 1e-9)
	assert.Equal(t, int64(1000), next.LastRefill)
}

func TestDecide_BurstExhaustion(t *testing.T) {
	cfg := Config{Capacity: 10, RefillRate: 1}
	state := State{Tokens: 10, LastRefill: 0}

	want := []int{9, 8, 7, 6, 5}
	for i, expected := range want {
		d, next := Decide(cfg, state, 1, 0)
		require.True(t, d.Allowed, "request %d", i)
		assert.Equal(t, expected, d.Remaining, "request %d", i)
		state = next
	}

	assert.InDelta(t, 5.0, state.Tokens, 1e-9)
	assert.Equal(t, int64(0), state.LastRefill)
}

func TestDecide_DenialThenRecovery(t *testing.T) {
	cfg := Config{Capacity: 2, RefillRate: 1}
	state := State{Tokens: 0, LastRefill: 1000}

	d, next := Decide(cfg, state, 1, 1500)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, 1, d.RetryAfter)
	assert.InDelta(t, 0.5, next.Tokens, 1e-9, "refill is recorded on deny")

	d, next = Decide(cfg, next, 1, 2000)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.InDelta(t, 0.0, next.Tokens, 1e-9)
}

func TestDecide_OversizeCostNeverAllowed(t *testing.T) {
	cfg := Config{Capacity: 5, RefillRate: 1}
	prior := State{Tokens: 5, LastRefill: 0}

	d, next := Decide(cfg, prior, 10, 0)

	assert.False(t, d.Allowed)
	assert.Equal(t, 5, d.RetryAfter)
	assert.InDelta(t, 5.0, next.Tokens, 1e-9, "tokens untouched on oversize deny")
	assert.Equal(t, int64(0), next.LastRefill)
}

func TestDecide_ZeroCost(t *testing.T) {
	cfg := Config{Capacity: 10, RefillRate: 2}
	prior := State{Tokens: 3, LastRefill: 0}

	d, next := Decide(cfg, prior, 0, 2000)

	assert.True(t, d.Allowed, "zero cost is always allowed")
	assert.Equal(t, 7, d.Remaining, "refill happens, nothing is consumed")
	assert.InDelta(t, 7.0, next.Tokens, 1e-9)
}

func TestDecide_ClockRegression(t *testing.T) {
	cfg := Config{Capacity: 10, RefillRate: 1000}
	prior := State{Tokens: 2, LastRefill: 5000}

	d, next := Decide(cfg, prior, 1, 3000)

	assert.True(t, d.Allowed)
	assert.Equal(t, int64(5000), next.LastRefill, "LastRefill never moves backward")
	assert.InDelta(t, 1.0, next.Tokens, 1e-9, "no spurious refill on regression")
	_ = d
}

func TestDecide_CapacityBound(t *testing.T) {
	cfg := Config{Capacity: 7, RefillRate: 3.5}
	state := State{Tokens: 7, LastRefill: 0}

	costs := []float64{1, 0, 3, 9, 2.5, 0.25, 7, 1}
	now := int64(0)
	for i, cost := range costs {
		now += int64(i * 700)
		var d Decision
		d, state = Decide(cfg, state, cost, now)
		require.GreaterOrEqual(t, state.Tokens, 0.0, "step %d", i)
		require.LessOrEqual(t, state.Tokens, cfg.Capacity, "step %d", i)
		require.GreaterOrEqual(t, d.Remaining, 0, "step %d", i)
	}
}

func TestDecide_MonotonicRefill(t *testing.T) {
	cfg := Config{Capacity: 100, RefillRate: 0.5}
	prior := State{Tokens: 10, LastRefill: 0}

	_, earlier := Decide(cfg, prior, 0, 4000)
	_, later := Decide(cfg, prior, 0, 9000)

	assert.GreaterOrEqual(t, later.Tokens, earlier.Tokens)
}

func TestDecide_ConservationUnderAllow(t *testing.T) {
	cfg := Config{Capacity: 20, RefillRate: 2}
	prior := State{Tokens: 4, LastRefill: 1000}
	cost := 3.0
	now := int64(2500)

	d, next := Decide(cfg, prior, cost, now)

	require.True(t, d.Allowed)
	elapsed := float64(now-prior.LastRefill) / 1000.0
	expected := math.Min(cfg.Capacity, prior.Tokens+elapsed*cfg.RefillRate) - cost
	assert.InDelta(t, expected, next.Tokens, 1e-9)
}

func TestDecide_RetryAfterBounds(t *testing.T) {
	cfg := Config{Capacity: 10, RefillRate: 0.75}
	prior := State{Tokens: 1, LastRefill: 0}

	d, next := Decide(cfg, prior, 6, 0)

	require.False(t, d.Allowed)
	exact := (6 - next.Tokens) / cfg.RefillRate
	assert.GreaterOrEqual(t, float64(d.RetryAfter), math.Ceil(exact)-1e-9)
	assert.LessOrEqual(t, float64(d.RetryAfter), math.Ceil(exact)+1)
}

func TestDecide_HugeCostSaturatesRetryAfter(t *testing.T) {
	cfg := Config{Capacity: 5, RefillRate: 1}
	prior := NewState(cfg, 0)

	// A cost this large would overflow int through Ceil; the wait is
	// reported saturated rather than wrapping negative.
	d, next := Decide(cfg, prior, 1e18, 0)

	require.False(t, d.Allowed)
	assert.Equal(t, math.MaxInt32, d.RetryAfter)
	assert.GreaterOrEqual(t, d.ResetAt, int64(0))
	assert.Equal(t, cfg.Capacity, next.Tokens, "denied check consumes nothing")
}

func TestDecide_SlowRefillKeepsResetAtNonNegative(t *testing.T) {
	cfg := Config{Capacity: 1e9, RefillRate: 1e-9}
	prior := State{Tokens: 0, LastRefill: 0}

	d, _ := Decide(cfg, prior, 1, 0)

	require.False(t, d.Allowed)
	assert.GreaterOrEqual(t, d.ResetAt, int64(0))
	assert.GreaterOrEqual(t, d.RetryAfter, 0)
}

func TestDecide_ResetAtFullBucket(t *testing.T) {
	cfg := Config{Capacity: 10, RefillRate: 1}
	prior := State{Tokens: 10, LastRefill: 0}

	d, _ := Decide(cfg, prior, 0, 42000)
	assert.Equal(t, int64(42), d.ResetAt, "full bucket resets now")
}

func TestDecide_ResetAtPartialBucket(t *testing.T) {
	cfg := Config{Capacity: 10, RefillRate: 1}
	prior := State{Tokens: 10, LastRefill: 0}

	// Consume 4 tokens at t=0; 4 seconds of refill to full.
	d, _ := Decide(cfg, prior, 4, 0)
	assert.Equal(t, int64(4), d.ResetAt)
}

func TestDecide_PanicsOnInvalidConfig(t *testing.T) {
	assert.Panics(t, func() {
		Decide(Config{Capacity: 0, RefillRate: 1}, State{}, 1, 0)
	})
	assert.Panics(t, func() {
		Decide(Config{Capacity: 10, RefillRate: 0}, State{}, 1, 0)
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Capacity: 1, RefillRate: 0.001}.Validate())
	assert.Error(t, Config{Capacity: 0.5, RefillRate: 1}.Validate())
	assert.Error(t, Config{Capacity: 10, RefillRate: -1}.Validate())
	assert.Error(t, Config{Capacity: 10, RefillRate: math.Inf(1)}.Validate())
	assert.Error(t, Config{Capacity: 10, RefillRate: math.NaN()}.Validate())
}

func TestStateCodec(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{"whole tokens", State{Tokens: 10, LastRefill: 1700000000000}},
		{"fractional tokens", State{Tokens: 0.333333, LastRefill: 1}},
		{"empty bucket", State{Tokens: 0, LastRefill: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeState(tt.state)
			decoded, ok := DecodeState(encoded)
			require.True(t, ok)
			assert.InDelta(t, tt.state.Tokens, decoded.Tokens, 1e-12)
			assert.Equal(t, tt.state.LastRefill, decoded.LastRefill)
		})
	}
}

func TestDecodeState_Malformed(t *testing.T) {
	for _, bad := range []string{
		"",
		"v1|",
		"v1|abc|123",
		"v1|1.5|xyz",
		"v1|1.5",
		"v9|1.5|123",
		"garbage",
	} {
		_, ok := DecodeState(bad)
		assert.False(t, ok, "input %q", bad)
	}
}
