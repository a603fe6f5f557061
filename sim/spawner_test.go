package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"waveshooter/sim/mocks"
)

func TestSpawner_BatchPlacesEnemyFromDraws(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRand(ctrl)

	cfg := DefaultConfig()
	cfg.WaveSize = 1

	gomock.InOrder(
		rng.EXPECT().Float64().Return(0.0), // top edge
		rng.EXPECT().Float64().Return(0.0), // start of the margin
		rng.EXPECT().Float64().Return(0.1), // fast
		rng.EXPECT().Float64().Return(1.0), // latest first shot
	)

	enemies := NewSpawner(cfg, rng).Batch(time.Second)
	require.Len(t, enemies, 1)

	e := enemies[0]
	assert.Equal(t, Vec{X: 40, Y: 12}, e.Pos)
	assert.True(t, e.Fast)
	assert.Equal(t, 12.0, e.Radius)
	assert.Equal(t, 100.0, e.Health)
	assert.Equal(t, 0.0, e.ExtraSpeed)
	assert.Equal(t, time.Second+2500*time.Millisecond, e.NextShotAt)
	assert.True(t, e.Active)
	assert.True(t, e.Bar.Live())
}

func TestSpawner_LargeEnemiesStayClearOfCorners(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRand(ctrl)

	cfg := DefaultConfig()
	cfg.WaveSize = 1
	s := NewSpawner(cfg, rng)
	for range 10 {
		s.Escalate()
	}
	require.Equal(t, 52.0, s.Wave().EnemyRadius)

	gomock.InOrder(
		rng.EXPECT().Float64().Return(0.5),  // left edge
		rng.EXPECT().Float64().Return(0.0),  // start of the edge
		rng.EXPECT().Float64().Return(0.9),  // not fast
		rng.EXPECT().Float64().Return(0.0),  // first shot
		rng.EXPECT().Float64().Return(0.99), // right edge
		rng.EXPECT().Float64().Return(1.0),  // end of the edge
		rng.EXPECT().Float64().Return(0.9),
		rng.EXPECT().Float64().Return(0.0),
	)

	assert.Equal(t, Vec{X: 52, Y: 52}, s.Batch(0)[0].Pos)
	assert.Equal(t, Vec{X: 748, Y: 548}, s.Batch(0)[0].Pos)
}

func TestSpawner_EdgeSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WaveSize = 1

	tests := []struct {
		name string
		draw float64
		want Vec
	}{
		{"top", 0.1, Vec{X: 400, Y: 12}},
		{"bottom", 0.3, Vec{X: 400, Y: 588}},
		{"left", 0.5, Vec{X: 12, Y: 300}},
		{"right", 0.99, Vec{X: 788, Y: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rng := mocks.NewMockRand(ctrl)
			gomock.InOrder(
				rng.EXPECT().Float64().Return(tt.draw),
				rng.EXPECT().Float64().Return(0.5),
				rng.EXPECT().Float64().Return(0.5),
				rng.EXPECT().Float64().Return(0.5),
			)

			e := NewSpawner(cfg, rng).Batch(0)[0]
			assert.Equal(t, tt.want, e.Pos)
			assert.False(t, e.Fast)
			assert.Equal(t, 1650*time.Millisecond, e.NextShotAt)
		})
	}
}

func TestSpawner_EscalateIsCumulative(t *testing.T) {
	s := NewSpawner(DefaultConfig(), rand.New(rand.NewSource(7)))
	assert.Equal(t, Wave{EnemyRadius: 12, BulletsPerShot: 2}, s.Wave())

	s.Escalate()
	w := s.Escalate()
	assert.Equal(t, Wave{Number: 2, SpeedBonus: 80, EnemyRadius: 20, BulletsPerShot: 4}, w)
	assert.Equal(t, w, s.Wave())

	for _, e := range s.Batch(0) {
		assert.Equal(t, 80.0, e.ExtraSpeed)
		assert.Equal(t, 20.0, e.Radius)
		assert.Equal(t, 2, e.Wave)
	}
}

func TestSpawner_BatchStaysInsideArena(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSpawner(cfg, rand.New(rand.NewSource(42)))

	for range 20 {
		batch := s.Batch(0)
		require.Len(t, batch, cfg.WaveSize)
		for _, e := range batch {
			assert.GreaterOrEqual(t, e.Pos.X, e.Radius)
			assert.LessOrEqual(t, e.Pos.X, cfg.ArenaWidth-e.Radius)
			assert.GreaterOrEqual(t, e.Pos.Y, e.Radius)
			assert.LessOrEqual(t, e.Pos.Y, cfg.ArenaHeight-e.Radius)
			assert.GreaterOrEqual(t, e.NextShotAt, cfg.EnemyFirstShotMin)
			assert.LessOrEqual(t, e.NextShotAt, cfg.EnemyFirstShotMax)
		}
		s.Escalate()
	}
}
