package system

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/domain/session"
	"github.com/younwookim/crystalblade/internal/ecs"
	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// SpawnConfig holds placement rules. Distances are pixels.
type SpawnConfig struct {
	GroundY int

	// Enemies appear Radius..Radius+Jitter away from the player
	Radius float64
	Jitter float64
	Enemy  ecs.EnemyConfig

	CrystalHitbox ecs.Hitbox
	CrystalDropY  int // pixel row crystals fall from
}

// Spawner places enemies and crystals in the world.
// All randomness comes from one seeded source so a recorded match replays exactly.
type Spawner struct {
	cfg SpawnConfig
	rng *rand.Rand
}

// NewSpawner creates a spawner with a fixed seed
func NewSpawner(seed int64, cfg SpawnConfig) *Spawner {
	return &Spawner{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// SpawnWave creates n enemies around the player, each on a random side
func (s *Spawner) SpawnWave(w *ecs.World, n int) []ecs.EntityID {
	originX := 0.0
	if pr, ok := w.GetPlayerRect(); ok {
		originX = float64(pr.CenterX())
	}
	half := float64(s.cfg.Enemy.Hitbox.Width) / 2

	ids := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		dist := s.cfg.Radius + s.rng.Float64()*s.cfg.Jitter
		if s.rng.Intn(2) == 0 {
			dist = -dist
		}
		x := int(math.Round(originX + dist - half))
		ids = append(ids, w.CreateEnemy(x, s.cfg.GroundY, s.cfg.Enemy))
	}

	logger.Log.Debug("wave spawned",
		zap.Int("enemies", n),
		zap.Float64("origin", originX))
	return ids
}

// SpawnCrystal drops a crystal at a uniformly random X inside bounds
func (s *Spawner) SpawnCrystal(w *ecs.World, b session.Bounds) ecs.EntityID {
	x := b.Left
	if b.Right > b.Left {
		x += s.rng.Float64() * (b.Right - b.Left)
	}
	id := w.CreateCrystal(int(x), s.cfg.CrystalDropY, s.cfg.CrystalHitbox)

	logger.Log.Debug("crystal spawned", zap.Int("x", int(x)))
	return id
}
