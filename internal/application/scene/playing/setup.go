package playing

import (
	"go.uber.org/zap"

	"github.com/younwookim/crystalblade/internal/application/system"
	"github.com/younwookim/crystalblade/internal/domain/session"
	"github.com/younwookim/crystalblade/internal/ecs"
	"github.com/younwookim/crystalblade/internal/infrastructure/config"
	"github.com/younwookim/crystalblade/internal/infrastructure/logger"
)

// physicsConfig converts the pixel/second tuning in game.json to per-frame fixed point
func physicsConfig(cfg *config.GameConfig) ecs.Config {
	fps := cfg.Display.Framerate
	return ecs.Config{
		Gravity:           ecs.ToIUAccelPerFrame(cfg.Arena.Gravity, fps),
		MaxFallSpeed:      ecs.ToIUPerFrame(cfg.Arena.MaxFallSpeed, fps),
		GroundY:           cfg.Arena.GroundY,
		MoveSpeed:         ecs.ToIUPerFrame(cfg.Player.MoveSpeed, fps),
		JumpForce:         ecs.ToIUPerFrame(cfg.Player.JumpForce, fps),
		LeftBoundary:      cfg.Player.LeftBoundary,
		RightBoundary:     cfg.Player.RightBoundary,
		AttackFrames:      ecs.SecondsToFrames(cfg.Player.Attack.Duration, fps),
		AttackBoxWidth:    cfg.Player.Attack.BoxWidth,
		AttackBoxHeight:   cfg.Player.Attack.BoxHeight,
		AttackBoxDistance: cfg.Player.Attack.BoxDistance,
		KnockbackForce:    ecs.ToIUPerFrame(cfg.Player.Knockback.Force, fps),
		KnockbackUpForce:  ecs.ToIUPerFrame(cfg.Player.Knockback.UpForce, fps),
	}
}

// sessionConfig builds the match tuning. Crystals drop anywhere the player can reach.
func sessionConfig(cfg *config.GameConfig) session.Config {
	return session.Config{
		StartMinutes:          cfg.Session.StartMinutes,
		InitialSpawnCount:     cfg.Session.InitialSpawnCount,
		KillsPerCrystal:       cfg.Session.KillsPerCrystal,
		SpecialAttackCost:     cfg.Session.SpecialAttackCost,
		SpecialAttackCooldown: cfg.Session.SpecialAttackCooldown,
		CrystalBounds: session.Bounds{
			Left:  float64(cfg.Player.LeftBoundary),
			Right: float64(cfg.Player.RightBoundary),
		},
	}
}

func spawnConfig(cfg *config.GameConfig) system.SpawnConfig {
	fps := cfg.Display.Framerate
	return system.SpawnConfig{
		GroundY: cfg.Arena.GroundY,
		Radius:  float64(cfg.Enemy.SpawnRadius),
		Jitter:  float64(cfg.Enemy.SpawnJitter),
		Enemy: ecs.EnemyConfig{
			MoveSpeed:      ecs.ToIUPerFrame(cfg.Enemy.MoveSpeed, fps),
			DirectionDelay: ecs.SecondsToFrames(cfg.Enemy.DirectionChangeDelay, fps),
			Hitbox:         hitbox(cfg.Enemy.Hitbox),
		},
		CrystalHitbox: hitbox(cfg.Crystal.Hitbox),
		CrystalDropY:  cfg.Crystal.DropY,
	}
}

func hitbox(r config.Rect) ecs.Hitbox {
	return ecs.Hitbox{OffsetX: r.OffsetX, OffsetY: r.OffsetY, Width: r.Width, Height: r.Height}
}

// buildWorld lays out a fresh arena: background strips and the player
func buildWorld(cfg *config.GameConfig) *ecs.World {
	w := ecs.NewWorld()
	fps := cfg.Display.Framerate

	for i, layer := range cfg.Arena.Background {
		c, err := layer.RGBA()
		if err != nil {
			logger.Log.Warn("bad background colour", zap.Int("layer", i), zap.Error(err))
		}
		w.CreateScroller(0, layer.Y, ecs.Scroller{
			Span:   layer.Span,
			Speed:  ecs.ToIUPerFrame(layer.Speed, fps),
			Width:  cfg.Display.ScreenWidth + layer.Span,
			Height: layer.Height,
			Color:  c,
		})
	}

	w.CreatePlayer(cfg.Player.SpawnX, cfg.Arena.GroundY, hitbox(cfg.Player.Hitbox), cfg.Player.MaxLives)
	return w
}
