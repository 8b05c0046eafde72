// internal/config/config.go
package config

import "image/color"

// All durations are milliseconds, speeds are units per millisecond.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 60.0 // clamp for a single tick

	InterWaveDelay   = 1000.0
	BannerDuration   = 1800.0
	StuckThreshold   = 500.0
	ArrivalDistance  = 10.0
	WorldBoundMargin = 200.0

	PlayerRadius        = 16.0
	PlayerHealth        = 100.0
	PlayerSpeed         = 0.25
	PlayerInvincibility = 600.0
	EnemyInvincibility  = 50.0
	DefaultTargetRadius = 250.0

	ExplosionLifetime    = 250.0
	ExplosionStartRadius = 8.0
	ExplosionMaxRadius   = 70.0

	DroneTurnRate   = 0.004 // radians per ms
	BulletMinStep   = 2.0
	EnemyAimSpread  = 0.08
	ToxicRingSize   = 12
	ToxicRingSpeed  = 0.25
	ToxicRingDamage = 8.0

	ShriekWanderTime = 2500.0
	ShriekBurstTime  = 900.0
	ShriekSpeedMul   = 3.0

	// Survival growth per wave index.
	SurvivalHPGrowth     = 0.10
	SurvivalDamageGrowth = 0.05
	SurvivalSpeedGrowth  = 0.03
	SurvivalCountGrowth  = 1.2
	SurvivalSpawnRate    = 700.0

	DefaultSpawnRate = 900.0

	CameraFollowLerp = 0.15
	BossIntroLerpIn  = 900.0
	BossIntroHold    = 1200.0
	BossIntroShake   = 400.0
	BossIntroLerpOut = 700.0
	BossShakeMag     = 8.0
	ShakeFreqX       = 0.026
	ShakeFreqY       = 0.033

	SpatialCellSize = 64

	DamageNumberLifetime = 700.0
	DamageNumberRise     = 0.04

	ProfileVersion = 2
	ProfileFile    = "profile.json"
	LevelDir       = "assets/levels"
	DataDir        = "assets/data"
)

// Level shape tags understood by the simulation.
const (
	TagEnemyPassable = "enemy_passable"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	ObstacleColor   = color.RGBA{128, 128, 128, 255} // mid-gray default for shapes
	PlayerColor     = color.RGBA{90, 200, 255, 255}
	PlayerBulletCol = color.RGBA{255, 240, 120, 255}
	EnemyBulletCol  = color.RGBA{255, 90, 90, 255}
	ExplosionColor  = color.RGBA{255, 150, 40, 180}
	ToxicColor      = color.RGBA{120, 255, 80, 255}
	CritColor       = color.RGBA{255, 60, 60, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	BannerColor     = color.RGBA{255, 215, 0, 255}
	HealthFillColor = color.RGBA{220, 60, 60, 220}
	HealthBackColor = color.RGBA{50, 50, 60, 220}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
)

// PraiseWords are shown when a real wave is cleared.
var PraiseWords = []string{"Nice!", "Great!", "Awesome!", "Superb!", "Unstoppable!", "Flawless!"}
