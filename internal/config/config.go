// Package config provides YAML-based tuning for the arcade games.
//
// Several games carry constants that were tuned by feel (spawn windows, flash
// timings, level targets). Those values are preserved here as configuration
// rather than re-derived; override files follow the same search order for
// every game: explicit path, ~/.wingshack/configs/<game>.yaml,
// ./configs/<game>.yaml, then the in-code defaults.
package config

// SnakeConfig contains tuning for the snake game.
type SnakeConfig struct {
	Grid     SnakeGrid  `yaml:"grid"`
	Speed    SnakeSpeed `yaml:"speed"`
	StartLen int        `yaml:"start_len"`
}

// SnakeGrid defines the playfield dimensions.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeSpeed defines the discrete move interval schedule.
type SnakeSpeed struct {
	MoveInterval  float64 `yaml:"move_interval"`   // Seconds between moves at start
	MinInterval   float64 `yaml:"min_interval"`    // Floor interval
	StepEveryFood int     `yaml:"step_every_food"` // Foods per speed-up
	IntervalStep  float64 `yaml:"interval_step"`   // Seconds removed per speed-up
}

// FlyerConfig contains tuning for the flyer game.
type FlyerConfig struct {
	Physics   FlyerPhysics   `yaml:"physics"`
	Obstacles FlyerObstacles `yaml:"obstacles"`
	Player    FlyerPlayer    `yaml:"player"`
}

// FlyerPhysics defines the continuous-time motion parameters.
type FlyerPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Cells/s^2 downward
	FlapVelocity float64 `yaml:"flap_velocity"`  // Upward velocity a flap sets (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity, cells/s
	ScrollSpeed  float64 `yaml:"scroll_speed"`   // Obstacle speed leftward, cells/s
}

// FlyerObstacles defines pipe spawning.
type FlyerObstacles struct {
	PipeWidth     int     `yaml:"pipe_width"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns (wall clock)
	MinGapSize    int     `yaml:"min_gap_size"`
	MaxGapSize    int     `yaml:"max_gap_size"`
	TopMargin     int     `yaml:"top_margin"`
	BottomMargin  int     `yaml:"bottom_margin"`
}

// FlyerPlayer defines the actor hitbox.
type FlyerPlayer struct {
	X         int     `yaml:"x"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	HitMargin float64 `yaml:"hit_margin"` // Hitbox shrink per side, for fairness
}

// PongConfig contains tuning for pong.
type PongConfig struct {
	Physics  PongPhysics  `yaml:"physics"`
	Paddles  PongPaddles  `yaml:"paddles"`
	Gameplay PongGameplay `yaml:"gameplay"`
	CPU      PongCPU      `yaml:"cpu"`
}

// PongPhysics defines ball motion.
type PongPhysics struct {
	BallSpeed     float64 `yaml:"ball_speed"`     // Cells/s at serve
	SpeedUpFactor float64 `yaml:"speed_up_factor"` // Multiplier per paddle bounce
	MaxBallSpeed  float64 `yaml:"max_ball_speed"` // Cap
	SpinFactor    float64 `yaml:"spin_factor"`    // Bounce angle from contact offset
	PaddleSpeed   float64 `yaml:"paddle_speed"`   // Cells/s per nudge
}

// PongPaddles defines paddle geometry.
type PongPaddles struct {
	Height int `yaml:"height"`
	Offset int `yaml:"offset"` // Distance from court edge
}

// PongGameplay defines the match rules.
type PongGameplay struct {
	WinScore   int     `yaml:"win_score"`
	ServeDelay float64 `yaml:"serve_delay"` // Seconds before the ball moves
}

// PongCPU defines the opponent's tracking-with-delay heuristic.
type PongCPU struct {
	TrackSpeed float64 `yaml:"track_speed"` // Fraction of paddle speed
	Deadzone   float64 `yaml:"deadzone"`    // Cells of slack before it moves
}

// MemoryConfig contains tuning for the memory (watch-and-repeat) game.
type MemoryConfig struct {
	Pads          int     `yaml:"pads"`           // Number of pads (4)
	FlashDuration float64 `yaml:"flash_duration"` // Seconds each pad lights up
	GapDuration   float64 `yaml:"gap_duration"`   // Seconds between flashes
	LeadIn        float64 `yaml:"lead_in"`        // Pause before playback starts
}

// TapFrenzyConfig contains tuning for the tap-speed game.
type TapFrenzyConfig struct {
	SessionSeconds float64 `yaml:"session_seconds"`
	SpawnMin       float64 `yaml:"spawn_min"`    // Min seconds between spawns
	SpawnMax       float64 `yaml:"spawn_max"`    // Max seconds between spawns
	Lifetime       float64 `yaml:"lifetime"`     // Seconds before an untapped target despawns
	MaxConcurrent  int     `yaml:"max_concurrent"`
	GoodPoints     int     `yaml:"good_points"`
	BadPenalty     int     `yaml:"bad_penalty"`
	BadChance      float64 `yaml:"bad_chance"`    // Probability a spawn is a penalty item
	LevelTargets   []int   `yaml:"level_targets"` // Target score per level
}

// SpinnerConfig contains tuning for the wheel spinner.
type SpinnerConfig struct {
	Segments     []SpinnerSegment `yaml:"segments"`
	FullSpins    int              `yaml:"full_spins"`    // Whole rotations before settling
	SpinDuration float64          `yaml:"spin_duration"` // Seconds from spin to rest
}

// SpinnerSegment is one labeled wheel segment.
type SpinnerSegment struct {
	Label  string `yaml:"label"`
	Points int    `yaml:"points"`
}

// ShellsConfig contains tuning for the shell game.
type ShellsConfig struct {
	Cups            int     `yaml:"cups"`
	RevealDuration  float64 `yaml:"reveal_duration"`  // Seconds the target is shown
	ShuffleDuration float64 `yaml:"shuffle_duration"` // Total seconds of swapping
	Swaps           int     `yaml:"swaps"`            // Number of pairwise swaps
	FirstSwapDelay  float64 `yaml:"first_swap_delay"` // Seconds; interpolates down to LastSwapDelay
	LastSwapDelay   float64 `yaml:"last_swap_delay"`
	WinPoints       int     `yaml:"win_points"`
}
