package config

// DefaultSnakeConfig returns the default snake tuning.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  32,
			Height: 18,
		},
		Speed: SnakeSpeed{
			MoveInterval:  0.14,
			MinInterval:   0.05,
			StepEveryFood: 3,
			IntervalStep:  0.01,
		},
		StartLen: 3,
	}
}

// DefaultFlyerConfig returns the default flyer tuning.
func DefaultFlyerConfig() FlyerConfig {
	return FlyerConfig{
		Physics: FlyerPhysics{
			Gravity:      38.0,
			FlapVelocity: -14.0,
			MaxFallSpeed: 26.0,
			ScrollSpeed:  14.0,
		},
		Obstacles: FlyerObstacles{
			PipeWidth:     5,
			SpawnInterval: 1.9,
			MinGapSize:    7,
			MaxGapSize:    10,
			TopMargin:     2,
			BottomMargin:  2,
		},
		Player: FlyerPlayer{
			X:         10,
			Width:     2,
			Height:    2,
			HitMargin: 0.35,
		},
	}
}

// DefaultPongConfig returns the default pong tuning.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			BallSpeed:     22.0,
			SpeedUpFactor: 1.05,
			MaxBallSpeed:  48.0,
			SpinFactor:    14.0,
			PaddleSpeed:   30.0,
		},
		Paddles: PongPaddles{
			Height: 5,
			Offset: 2,
		},
		Gameplay: PongGameplay{
			WinScore:   5,
			ServeDelay: 1.0,
		},
		CPU: PongCPU{
			TrackSpeed: 0.72,
			Deadzone:   0.8,
		},
	}
}

// DefaultMemoryConfig returns the default memory-game tuning.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Pads:          4,
		FlashDuration: 0.45,
		GapDuration:   0.2,
		LeadIn:        0.8,
	}
}

// DefaultTapFrenzyConfig returns the default tap-frenzy tuning.
// Spawn windows and targets carry over from the original hand-tuned values.
func DefaultTapFrenzyConfig() TapFrenzyConfig {
	return TapFrenzyConfig{
		SessionSeconds: 30,
		SpawnMin:       0.35,
		SpawnMax:       0.9,
		Lifetime:       1.6,
		MaxConcurrent:  3,
		GoodPoints:     1,
		BadPenalty:     2,
		BadChance:      0.2,
		LevelTargets:   []int{15, 22, 30},
	}
}

// DefaultSpinnerConfig returns the default wheel tuning.
func DefaultSpinnerConfig() SpinnerConfig {
	return SpinnerConfig{
		Segments: []SpinnerSegment{
			{Label: "FREE WINGS", Points: 100},
			{Label: "10% OFF", Points: 10},
			{Label: "TRY AGAIN", Points: 0},
			{Label: "FREE DRINK", Points: 25},
			{Label: "DOUBLE UP", Points: 50},
			{Label: "TRY AGAIN", Points: 0},
			{Label: "FREE SIDE", Points: 25},
			{Label: "JACKPOT", Points: 200},
		},
		FullSpins:    4,
		SpinDuration: 4.5,
	}
}

// DefaultShellsConfig returns the default shell-game tuning.
func DefaultShellsConfig() ShellsConfig {
	return ShellsConfig{
		Cups:            3,
		RevealDuration:  1.2,
		ShuffleDuration: 4.0,
		Swaps:           10,
		FirstSwapDelay:  0.6,
		LastSwapDelay:   0.18,
		WinPoints:       10,
	}
}
