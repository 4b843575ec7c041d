package config

import "testing"

func TestDifficultyStepCadence(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)

	speed := d.BaseSpeed()
	for frame := 0; frame <= 900; frame++ {
		if frame == 900 && speed != 2+3*0.5 {
			t.Errorf("speed during tick 900 = %v, expected %v", speed, 2+3*0.5)
		}
		// Steps at the end of earlier ticks count, this tick's does not.
		if steps := (frame + 299) / 300; speed != 2+float64(steps)*0.5 {
			t.Fatalf("speed during tick %d = %v, expected %v", frame, speed, 2+float64(steps)*0.5)
		}
		speed = d.Step(speed, frame)
	}

	if speed != 2+4*0.5 {
		t.Errorf("speed after tick 900 = %v, expected %v", speed, 2+4*0.5)
	}
}

func TestDifficultyDue(t *testing.T) {
	d := NewDifficultyManager(DefaultConfig().Difficulty)
	for _, frame := range []int{0, 300, 600, 900} {
		if !d.Due(frame) {
			t.Errorf("Due(%d) should be true", frame)
		}
	}
	for _, frame := range []int{1, 299, 301} {
		if d.Due(frame) {
			t.Errorf("Due(%d) should be false", frame)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		base, inc float64
	}{
		{DifficultyEasy, 1.5, 0.25},
		{DifficultyNormal, 2, 0.5},
		{DifficultyHard, 3, 0.75},
		{DifficultyFixed, 2, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.BaseSpeed != tc.base || cfg.Difficulty.Increment != tc.inc {
				t.Errorf("got base=%v inc=%v, expected base=%v inc=%v",
					cfg.Difficulty.BaseSpeed, cfg.Difficulty.Increment, tc.base, tc.inc)
			}
		})
	}

	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)
	if d.IsEnabled() || d.Step(cfg.Difficulty.BaseSpeed, 300) != cfg.Difficulty.BaseSpeed {
		t.Error("fixed preset should never change speed")
	}
}
