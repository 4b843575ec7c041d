package core

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, ColorSky},
		{"end", 1, ColorBlack},
		{"midpoint rounds", 0.5, RGB(88, 112, 115)},
		{"below range clamps", -1, ColorSky},
		{"above range clamps", 2, ColorBlack},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Lerp(ColorSky, ColorBlack, tc.t)
			if got != tc.want {
				t.Errorf("Lerp(sky, black, %v) = %+v, expected %+v", tc.t, got, tc.want)
			}
		})
	}
}

func TestColorOver(t *testing.T) {
	if got := ColorRed.Over(ColorBlack); got != ColorRed {
		t.Errorf("opaque Over should replace, got %+v", got)
	}

	half := RGBA(255, 255, 255, 0.5)
	got := half.Over(ColorBlack)
	if got.R != 128 || got.G != 128 || got.B != 128 || !got.Opaque() {
		t.Errorf("half white over black = %+v, expected opaque grey 128", got)
	}
}

func TestColorHex(t *testing.T) {
	if hex := ColorSky.Hex(); hex != "#b0e0e6" {
		t.Errorf("Hex() = %q, expected #b0e0e6", hex)
	}
}
