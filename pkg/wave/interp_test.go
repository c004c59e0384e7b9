package wave

import (
	"reflect"
	"testing"
)

func shapes(bricks []Brick) []string { return Shapes(bricks) }

func TestGenBrick_FirstSymbol(t *testing.T) {
	tests := []struct {
		name string
		this rune
		want []string
	}{
		{"clock p", 'p', []string{"pclk", "nclk"}},
		{"clock N", 'N', []string{"Nclk", "pclk"}},
		{"sharp high", 'h', []string{"111", "111"}},
		{"sharp low", 'L', []string{"000", "000"}},
		{"level zero", '0', []string{"000", "000"}},
		{"unknown level", 'x', []string{"xxx", "xxx"}},
		{"value marker", '3', []string{"vvv-3", "vvv-3"}},
		{"value marker =", '=', []string{"vvv-2", "vvv-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapes(GenBrick(0, tt.this, 0, 0, false))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenBrick(0, %q) = %v, want %v", tt.this, got, tt.want)
			}
		})
	}
}

func TestGenBrick_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		prev, this rune
		want       []string
	}{
		{"zero to one", '0', '1', []string{"0m1", "111"}},
		{"one to unknown", '1', 'x', []string{"1mx", "xxx"}},
		{"value to value", '2', '3', []string{"vmv-2-3", "vvv-3"}},
		{"zero to value", '0', '5', []string{"0mv-5", "vvv-5"}},
		{"clock ends low then one", 'p', '1', []string{"0m1", "111"}},
		{"neg clock ends high then zero", 'n', '0', []string{"1m0", "000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapes(GenBrick(tt.prev, tt.this, 0, 0, false))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenBrick(%q, %q) = %v, want %v", tt.prev, tt.this, got, tt.want)
			}
			bricks := GenBrick(tt.prev, tt.this, 0, 0, false)
			if !bricks[0].Transition {
				t.Error("first brick should carry the transition flag")
			}
			if bricks[1].Transition {
				t.Error("steady brick should not carry the transition flag")
			}
		})
	}
}

// Level-identical pairs never emit a midpoint transition brick.
func TestGenBrick_ExcludedPairs(t *testing.T) {
	tests := []struct {
		prev, this rune
		first      string
	}{
		{'h', 'p', "111"},
		{'H', 'p', "111"},
		{'l', 'n', "000"},
		{'L', 'n', "000"},
		{'n', 'h', "111"},
		{'p', 'l', "000"},
	}
	for _, tt := range tests {
		got := GenBrick(tt.prev, tt.this, 0, 0, false)
		if got[0].Shape != tt.first {
			t.Errorf("GenBrick(%q, %q)[0] = %s, want %s", tt.prev, tt.this, got[0].Shape, tt.first)
		}
		if got[0].Transition {
			t.Errorf("GenBrick(%q, %q) should suppress the transition brick", tt.prev, tt.this)
		}
	}
}

func TestGenBrick_Repeat(t *testing.T) {
	// A clock with repeat r alternates edge/inverse 1+r times.
	got := shapes(GenBrick(0, 'p', 0, 2, false))
	want := []string{"pclk", "nclk", "pclk", "nclk", "pclk", "nclk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("clock repeat = %v, want %v", got, want)
	}

	// A plain level with repeat r emits 2+2r bricks.
	got = shapes(GenBrick('0', '1', 0, 2, false))
	want = []string{"0m1", "111", "111", "111", "111", "111"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("level repeat = %v, want %v", got, want)
	}

	// A sharp level emits first + 2r+1 steady bricks.
	got = shapes(GenBrick(0, 'h', 0, 1, false))
	want = []string{"111", "111", "111", "111"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sharp repeat = %v, want %v", got, want)
	}
}

func TestGenBrick_StretchInteger(t *testing.T) {
	got := shapes(GenBrick('0', '1', 2, 0, false))
	want := []string{"0m1", "111", "111", "111", "111", "111"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stretch 2 = %v, want %v", got, want)
	}

	// Value markers keep their suffix in the filler bricks.
	got = shapes(GenBrick(0, '3', 1, 0, false))
	want = []string{"vvv-3", "vvv-3", "vvv-3", "vvv-3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stretch value marker = %v, want %v", got, want)
	}

	// Clock bricks stretch with their trailing rail level.
	got = shapes(GenBrick(0, 'p', 1, 0, false))
	want = []string{"pclk", "111", "nclk", "000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stretch clock = %v, want %v", got, want)
	}
}

func TestGenBrick_StretchHalf(t *testing.T) {
	// -0.5 keeps even-indexed bricks: ceil(N/2) of them.
	got := shapes(GenBrick('0', '1', -0.5, 1, false))
	want := []string{"0m1", "111"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("stretch -0.5 = %v, want %v", got, want)
	}

	// Sharp clocks are exempt from down-sampling.
	got = shapes(GenBrick(0, 'p', -0.5, 0, false))
	want = []string{"pclk", "nclk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("clock at -0.5 = %v, want %v", got, want)
	}
}

func TestGenBrick_Subcycle(t *testing.T) {
	// Inside <...> the output is truncated to repeat+1 bricks.
	for _, repeat := range []int{0, 1, 2} {
		got := GenBrick('0', '1', 0, repeat, true)
		if len(got) != repeat+1 {
			t.Errorf("subcycle repeat=%d: len = %d, want %d", repeat, len(got), repeat+1)
		}
	}
}

func TestStretchBricks_DownsampleLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 8} {
		in := make([]Brick, n)
		for i := range in {
			in[i] = steady("111")
		}
		got := stretchBricks(in, -0.5)
		want := (n + 1) / 2
		if len(got) != want {
			t.Errorf("downsample len(%d) = %d, want %d", n, len(got), want)
		}
	}
}
