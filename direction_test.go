package lattice

import (
	"errors"
	"testing"
)

func TestDirection_Vector(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Vec
	}{
		{Down, V(0, -0.5, 0)},
		{Up, V(0, 0.5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got, err := tt.dir.Vector()
			if err != nil {
				t.Fatalf("Vector: %v", err)
			}
			if got != tt.want {
				t.Errorf("Vector() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirection_VectorInvalid(t *testing.T) {
	for _, d := range []Direction{2, 7, 255} {
		if d.Valid() {
			t.Errorf("Direction(%d).Valid() = true", d)
		}
		if _, err := d.Vector(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Direction(%d).Vector() err = %v, want ErrInvalidArgument", d, err)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"down", Down, false},
		{"DOWN", Down, false},
		{"Up", Up, false},
		{"uP", Up, false},
		{"sideways", 0, true},
		{"", 0, true},
		{" up", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("ParseDirection(%q) err = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirection_String(t *testing.T) {
	if Down.String() != "down" || Up.String() != "up" {
		t.Errorf("String() = %q, %q", Down, Up)
	}
	if got := Direction(9).String(); got != "Direction(9)" {
		t.Errorf("Direction(9).String() = %q", got)
	}
}
