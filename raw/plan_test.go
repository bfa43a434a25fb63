package raw

import (
	"reflect"
	"testing"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		beepLast bool
		want     []string
	}{
		{
			name:     "sorted by path",
			paths:    []string{"c/HUM.RAW", "a/CLASH1.RAW", "b/SWING1.RAW"},
			beepLast: false,
			want:     []string{"a/CLASH1.RAW", "b/SWING1.RAW", "c/HUM.RAW"},
		},
		{
			name:     "beep moved last regardless of input order",
			paths:    []string{"sounds/BEEP.RAW", "sounds/ZAP.RAW", "sounds/HUM.RAW"},
			beepLast: true,
			want:     []string{"sounds/HUM.RAW", "sounds/ZAP.RAW", "sounds/BEEP.RAW"},
		},
		{
			name:     "beep kept in place without reordering",
			paths:    []string{"sounds/BEEP.RAW", "sounds/ZAP.RAW"},
			beepLast: false,
			want:     []string{"sounds/BEEP.RAW", "sounds/ZAP.RAW"},
		},
		{
			name:     "name containing the beep name moved last",
			paths:    []string{"sounds/ABEEP.RAW", "sounds/ZAP.RAW"},
			beepLast: true,
			want:     []string{"sounds/ZAP.RAW", "sounds/ABEEP.RAW"},
		},
		{
			name:     "no beep present",
			paths:    []string{"HUM.RAW", "CLASH1.RAW"},
			beepLast: true,
			want:     []string{"CLASH1.RAW", "HUM.RAW"},
		},
		{
			name:     "empty input",
			paths:    nil,
			beepLast: true,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPlan(tt.paths, tt.beepLast)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewPlan(%v, %v) = %v, want %v", tt.paths, tt.beepLast, got, tt.want)
			}
		})
	}
}

func TestNewPlanDoesNotMutateInput(t *testing.T) {
	paths := []string{"b/BEEP.RAW", "a/HUM.RAW"}
	NewPlan(paths, true)
	if paths[0] != "b/BEEP.RAW" || paths[1] != "a/HUM.RAW" {
		t.Errorf("input slice mutated: %v", paths)
	}
}

func TestHasBeep(t *testing.T) {
	if !HasBeep([]string{"a/HUM.RAW", "b/BEEP.RAW"}) {
		t.Error("beep path not detected")
	}
	if !HasBeep([]string{"a/HUM.RAW", "b/ABEEP.RAW"}) {
		t.Error("name containing the beep name not detected")
	}
	if HasBeep([]string{"a/HUM.RAW", "BEEPING.RAW"}) {
		t.Error("non-beep path detected as beep")
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0B"},
		{512, "512B"},
		{1024, "1.00KB"},
		{44100, "43.07KB"},
		{16777216, "16.00MB"},
	}

	for _, tt := range tests {
		if got := HumanSize(tt.n); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
