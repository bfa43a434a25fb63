package raw

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDeviceName(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "plain file", path: "HUM.RAW", want: "HUM.RAW"},
		{name: "nested path", path: "sounds/pack/CLASH1.RAW", want: "CLASH1.RAW"},
		{name: "underscore allowed", path: "SMOOTH_A.RAW", want: "SMOOTH_A.RAW"},
		{name: "wrong extension", path: "HUM.WAV", wantErr: true},
		{name: "lowercase extension", path: "HUM.raw", wantErr: true},
		{name: "missing base name", path: ".RAW", wantErr: true},
		{name: "space in name", path: "MY HUM.RAW", wantErr: true},
		{name: "name too long", path: strings.Repeat("A", MaxNameLength) + ".RAW", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeviceName(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got nil", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DeviceName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "HUM.RAW")
	if err := os.WriteFile(path, make([]byte, 1234), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "HUM.RAW" {
		t.Errorf("Name = %q, want %q", f.Name, "HUM.RAW")
	}
	if f.Size != 1234 {
		t.Errorf("Size = %d, want 1234", f.Size)
	}
	if f.Path != path {
		t.Errorf("Path = %q, want %q", f.Path, path)
	}
}

func TestStatMissingFile(t *testing.T) {
	if _, err := Stat(filepath.Join(t.TempDir(), "GHOST.RAW")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestIsBeep(t *testing.T) {
	if !IsBeep("any/dir/BEEP.RAW") {
		t.Error("BEEP.RAW path not recognized")
	}
	if !IsBeep("any/dir/ABEEP.RAW") {
		t.Error("name containing BEEP.RAW not recognized")
	}
	if IsBeep("any/dir/BEEP2.RAW") {
		t.Error("BEEP2.RAW wrongly recognized as a beep asset")
	}
}
