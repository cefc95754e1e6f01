package slugs

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Main Screen", "main-screen"},
		{"Engine RPM Gauge", "engine-rpm-gauge"},
		{"UPPER CASE", "upper-case"},
		{"Alarm!  Mask", "alarm-mask"},
		{"data-mask-2", "data-mask-2"},
		{"Überwachung", "uberwachung"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Name(tt.in); got != tt.want {
				t.Fatalf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProjectFile(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tractor Display", "tractor-display.vtp"},
		{"", "untitled.vtp"},
		{"!!!", "untitled.vtp"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ProjectFile(tt.in); got != tt.want {
				t.Fatalf("ProjectFile(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPoolFile(t *testing.T) {
	if got := PoolFile("Main Screen"); got != "main-screen.iop" {
		t.Fatalf("PoolFile(Main Screen) = %q, want main-screen.iop", got)
	}
	if got := PoolFile(""); got != "untitled.iop" {
		t.Fatalf("PoolFile() = %q, want untitled.iop", got)
	}
}
