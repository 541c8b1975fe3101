package domain

import "testing"

func TestGlobalConfigDir(t *testing.T) {
	got := GlobalConfigDir("/home/user/.config")
	want := "/home/user/.config/relaunch"
	if got != want {
		t.Errorf("GlobalConfigDir() = %q, want %q", got, want)
	}
}

func TestStateDir(t *testing.T) {
	got := StateDir("/home/user/.local/state")
	want := "/home/user/.local/state/relaunch"
	if got != want {
		t.Errorf("StateDir() = %q, want %q", got, want)
	}
}

func TestLogPath(t *testing.T) {
	got := LogPath("/home/user/.local/state/relaunch")
	want := "/home/user/.local/state/relaunch/logs/relaunch.log"
	if got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}
