package files

import (
	"path/filepath"
	"testing"
)

func TestResolveBasePath(t *testing.T) {
	home := t.TempDir()

	tests := []struct {
		name     string
		override string
		want     string
	}{
		{name: "default under home", want: filepath.Join(home, DefaultDirName)},
		{name: "blank override ignored", override: "   ", want: filepath.Join(home, DefaultDirName)},
		{name: "absolute override", override: "/srv/journal", want: "/srv/journal"},
		{name: "tilde override", override: "~/notes/daily", want: filepath.Join(home, "notes", "daily")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			t.Setenv(HomeEnv, tt.override)

			got, err := ResolveBasePath()
			if err != nil {
				t.Fatalf("ResolveBasePath() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolveBasePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := map[string]string{
		"~":                home,
		"~/logs":           filepath.Join(home, "logs"),
		"/var/log/journal": "/var/log/journal",
		"relative/dir":     "relative/dir",
		"~other/dir":       "~other/dir",
	}
	for input, want := range cases {
		got, err := ExpandHome(input)
		if err != nil {
			t.Fatalf("ExpandHome(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("ExpandHome(%q) = %q, want %q", input, got, want)
		}
	}
}
