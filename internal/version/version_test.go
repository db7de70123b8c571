package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestApplyBuildInfo(t *testing.T) {
	tests := []struct {
		name        string
		info        debug.BuildInfo
		wantVersion string
		wantCommit  string
	}{
		{
			name: "tagged module",
			info: debug.BuildInfo{
				GoVersion: "go1.24.0",
				Main:      debug.Module{Version: "v1.4.0"},
			},
			wantVersion: "v1.4.0",
			wantCommit:  "",
		},
		{
			name: "dirty checkout",
			info: debug.BuildInfo{
				Main: debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
					{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
				},
			},
			wantVersion: "dev-20260301",
			wantCommit:  "0123456-dirty",
		},
		{
			name: "short revision",
			info: debug.BuildInfo{
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			},
			wantVersion: "",
			wantCommit:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, GoVersion = "", "", ""
			applyBuildInfo(&tt.info)

			if Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", Version, tt.wantVersion)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
		})
	}
}

func TestApplyBuildInfo_KeepsLdflags(t *testing.T) {
	Version, Commit = "v9.9.9", "feedbee"
	applyBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789"}},
	})
	if Version != "v9.9.9" || Commit != "feedbee" {
		t.Errorf("got %s/%s, want the ldflags values", Version, Commit)
	}
}

func TestString(t *testing.T) {
	Version, Commit, GoVersion = "v1.0.0", "abc1234", "go1.24.0"
	got := String("netscen-cfg")
	if !strings.HasPrefix(got, "netscen-cfg v1.0.0 (commit: abc1234)") || !strings.HasSuffix(got, "go1.24.0") {
		t.Errorf("String() = %q", got)
	}
}
