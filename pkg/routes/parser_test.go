package routes

import (
	"errors"
	"testing"
)

func TestParseFileNameClassification(t *testing.T) {
	tests := []struct {
		key        string
		wantName   string
		wantDir    string
		wantPath   string
		wantLayout bool
		wantAPI    bool
	}{
		{"./index.tsx", "index", "", "index", false, false},
		{"./about.js", "about", "", "about", false, false},
		{"./_layout.tsx", "_layout", "", "_layout", true, false},
		{"./profile/_layout.jsx", "_layout", "profile", "profile/_layout", true, false},
		{"./profile/[user].tsx", "[user]", "profile", "profile/[user]", false, false},
		{"./docs/[...path].ts", "[...path]", "docs", "docs/[...path]", false, false},
		{"./feed+api.ts", "feed+api", "", "feed+api", false, true},
		{"./v1/users+api.tsx", "users+api", "v1", "v1/users+api", false, true},
		{"./(tabs)/home.tsx", "home", "(tabs)", "(tabs)/home", false, false},
		{"./+not-found.tsx", "+not-found", "", "+not-found", false, false},
		{"no-dot-prefix.tsx", "no-dot-prefix", "", "no-dot-prefix", false, false},
	}

	for _, tt := range tests {
		meta, err := parseFileName(tt.key, Options{})
		if err != nil {
			t.Errorf("parseFileName(%q) error: %v", tt.key, err)
			continue
		}
		if meta.name != tt.wantName {
			t.Errorf("parseFileName(%q).name = %q, want %q", tt.key, meta.name, tt.wantName)
		}
		if meta.dirname != tt.wantDir {
			t.Errorf("parseFileName(%q).dirname = %q, want %q", tt.key, meta.dirname, tt.wantDir)
		}
		if meta.filepathWithoutExtensions != tt.wantPath {
			t.Errorf("parseFileName(%q).filepathWithoutExtensions = %q, want %q", tt.key, meta.filepathWithoutExtensions, tt.wantPath)
		}
		if meta.isLayout != tt.wantLayout {
			t.Errorf("parseFileName(%q).isLayout = %v, want %v", tt.key, meta.isLayout, tt.wantLayout)
		}
		if meta.isAPI != tt.wantAPI {
			t.Errorf("parseFileName(%q).isAPI = %v, want %v", tt.key, meta.isAPI, tt.wantAPI)
		}
		if meta.specificity != RankGeneric {
			t.Errorf("parseFileName(%q).specificity = %d, want RankGeneric", tt.key, meta.specificity)
		}
	}
}

func TestParseFileNamePlatformRanking(t *testing.T) {
	opts := Options{PlatformExtensions: true, Platform: "ios"}

	tests := []struct {
		key      string
		want     Rank
		wantName string
	}{
		{"./index.tsx", RankGeneric, "index"},
		{"./index.ios.tsx", RankExact, "index"},
		{"./index.native.tsx", RankNative, "index"},
		{"./index.android.tsx", RankSkip, "index"},
		{"./index.windows.tsx", RankSkip, "index"},
		{"./_layout.ios.tsx", RankExact, "_layout"},
		// Non-platform dot segments are part of the route name.
		{"./index.config.tsx", RankGeneric, "index.config"},
	}

	for _, tt := range tests {
		meta, err := parseFileName(tt.key, opts)
		if err != nil {
			t.Errorf("parseFileName(%q) error: %v", tt.key, err)
			continue
		}
		if meta.specificity != tt.want {
			t.Errorf("parseFileName(%q).specificity = %d, want %d", tt.key, meta.specificity, tt.want)
		}
		if meta.specificity != RankSkip && meta.name != tt.wantName {
			t.Errorf("parseFileName(%q).name = %q, want %q", tt.key, meta.name, tt.wantName)
		}
	}
}

func TestParseFileNamePlatformWeb(t *testing.T) {
	opts := Options{PlatformExtensions: true, Platform: "web"}

	// .native never applies on web.
	meta, err := parseFileName("./index.native.tsx", opts)
	if err != nil {
		t.Fatalf("parseFileName error: %v", err)
	}
	if meta.specificity != RankSkip {
		t.Errorf("specificity = %d, want RankSkip", meta.specificity)
	}

	meta, err = parseFileName("./index.web.tsx", opts)
	if err != nil {
		t.Fatalf("parseFileName error: %v", err)
	}
	if meta.specificity != RankExact {
		t.Errorf("specificity = %d, want RankExact", meta.specificity)
	}
}

func TestParseFileNamePlatformExtensionsDisabled(t *testing.T) {
	_, err := parseFileName("./index.ios.tsx", Options{})
	var rerr *ResolveError
	if !errors.As(err, &rerr) {
		t.Fatalf("parseFileName error = %v, want *ResolveError", err)
	}
	if rerr.Kind != ErrorUnexpectedPlatform {
		t.Errorf("Kind = %q, want %q", rerr.Kind, ErrorUnexpectedPlatform)
	}
}

func TestParseFileNameGroupNamedRoute(t *testing.T) {
	for _, key := range []string{"./(a).tsx", "./nested/(home).tsx", "./(a,b).tsx"} {
		_, err := parseFileName(key, Options{})
		var rerr *ResolveError
		if !errors.As(err, &rerr) {
			t.Fatalf("parseFileName(%q) error = %v, want *ResolveError", key, err)
		}
		if rerr.Kind != ErrorInvalidRouteName {
			t.Errorf("parseFileName(%q).Kind = %q, want %q", key, rerr.Kind, ErrorInvalidRouteName)
		}
	}
}
