package images

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestExtForMIME(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
		{"application/octet-stream", ".jpg"},
		{"", ".jpg"},
	}
	for _, tc := range cases {
		if got := ExtForMIME(tc.mime); got != tc.want {
			t.Errorf("ExtForMIME(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}

func TestIsRecoverable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", &googleapi.Error{Code: 429}, true},
		{"server error", &googleapi.Error{Code: 503}, true},
		{"bad request", &googleapi.Error{Code: 400}, false},
		{"not found", &googleapi.Error{Code: 404}, false},
		{"wrapped rate limit", fmt.Errorf("generate: %w", &googleapi.Error{Code: 500}), true},
		{"plain error", errors.New("boom"), false},
	}
	for _, tc := range cases {
		if got := IsRecoverable(tc.err); got != tc.want {
			t.Errorf("%s: IsRecoverable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanvasSize(t *testing.T) {
	cases := []struct {
		w, h         int
		wantW, wantH int
	}{
		{1920, 1080, 1920, 1080}, // already 16:9
		{1024, 1024, 1820, 1024}, // square widens
		{2000, 500, 2000, 1125},  // wide gains height
		{600, 1200, 2133, 1200},  // tall gains width
	}
	for _, tc := range cases {
		gotW, gotH := CanvasSize(tc.w, tc.h)
		if gotW != tc.wantW || gotH != tc.wantH {
			t.Errorf("CanvasSize(%d, %d) = (%d, %d), want (%d, %d)",
				tc.w, tc.h, gotW, gotH, tc.wantW, tc.wantH)
		}
	}
}
