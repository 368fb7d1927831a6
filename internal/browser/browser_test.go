package browser

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestCommand(t *testing.T) {
	const u = "https://music.apple.com/us/album/1"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{u}},
		{"windows", "cmd", []string{"/c", "start", "", u}},
		{"linux", "xdg-open", []string{u}},
		{"freebsd", "xdg-open", []string{u}},
	}
	for _, tt := range tests {
		name, args := Command(tt.goos, u)
		if name != tt.wantName {
			t.Errorf("Command(%q) name = %q, want %q", tt.goos, name, tt.wantName)
		}
		if !reflect.DeepEqual(args, tt.wantArgs) {
			t.Errorf("Command(%q) args = %v, want %v", tt.goos, args, tt.wantArgs)
		}
	}
}

func TestOpen(t *testing.T) {
	var gotName string
	var gotArgs []string
	o := &SystemOpener{
		GOOS: "darwin",
		run: func(_ context.Context, name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}

	if err := o.Open(context.Background(), "https://itunes.apple.com/us/movie/id1"); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if gotName != "open" {
		t.Errorf("ran %q, want open", gotName)
	}
	if len(gotArgs) != 1 || gotArgs[0] != "https://itunes.apple.com/us/movie/id1" {
		t.Errorf("args = %v", gotArgs)
	}
}

func TestOpenRejectsUnsupportedURL(t *testing.T) {
	called := false
	o := &SystemOpener{run: func(context.Context, string, ...string) error {
		called = true
		return nil
	}}

	for _, u := range []string{"file:///etc/passwd", "javascript:alert(1)", "not a url", "https://"} {
		err := o.Open(context.Background(), u)
		if !errors.Is(err, ErrUnsupportedURL) {
			t.Errorf("Open(%q) error = %v, want ErrUnsupportedURL", u, err)
		}
	}
	if called {
		t.Error("launcher should not run for rejected URLs")
	}
}

func TestOpenLauncherError(t *testing.T) {
	boom := errors.New("xdg-open: not found")
	o := &SystemOpener{
		GOOS: "linux",
		run:  func(context.Context, string, ...string) error { return boom },
	}
	err := o.Open(context.Background(), "https://example.com")
	if !errors.Is(err, boom) {
		t.Errorf("Open() error = %v, want wrapped launcher error", err)
	}
}
