// Package browser opens URLs in the user's default browser.
package browser

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/gndm/itunesSearch/internal/logging"
)

// Operating systems with a dedicated launcher.
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Launcher commands.
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
)

// ErrUnsupportedURL is returned for anything but absolute http(s) URLs.
var ErrUnsupportedURL = errors.New("only http and https URLs can be opened")

// Opener defines the interface for launching a URL.
type Opener interface {
	Open(ctx context.Context, rawURL string) error
}

// SystemOpener implements Opener with the platform launcher command.
type SystemOpener struct {
	// GOOS overrides runtime.GOOS when set.
	GOOS string
	// run executes the command; nil means exec.CommandContext(...).Run.
	run func(ctx context.Context, name string, args ...string) error
}

// NewOpener creates a SystemOpener for the running platform.
func NewOpener() *SystemOpener {
	return &SystemOpener{}
}

// Open launches rawURL. The launcher returns once the browser has been
// handed the URL, not when the page is closed.
func (o *SystemOpener) Open(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}

	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	name, args := Command(goos, u.String())

	run := o.run
	if run == nil {
		run = func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		}
	}

	logging.Debug().Str("cmd", name).Strs("args", args).Msg("[browser] launching")
	if err := run(ctx, name, args...); err != nil {
		logging.Warn().Err(err).Str("url", rawURL).Msg("[browser] launch failed")
		return fmt.Errorf("opening %s with %s: %w", rawURL, name, err)
	}
	return nil
}

// Command returns the launcher invocation for goos.
func Command(goos, rawURL string) (string, []string) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{rawURL}
	case OSWindows:
		// The empty argument is the window title consumed by "start".
		return CmdCommand, []string{"/c", "start", "", rawURL}
	default:
		return XDGOpenCommand, []string{rawURL}
	}
}
