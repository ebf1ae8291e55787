package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.BrowserOpener
type Opener struct {
	goos string
}

// NewOpener creates a new browser opener for the running platform
func NewOpener() *Opener {
	return &Opener{goos: runtime.GOOS}
}

// Open opens a file path or URL in the default browser
func (o *Opener) Open(target string) error {
	cmd, err := o.Command(target)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// BuildURL turns a local path into a file:// URL; http(s) URLs pass through
func BuildURL(target string) (string, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target, nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// Command returns the platform command that opens target
func (o *Opener) Command(target string) (*exec.Cmd, error) {
	uri, err := BuildURL(target)
	if err != nil {
		return nil, err
	}

	switch o.goos {
	case "darwin":
		return exec.Command("open", uri), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", uri), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", uri), nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}
