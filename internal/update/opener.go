package update

import (
	"os/exec"
	"runtime"
)

// URLOpener hands a link to the host, usually the default browser.
type URLOpener interface {
	Open(url string) error
}

type NoopURLOpener struct{}

func (NoopURLOpener) Open(string) error { return nil }

type ExecURLOpener struct{}

func (ExecURLOpener) Open(url string) error {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", url).Run()
	case "darwin":
		return exec.Command("open", url).Run()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Run()
	default:
		return nil
	}
}
