// Package system reads and writes the desktop clipboard by running the
// platform's clipboard tools.
package system

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/hpungsan/bookmark/internal/config"
	"github.com/hpungsan/bookmark/internal/logging"
)

// commandTimeout bounds a single clipboard tool invocation. Some tools
// (xclip without a running X server) can hang otherwise.
const commandTimeout = 5 * time.Second

// writeWaitDelay bounds how long a write waits for the tool's stderr to
// close after the tool exits. xclip and wl-copy fork a child that keeps
// serving the clipboard and holds the inherited pipe open.
const writeWaitDelay = time.Second

// Commands holds the argv of each clipboard operation. A nil command
// means the operation is unavailable on this platform.
type Commands struct {
	ClipboardRead  []string
	SelectionRead  []string
	ClipboardWrite []string
}

// Detect picks clipboard tools for the running platform, then applies any
// overrides from cfg.
func Detect(cfg *config.Config) *Commands {
	c := defaultCommands(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "")
	if cfg == nil {
		return c
	}
	if len(cfg.ClipboardRead) > 0 {
		c.ClipboardRead = cfg.ClipboardRead
	}
	if len(cfg.SelectionRead) > 0 {
		c.SelectionRead = cfg.SelectionRead
	}
	if len(cfg.ClipboardWrite) > 0 {
		c.ClipboardWrite = cfg.ClipboardWrite
	}
	return c
}

// defaultCommands returns the stock tools for goos. macOS and Windows
// have no primary selection.
func defaultCommands(goos string, wayland bool) *Commands {
	switch goos {
	case "darwin":
		return &Commands{
			ClipboardRead:  []string{"pbpaste"},
			ClipboardWrite: []string{"pbcopy"},
		}
	case "windows":
		return &Commands{
			ClipboardRead:  []string{"powershell.exe", "-NoProfile", "-Command", "Get-Clipboard -Raw"},
			ClipboardWrite: []string{"clip.exe"},
		}
	default:
		if wayland {
			return &Commands{
				ClipboardRead:  []string{"wl-paste", "--no-newline"},
				SelectionRead:  []string{"wl-paste", "--no-newline", "--primary"},
				ClipboardWrite: []string{"wl-copy"},
			}
		}
		return &Commands{
			ClipboardRead:  []string{"xclip", "-selection", "clipboard", "-out"},
			SelectionRead:  []string{"xclip", "-selection", "primary", "-out"},
			ClipboardWrite: []string{"xclip", "-selection", "clipboard", "-in"},
		}
	}
}

// Clipboard returns the clipboard text. ok is false when the clipboard is
// empty or cannot be read.
func (c *Commands) Clipboard(ctx context.Context) (string, bool) {
	return c.read(ctx, "clipboard", c.ClipboardRead)
}

// Selection returns the primary selection text. ok is false when nothing
// is selected or the platform has no primary selection.
func (c *Commands) Selection(ctx context.Context) (string, bool) {
	return c.read(ctx, "selection", c.SelectionRead)
}

// WriteClipboard replaces the clipboard contents with text.
func (c *Commands) WriteClipboard(ctx context.Context, text string) error {
	if len(c.ClipboardWrite) == 0 {
		return errUnsupported("clipboard write")
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.ClipboardWrite[0], c.ClipboardWrite[1:]...)
	cmd.Stdin = bytes.NewBufferString(text)
	cmd.WaitDelay = writeWaitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		// The tool exited cleanly and left a child owning the clipboard.
		logging.Debug("clipboard write left a background owner", "command", c.ClipboardWrite[0])
		return nil
	}
	if err != nil {
		logging.Debug("clipboard write failed", "command", c.ClipboardWrite[0], "error", err, "stderr", stderr.String())
		return err
	}
	return nil
}

func (c *Commands) read(ctx context.Context, source string, argv []string) (string, bool) {
	if len(argv) == 0 {
		logging.Debug("no command configured", "source", source)
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		// Empty selections make xclip and wl-paste exit non-zero; that is
		// the normal "nothing there" case, not a failure worth surfacing.
		logging.Debug("read failed", "source", source, "command", argv[0], "error", err, "stderr", stderr.String())
		return "", false
	}
	if len(out) == 0 {
		return "", false
	}
	return string(out), true
}
