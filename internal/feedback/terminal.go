package feedback

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/five82/jaap/internal/config"
)

const soundCmdTimeout = 5 * time.Second

// Terminal plays cues from a terminal session. The cycle cue rings the
// terminal bell unless a player command is configured; tap sounds need a
// command. Terminals cannot vibrate.
type Terminal struct {
	Out           io.Writer
	Bell          bool
	TapSoundCmd   string
	CycleSoundCmd string

	run func(ctx context.Context, argv []string) error
}

// NewTerminal builds a terminal channel from config, ringing on os.Stdout.
func NewTerminal(cfg config.Feedback) *Terminal {
	return &Terminal{
		Out:           os.Stdout,
		Bell:          cfg.Bell,
		TapSoundCmd:   cfg.TapSoundCmd,
		CycleSoundCmd: cfg.CycleSoundCmd,
	}
}

func (t *Terminal) Vibrate(int) error {
	return ErrUnsupported
}

func (t *Terminal) PlayTapSound() error {
	if strings.TrimSpace(t.TapSoundCmd) == "" {
		return ErrUnsupported
	}
	return t.exec(t.TapSoundCmd)
}

func (t *Terminal) PlayCycleCompleteSound() error {
	if strings.TrimSpace(t.CycleSoundCmd) != "" {
		return t.exec(t.CycleSoundCmd)
	}
	if !t.Bell {
		return ErrUnsupported
	}
	out := t.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.WriteString(out, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

func (t *Terminal) exec(command string) error {
	argv := strings.Fields(command)
	ctx, cancel := context.WithTimeout(context.Background(), soundCmdTimeout)
	defer cancel()

	run := t.run
	if run == nil {
		run = runCommand
	}
	if err := run(ctx, argv); err != nil {
		return fmt.Errorf("play %q: %w", argv[0], err)
	}
	return nil
}

func runCommand(ctx context.Context, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
