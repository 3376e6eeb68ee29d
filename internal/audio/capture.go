package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/savorly/savorly-client/internal/model"
)

var _ model.AudioCapturer = (*Capturer)(nil)

// Capturer acquires the microphone by spawning a capture process (arecord by
// default) writing WAV to stdout. Everything above it depends only on the
// model interfaces, so tests substitute a fake.
type Capturer struct {
	command    string
	sampleRate int
}

// NewCapturer creates a capturer using the given capture command.
func NewCapturer(command string, sampleRate int) *Capturer {
	return &Capturer{command: command, sampleRate: sampleRate}
}

// Open starts the capture process. A spawn failure means the device could
// not be acquired.
func (c *Capturer) Open(ctx context.Context) (model.AudioCapture, error) {
	cmd := exec.CommandContext(ctx, c.command,
		"-f", "S16_LE",
		"-r", strconv.Itoa(c.sampleRate),
		"-c", "1",
		"-t", "wav",
		"-q",
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start capture process: %w", err)
	}

	return &capture{cmd: cmd, out: &out}, nil
}

type capture struct {
	cmd *exec.Cmd
	out *bytes.Buffer
}

// Stop interrupts the capture process, releases the device and returns the
// captured WAV bytes.
func (c *capture) Stop() ([]byte, error) {
	if err := c.cmd.Process.Signal(syscall.SIGINT); err != nil {
		return nil, fmt.Errorf("failed to signal capture process: %w", err)
	}

	err := c.cmd.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to wait for capture process: %w", err)
	}

	return c.out.Bytes(), nil
}
