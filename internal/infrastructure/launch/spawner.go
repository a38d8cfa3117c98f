// Package launch spawns application processes.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrEmptyCommand indicates a launch request whose command sanitized down to
// nothing. Unlike parse and icon failures this is surfaced to the user.
var ErrEmptyCommand = errors.New("nothing to launch: command is empty")

// Spawner starts application processes fire-and-forget: the spawn call's
// success is reported, the child's lifetime is not managed afterwards.
type Spawner struct{}

// NewSpawner creates a process spawner.
func NewSpawner() *Spawner {
	return &Spawner{}
}

// Launch implements ports.ProcessLauncher. The command is split on
// whitespace into executable and arguments.
func (s *Spawner) Launch(command string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return ErrEmptyCommand
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", parts[0], err)
	}

	// Reap the child when it exits so it never lingers as a zombie.
	go func() { _ = cmd.Wait() }()

	return nil
}
