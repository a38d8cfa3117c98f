package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Domain errors for record construction
var (
	ErrEmptyName    = errors.New("record name cannot be empty")
	ErrEmptyCommand = errors.New("record command cannot be empty")
)

// Record represents one launchable application discovered from a descriptor.
// The command is stored launch-ready: field-code placeholders are stripped
// before a Record is ever constructed.
type Record struct {
	id      string
	name    string
	command string
	icon    string
}

// NewRecord creates a validated Record. Name and command must be non-empty;
// icon may be empty (no icon reference in the descriptor).
func NewRecord(name, command, icon string) (Record, error) {
	if name == "" {
		return Record{}, ErrEmptyName
	}
	if command == "" {
		return Record{}, ErrEmptyCommand
	}

	return Record{
		id:      uuid.New().String(),
		name:    name,
		command: command,
		icon:    icon,
	}, nil
}

// ID returns the process-unique identifier assigned at construction.
func (r Record) ID() string { return r.id }

// Name returns the display name, localized at parse time when a
// matching Name[locale] variant existed.
func (r Record) Name() string { return r.name }

// Command returns the sanitized, launch-ready command line.
func (r Record) Command() string { return r.command }

// Icon returns the raw icon reference (logical name or path), or "".
func (r Record) Icon() string { return r.icon }

// HasIcon reports whether the descriptor carried an icon reference.
func (r Record) HasIcon() bool { return r.icon != "" }

func (r Record) String() string {
	return fmt.Sprintf("%s (%s)", r.name, r.command)
}
