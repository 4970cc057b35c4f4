// Package editorcmd resolves the user's preferred text editor into an
// invocable command. The editor string is read from the VISUAL and EDITOR
// environment variables, split with shell quoting rules, and the target
// file path is appended as the final argument. The package never spawns a
// process itself; callers hand the result to os/exec (or see
// internal/launcher for the CLI's runner).
package editorcmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrNoEditor is returned when no editor command is configured anywhere.
var ErrNoEditor = errors.New("no editor configured: set VISUAL or EDITOR")

// SyntaxError is returned when the selected editor string cannot be split
// into shell words (e.g., an unterminated quote).
type SyntaxError struct {
	Input string
	Err   error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid editor command %q: %v", e.Input, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Command is a resolved editor invocation. Program is the executable name
// or path; Args always ends with the file path passed to Resolve, appended
// verbatim.
type Command struct {
	Program string
	Args    []string
}

// ExecCmd builds an exec.Cmd for the command. No stdio is attached; the
// caller decides how the editor process is wired up and run.
func (c Command) ExecCmd() *exec.Cmd {
	return exec.Command(c.Program, c.Args...)
}

// String returns the command as a single shell-quoted line.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Program}, c.Args...)...)
}

// Resolver resolves an editor command. The zero value reads VISUAL then
// EDITOR from the process environment, which is the common case.
type Resolver struct {
	// Priority takes precedence over the environment. Useful for passing
	// through an app-specific configured editor.
	Priority string
	// Default is used when neither Priority nor the environment yields a
	// command.
	Default string
	// Lookup overrides the environment source. nil means os.LookupEnv.
	// Tests inject a map-backed lookup here instead of mutating the real
	// process environment.
	Lookup func(key string) (string, bool)
}

// Resolve picks the editor command string (Priority, then $VISUAL, then
// $EDITOR, then Default; blank values fall through), splits it into shell
// words, and appends path as the final argument. It fails with ErrNoEditor
// when every source is blank and with *SyntaxError when the selected
// string has malformed quoting.
func (r *Resolver) Resolve(path string) (Command, error) {
	editor, ok := r.selectCommand()
	if !ok {
		return Command{}, ErrNoEditor
	}
	words, err := shellquote.Split(editor)
	if err != nil {
		return Command{}, &SyntaxError{Input: editor, Err: err}
	}
	if len(words) == 0 {
		// A candidate that splits to nothing is as good as unset.
		return Command{}, ErrNoEditor
	}
	return Command{
		Program: words[0],
		Args:    append(words[1:], path),
	}, nil
}

// selectCommand returns the first non-blank candidate. Whitespace-only
// values are treated the same as unset, so a blank VISUAL still falls
// through to EDITOR.
func (r *Resolver) selectCommand() (string, bool) {
	if strings.TrimSpace(r.Priority) != "" {
		return r.Priority, true
	}
	lookup := r.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	if strings.TrimSpace(r.Default) != "" {
		return r.Default, true
	}
	return "", false
}

// Resolve resolves path with a zero Resolver: $VISUAL, then $EDITOR.
func Resolve(path string) (Command, error) {
	return (&Resolver{}).Resolve(path)
}
