package ports

import "os/exec"

// EditorOpener builds the command that opens a file in an external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for opening a file in the editor.
	// The TUI hands it to bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
