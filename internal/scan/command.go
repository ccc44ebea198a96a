// Package scan finds chaptered GoPro recordings on disk and drives the
// external GPS extraction tool that turns them into geojson files.
package scan

import "os/exec"

// CommandExecutor runs one external command. The abstraction exists so the
// extractor can be tested without invoking the real tool.
type CommandExecutor interface {
	// Run executes the command and returns the combined output (stdout+stderr).
	Run() ([]byte, error)
}

// CommandBuilder builds executable commands.
type CommandBuilder interface {
	BuildCommand(name string, args ...string) CommandExecutor
}

// RealCommandExecutor wraps exec.Cmd to implement CommandExecutor.
type RealCommandExecutor struct {
	cmd *exec.Cmd
}

func (r *RealCommandExecutor) Run() ([]byte, error) {
	return r.cmd.CombinedOutput()
}

// RealCommandBuilder implements CommandBuilder using exec.Command.
type RealCommandBuilder struct{}

func (b *RealCommandBuilder) BuildCommand(name string, args ...string) CommandExecutor {
	return &RealCommandExecutor{cmd: exec.Command(name, args...)}
}

// MockCommandExecutor implements CommandExecutor for testing.
type MockCommandExecutor struct {
	Output    []byte
	Err       error
	RunCalled bool
}

func (m *MockCommandExecutor) Run() ([]byte, error) {
	m.RunCalled = true
	return m.Output, m.Err
}

// MockCommandBuilder records built commands and hands out configured
// executors.
type MockCommandBuilder struct {
	Commands []MockBuiltCommand

	// ExecutorFactory creates executors per command. When nil, every
	// command gets a fresh default MockCommandExecutor.
	ExecutorFactory func(name string, args []string) *MockCommandExecutor
}

// MockBuiltCommand records one built command.
type MockBuiltCommand struct {
	Name string
	Args []string
}

func (b *MockCommandBuilder) BuildCommand(name string, args ...string) CommandExecutor {
	b.Commands = append(b.Commands, MockBuiltCommand{Name: name, Args: args})
	if b.ExecutorFactory != nil {
		return b.ExecutorFactory(name, args)
	}
	return &MockCommandExecutor{}
}

// LastCommand returns the most recently built command, or nil if none.
func (b *MockCommandBuilder) LastCommand() *MockBuiltCommand {
	if len(b.Commands) == 0 {
		return nil
	}
	return &b.Commands[len(b.Commands)-1]
}
