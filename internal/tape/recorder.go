package tape

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Recorder collects commands applied interactively so they can be saved
// as a .tape file and replayed
type Recorder struct {
	commands  []Command
	startTime time.Time
}

// NewRecorder creates a new tape recorder
func NewRecorder() *Recorder {
	return &Recorder{startTime: time.Now()}
}

// Record appends cmd. Source positions are dropped since the command did
// not come from a file.
func (r *Recorder) Record(cmd Command) {
	cmd.Line, cmd.Column = 0, 0
	r.commands = append(r.commands, cmd)
}

// Truncate keeps only the first n recorded commands
func (r *Recorder) Truncate(n int) {
	if n < len(r.commands) {
		r.commands = r.commands[:max(0, n)]
	}
}

// GetCommands returns all recorded commands
func (r *Recorder) GetCommands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// CommandCount returns the number of recorded commands
func (r *Recorder) CommandCount() int {
	return len(r.commands)
}

// String returns the tape content as a formatted string
func (r *Recorder) String(header string) string {
	var sb strings.Builder
	if header != "" {
		fmt.Fprintf(&sb, "# %s\n", header)
		fmt.Fprintf(&sb, "# Recorded: %s\n\n", r.startTime.Format(time.RFC3339))
	}
	for _, cmd := range r.commands {
		sb.WriteString(cmd.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteToFile saves the recorded tape to a file
func (r *Recorder) WriteToFile(filename string, header string) error {
	if err := os.WriteFile(filename, []byte(r.String(header)), 0o644); err != nil {
		return fmt.Errorf("failed to write tape: %w", err)
	}
	return nil
}

// Clear clears all recorded commands
func (r *Recorder) Clear() {
	r.commands = nil
	r.startTime = time.Now()
}
