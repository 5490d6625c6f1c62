package journal

import (
	"context"
	"fmt"
	"io"
)

// ConsoleNotifier prints one-line progress updates.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier writes notifications to out.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify prints the message tagged with a short voyage id.
func (n *ConsoleNotifier) Notify(ctx context.Context, voyageID, message string) error {
	short := voyageID
	if len(short) > 8 {
		short = short[:8]
	}
	_, err := fmt.Fprintf(n.out, "[%s] %s\n", short, message)
	return err
}
