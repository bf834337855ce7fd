package notifier

import "fmt"

// DryRunSender prints what would be sent without posting anything.
type DryRunSender struct{}

// NewDryRunSender creates a dry-run sender.
func NewDryRunSender() *DryRunSender {
	return &DryRunSender{}
}

// Send prints the message to stdout.
func (s *DryRunSender) Send(text string) error {
	fmt.Println("--- Digest (dry run) ---")
	fmt.Println(text)
	fmt.Printf("(Length: %d characters)\n", len(text))
	return nil
}
