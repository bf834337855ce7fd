package notifier

// Sender posts a text message to the outbound notification channel.
type Sender interface {
	Send(text string) error
}
