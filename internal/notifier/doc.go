// Package notifier reports newly recorded jobs to an outbound text channel.
//
// The digest lists vacant shifts first so that unfilled cover is the first
// thing a reader sees. Sending is advisory: a failed send is logged and
// never fails the run.
package notifier
