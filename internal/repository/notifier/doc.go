// Package notifier posts override notifications to a chat bot endpoint
// that accepts Telegram sendMessage style JSON bodies.
package notifier
