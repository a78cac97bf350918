package interfaces

import "market-indexes/src/models"

// -----------------------------------------------------------------------------
// INotifier fans out freshly computed results to subscribed listeners.
// Publishing is best effort and must never block the caller.
// -----------------------------------------------------------------------------

type INotifier interface {
	Publish(msg models.MUpdateMessage)
}

// -----------------------------------------------------------------------------
// IDataExchanger is a server that both serves queries and notifies listeners.
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	INotifier

	// -----------------------------------------------------------------------------
	// Start the server (blocks until stopped)
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
