package interfaces

import (
	"context"

	"market-indexes/src/models"
)

// -----------------------------------------------------------------------------
// INetworkManager defines the contract for single-attempt outbound HTTP calls.
// -----------------------------------------------------------------------------

//go:generate mockgen -package=vietstock_test -destination=../data_source/vietstock/mock_network_manager_test.go -source=network_manager.go INetworkManager
type INetworkManager interface {

	// -----------------------------------------------------------------------------

	// GetText performs a GET request and returns the body as text.
	// Non-2xx responses are reported as errors.
	GetText(ctx context.Context, url string, headers map[string]string) (string, error)

	// -----------------------------------------------------------------------------

	// Fetch performs an arbitrary request and returns status, headers, cookies
	// and body. Non-2xx responses are not errors.
	Fetch(ctx context.Context, req models.MFetchRequest) (*models.MFetchResponse, error)
}
