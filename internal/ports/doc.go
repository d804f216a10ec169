// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// The Store port is implemented by the persistence adapter, and client ports
// (Notifier, TokenService) by outbound adapters and platform packages; both
// are called by the application layer.
package ports
