package server

// Server is the lifecycle contract for the HTTP front of the API.
//
// RunServer blocks until the process receives a termination signal or the
// listener fails; Shutdown drains in-flight requests before returning.
type Server interface {
	RunServer()
	Shutdown()
}
