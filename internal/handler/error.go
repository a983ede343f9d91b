package handler

// Error messages surfaced to the client. Upstream failure detail stays in
// the server log.
const (
	ErrTimeout  = "request timed out"
	ErrUpstream = "failed to load holder data"
)
