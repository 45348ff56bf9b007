package ports

// ExpiryNotifier receives the user-facing side effects of a revoked
// session. Both calls are fire-and-forget; the pipeline never consumes a
// return value and must never call back into the API from either.
type ExpiryNotifier interface {
	NotifySessionExpired()
	RedirectToLogin()
}
