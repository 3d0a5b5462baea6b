// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// FromRequest checks the configured proxy headers in order and falls back to
// RemoteAddr. No header is read unless it is configured. Only well-formed IP
// addresses are returned, in canonical form.
//
//	r.Use(clientip.Middleware("CF-Connecting-IP"))
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		ip := clientip.FromContext(r.Context())
//	}
//
// Headers are client controlled unless a trusted proxy overwrites them.
// Pass only the headers your proxy sets.
package clientip
