package http

import (
	"net/http"
)

// hashHeader carries the hex HMAC-SHA256 of the uncompressed response body.
const hashHeader = "HashSHA256"

// withResponseSignature signs every response body with the configured hash
// key. When no key is configured the middleware is a pass-through.
func (h *Handler) withResponseSignature(next http.Handler) http.Handler {
	if h.signer == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{ResponseWriter: w}

		next.ServeHTTP(bw, r)

		w.Header().Set(hashHeader, h.signer.Sign(bw.body.Bytes()))
		if err := bw.flush(); err != nil {
			h.logger.Err(err).Str("func", "*Handler.withResponseSignature").Msg("failed to write signed response")
		}
	})
}
