//go:build e2e

package availability_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"

	"github.com/google/uuid"
)

// postBooking is safe to call from a goroutine.
func (s *availabilitySuite) postBooking(token string, body []byte) *nethttptest.ResponseRecorder {
	req := nethttptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	w := nethttptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}
