package services

import (
	"fmt"

	"hotel-backend/internal/timeutil"
)

// ID prefixes per entity.
const (
	clientIDPrefix  = "C"
	hotelIDPrefix   = "H"
	paymentIDPrefix = "PAY"
	supplyIDPrefix  = "SUP"
)

// newID mints a timestamp-derived id. Unix nanoseconds keep ids unique for
// the single-writer back-office this serves; there is no cross-process
// coordination.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, timeutil.Now().UnixNano())
}

// newReservationNo derives a reservation number from the creation instant.
func newReservationNo() string {
	return "RSV-" + timeutil.Now().Format("20060102-150405")
}
