// Package invoice generates human-facing invoice numbers for committed sales.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Generate returns an invoice number of the form INV-YYMMDD-HHMMSS-xxxx.
// The date and time keep the number readable on receipts; the random suffix
// makes two commits within the same second produce distinct numbers, so the
// unique index on invoice numbers never rejects a legitimate sale.
func Generate(at time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("INV-%s-%s-%s", at.Format("060102"), at.Format("150405"), suffix)
}
