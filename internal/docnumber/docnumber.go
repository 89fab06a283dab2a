// Package docnumber formats human-readable document numbers.
package docnumber

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	Quote         Kind = "Q"
	WorkOrder     Kind = "WO"
	PurchaseOrder Kind = "PO"
	ChangeOrder   Kind = "CO"
)

// Format returns {kind}-{YYYYMMDD}-{first six hex chars of id}.
func Format(kind Kind, date time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", kind, date.Format("20060102"), suffix)
}

func New(kind Kind, now time.Time) string {
	return Format(kind, now, uuid.New())
}
