package wholesaleorder

import (
	"time"

	"github.com/islasuds/wholesale/internal/service/models/money"
)

// Order is a single entry in a wholesale customer's order history. Orders are
// read-only: they are fetched fresh from the identity provider on every
// request and never stored locally.
type Order struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	OrderNumber       int64       `json:"orderNumber"`
	ProcessedAt       string      `json:"processedAt"`
	FinancialStatus   string      `json:"financialStatus"`
	FulfillmentStatus string      `json:"fulfillmentStatus"`
	CurrentTotalPrice money.Money `json:"currentTotalPrice"`
}

// ProcessedAtDisplay returns the processed timestamp as a long-form date,
// e.g. "January 15, 2026". Unparsable input is returned as-is.
func (o Order) ProcessedAtDisplay() string {
	return FormatDate(o.ProcessedAt)
}

// PageInfo carries the provider's forward-only pagination state.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// Page is one page of order history, newest-processed-first as delivered by
// the identity provider.
type Page struct {
	Orders   []Order  `json:"orders"`
	PageInfo PageInfo `json:"pageInfo"`
}

// EmptyPage is the degraded result served when the order-history query fails:
// no orders and no further pages, never an error.
func EmptyPage() Page {
	return Page{Orders: []Order{}}
}

// FormatDate converts an ISO-8601 timestamp to a long-form date such as
// "January 15, 2026". Unparsable input is returned as-is.
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}

	return t.Format("January 2, 2006")
}
