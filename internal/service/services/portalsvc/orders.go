package portalsvc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/islasuds/wholesale/internal/service/models/money"
	"github.com/islasuds/wholesale/internal/service/models/wholesaleorder"
)

// ordersPageSize caps every order-history query. Partner order histories can
// be large; the adapter never requests an unbounded page.
const ordersPageSize = 10

const ordersDocument = `query WholesaleOrders($first: Int!, $after: String) {
  customer {
    orders(first: $first, after: $after, sortKey: PROCESSED_AT, reverse: true) {
      edges {
        node {
          id
          name
          number
          processedAt
          financialStatus
          fulfillmentStatus
          totalPrice {
            amount
            currencyCode
          }
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

// Wire shapes for the orders query. Every nested level is a pointer so a
// malformed response degrades to an empty page instead of a nil dereference.
type ordersData struct {
	Customer *struct {
		Orders *struct {
			Edges []struct {
				Node *orderNode `json:"node"`
			} `json:"edges"`
			PageInfo *struct {
				HasNextPage bool    `json:"hasNextPage"`
				EndCursor   *string `json:"endCursor"`
			} `json:"pageInfo"`
		} `json:"orders"`
	} `json:"customer"`
}

type orderNode struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Number            int64        `json:"number"`
	ProcessedAt       string       `json:"processedAt"`
	FinancialStatus   string       `json:"financialStatus"`
	FulfillmentStatus string       `json:"fulfillmentStatus"`
	TotalPrice        *money.Money `json:"totalPrice"`
}

// ListOrders fetches one page of the customer's order history, newest
// processed first. Pagination is cursor-based and forward-only: pass the last
// page's end cursor as after, or "" for the first page.
//
// Order history is non-critical data: any provider failure or unexpected
// response shape yields an empty page, never an error to the caller.
func (s *PortalService) ListOrders(
	ctx context.Context,
	sess Session,
	after string,
) (wholesaleorder.Page, *Redirect) {
	if _, redirect := s.RequireCustomer(sess); redirect != nil {
		return wholesaleorder.EmptyPage(), redirect
	}

	variables := map[string]any{"first": ordersPageSize}
	if after != "" {
		variables["after"] = after
	}

	data, err := s.identity.Query(ctx, ordersDocument, variables)
	if err != nil {
		slog.Warn("order history query failed, serving empty page", "error", err)

		return wholesaleorder.EmptyPage(), nil
	}

	var payload ordersData
	if err := json.Unmarshal(data, &payload); err != nil {
		slog.Warn("order history response did not decode, serving empty page", "error", err)

		return wholesaleorder.EmptyPage(), nil
	}
	if payload.Customer == nil || payload.Customer.Orders == nil {
		slog.Warn("order history response missing customer orders, serving empty page")

		return wholesaleorder.EmptyPage(), nil
	}

	page := wholesaleorder.EmptyPage()
	for _, edge := range payload.Customer.Orders.Edges {
		if edge.Node == nil {
			continue
		}

		order := wholesaleorder.Order{
			ID:                edge.Node.ID,
			Name:              edge.Node.Name,
			OrderNumber:       edge.Node.Number,
			ProcessedAt:       edge.Node.ProcessedAt,
			FinancialStatus:   edge.Node.FinancialStatus,
			FulfillmentStatus: edge.Node.FulfillmentStatus,
		}
		if edge.Node.TotalPrice != nil {
			order.CurrentTotalPrice = *edge.Node.TotalPrice
		}
		page.Orders = append(page.Orders, order)
	}

	if info := payload.Customer.Orders.PageInfo; info != nil {
		page.PageInfo.HasNextPage = info.HasNextPage
		if info.EndCursor != nil {
			page.PageInfo.EndCursor = *info.EndCursor
		}
	}

	return page, nil
}
