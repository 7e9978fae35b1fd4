package listorders

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/islasuds/wholesale/internal/service/models/wholesaleorder"
	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
	"github.com/islasuds/wholesale/internal/session"
)

// service is an interface for the service layer.
type service interface {
	ListOrders(
		ctx context.Context,
		sess portalsvc.Session,
		after string,
	) (wholesaleorder.Page, *portalsvc.Redirect)
}

type listOrdersRequest struct {
	After string `schema:"after,omitempty"`
}

// orderView is one order as the rendering surface consumes it: raw fields
// plus pre-formatted money and date strings.
type orderView struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	OrderNumber        int64  `json:"orderNumber"`
	ProcessedAt        string `json:"processedAt"`
	ProcessedAtDisplay string `json:"processedAtDisplay"`
	FinancialStatus    string `json:"financialStatus"`
	FulfillmentStatus  string `json:"fulfillmentStatus"`
	Total              string `json:"total"`
	TotalLabel         string `json:"totalLabel"`
}

type listOrdersResponse struct {
	Orders   []orderView             `json:"orders"`
	PageInfo wholesaleorder.PageInfo `json:"pageInfo"`
}

// Handle serves one page of the wholesale order history.
func Handle(w http.ResponseWriter, r *http.Request, service service, sessions *session.Store) {
	decoder := schema.NewDecoder()
	query := &listOrdersRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request", "error", err)

		return
	}

	sess := sessions.Load(r.Context(), r)

	page, redirect := service.ListOrders(r.Context(), sess, query.After)
	if redirect != nil {
		http.Redirect(w, r, redirect.Location, http.StatusFound)

		return
	}

	response := listOrdersResponse{
		Orders:   make([]orderView, 0, len(page.Orders)),
		PageInfo: page.PageInfo,
	}
	for _, order := range page.Orders {
		response.Orders = append(response.Orders, orderView{
			ID:                 order.ID,
			Name:               order.Name,
			OrderNumber:        order.OrderNumber,
			ProcessedAt:        order.ProcessedAt,
			ProcessedAtDisplay: order.ProcessedAtDisplay(),
			FinancialStatus:    order.FinancialStatus,
			FulfillmentStatus:  order.FulfillmentStatus,
			Total:              order.CurrentTotalPrice.Format(),
			TotalLabel:         order.CurrentTotalPrice.Label(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Error sending response for list orders", "error", err)
	}
}
