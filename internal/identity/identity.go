package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Client talks to the external customer-account service. It exposes the two
// operations the portal needs: a GraphQL query and a logout call.
type Client struct {
	http *resty.Client
}

// NewClient creates an identity provider client. The token authenticates the
// storefront against the customer-account API; it may be empty in tests.
func NewClient(endpoint string, token string) *Client {
	client := resty.New().SetBaseURL(endpoint)
	if token != "" {
		client.SetAuthToken(token)
	}

	return &Client{http: client}
}

type queryRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type queryEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Query executes a GraphQL document and returns the raw data payload.
// GraphQL-level errors and non-200 statuses are returned as errors; the
// caller never receives a partially trusted payload.
func (c *Client) Query(
	ctx context.Context,
	document string,
	variables map[string]any,
) (json.RawMessage, error) {
	ctx, span := otel.Tracer("wholesale-portal").Start(ctx, "identity.Query")
	defer span.End()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(queryRequest{Query: document, Variables: variables}).
		Post("/graphql")
	if err != nil {
		return nil, fmt.Errorf("identity query request: %w", err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("identity query status: %d", resp.StatusCode())
	}

	var envelope queryEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("identity query response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("identity query error: %s", envelope.Errors[0].Message)
	}

	return envelope.Data, nil
}

// Logout invalidates the provider-side login.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("identity logout request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("identity logout status: %d", resp.StatusCode())
	}

	return nil
}
