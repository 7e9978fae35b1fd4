package httptransport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/islasuds/wholesale/internal/dal/interfaces/isessionrepo"
	"github.com/islasuds/wholesale/internal/routes"
	"github.com/islasuds/wholesale/internal/service/models/money"
	"github.com/islasuds/wholesale/internal/service/models/wholesaleorder"
	"github.com/islasuds/wholesale/internal/service/services/portalsvc"
	"github.com/islasuds/wholesale/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	callbackRedirect portalsvc.Redirect
	callbackSets     string

	page         wholesaleorder.Page
	pageRedirect *portalsvc.Redirect
	lastAfter    string

	registerResult portalsvc.RegistrationResult
	lastForm       portalsvc.RegistrationForm
}

func (f *fakeService) HandleCallback(_ context.Context, sess portalsvc.Session) portalsvc.Redirect {
	if f.callbackSets != "" {
		sess.Set(f.callbackSets)
	}

	return f.callbackRedirect
}

func (f *fakeService) Logout(_ context.Context, sess portalsvc.Session) portalsvc.Redirect {
	sess.Unset()

	return portalsvc.Redirect{Location: routes.Login}
}

func (f *fakeService) ListOrders(
	_ context.Context,
	_ portalsvc.Session,
	after string,
) (wholesaleorder.Page, *portalsvc.Redirect) {
	f.lastAfter = after

	return f.page, f.pageRedirect
}

func (f *fakeService) Dashboard(
	_ context.Context,
	_ portalsvc.Session,
) (portalsvc.DashboardData, *portalsvc.Redirect) {
	return portalsvc.DashboardData{CustomerID: "c1"}, nil
}

func (f *fakeService) Register(
	_ context.Context,
	form portalsvc.RegistrationForm,
) portalsvc.RegistrationResult {
	f.lastForm = form

	return f.registerResult
}

type fakeSessionRepo struct {
	rows map[string]string
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (string, error) {
	customerID, ok := f.rows[token]
	if !ok {
		return "", isessionrepo.ErrNotFound
	}

	return customerID, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, token, customerID string, _ time.Time) error {
	f.rows[token] = customerID

	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(f.rows, token)

	return nil
}

func newTestTransport(svc *fakeService) (*HTTPTransport, *fakeSessionRepo) {
	repo := &fakeSessionRepo{rows: map[string]string{}}
	transport := NewHTTPTransport(svc, session.NewStore(repo))
	transport.RegisterRoutes()

	return transport, repo
}

func TestCallbackCommitsSessionWithRedirect(t *testing.T) {
	svc := &fakeService{
		callbackRedirect: portalsvc.Redirect{Location: routes.Dashboard},
		callbackSets:     "c1",
	}
	transport, repo := newTestTransport(svc)

	w := httptest.NewRecorder()
	transport.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, routes.Callback, nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, routes.Dashboard, w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "c1", repo.rows[cookies[0].Value])
}

func TestListOrdersRendersFormattedJSON(t *testing.T) {
	svc := &fakeService{page: wholesaleorder.Page{
		Orders: []wholesaleorder.Order{{
			ID:                "o1",
			Name:              "#W1001",
			OrderNumber:       1001,
			ProcessedAt:       "2026-01-15T10:30:00Z",
			FinancialStatus:   "PAID",
			FulfillmentStatus: "FULFILLED",
			CurrentTotalPrice: money.Money{Amount: "150.00", CurrencyCode: "USD"},
		}},
		PageInfo: wholesaleorder.PageInfo{HasNextPage: true, EndCursor: "abc"},
	}}
	transport, _ := newTestTransport(svc)

	w := httptest.NewRecorder()
	transport.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, routes.Orders+"?after=cur1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cur1", svc.lastAfter)
	body := w.Body.String()
	assert.Contains(t, body, `"total":"$150.00"`)
	assert.Contains(t, body, `"totalLabel":"150.00 US dollars"`)
	assert.Contains(t, body, `"processedAtDisplay":"January 15, 2026"`)
	assert.Contains(t, body, `"endCursor":"abc"`)
}

func TestListOrdersRedirectsAnonymousVisitor(t *testing.T) {
	svc := &fakeService{pageRedirect: &portalsvc.Redirect{Location: routes.Login}}
	transport, _ := newTestTransport(svc)

	w := httptest.NewRecorder()
	transport.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, routes.Orders, nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, routes.Login, w.Header().Get("Location"))
}

func TestLogoutClearsSessionCookie(t *testing.T) {
	transport, repo := newTestTransport(&fakeService{})
	repo.rows["tok"] = "c1"

	r := httptest.NewRequest(http.MethodPost, routes.Logout, nil)
	r.AddCookie(&http.Cookie{Name: "islasuds_wholesale_session", Value: "tok"})
	w := httptest.NewRecorder()
	transport.router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, routes.Login, w.Header().Get("Location"))
	assert.NotContains(t, repo.rows, "tok")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRegisterFormDescribesFields(t *testing.T) {
	transport, _ := newTestTransport(&fakeService{})

	w := httptest.NewRecorder()
	transport.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, routes.Register, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"businessName"`)
}

func TestRegisterSubmission(t *testing.T) {
	svc := &fakeService{registerResult: portalsvc.RegistrationResult{Success: true}}
	transport, _ := newTestTransport(svc)

	form := url.Values{
		"name":         {"Isla Suds"},
		"email":        {"buyer@acmesoap.com"},
		"phone":        {"+1 555 0100"},
		"businessName": {"Acme Soapworks"},
		"message":      {"Stock request"},
	}
	r := httptest.NewRequest(http.MethodPost, routes.Register, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	transport.router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Equal(t, "Acme Soapworks", svc.lastForm.BusinessName)
	assert.Equal(t, "buyer@acmesoap.com", svc.lastForm.Email)
}

func TestDashboardRendersSummary(t *testing.T) {
	transport, repo := newTestTransport(&fakeService{})
	repo.rows["tok"] = "c1"

	r := httptest.NewRequest(http.MethodGet, routes.Dashboard, nil)
	r.AddCookie(&http.Cookie{Name: "islasuds_wholesale_session", Value: "tok"})
	w := httptest.NewRecorder()
	transport.router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customerId":"c1"`)
}
