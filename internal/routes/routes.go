package routes

// Wholesale portal route paths. Handlers and the callback state machine
// redirect between these; they must stay in sync with the storefront's links.
const (
	Login     = "/wholesale/login"
	Callback  = "/wholesale/login/callback"
	Logout    = "/wholesale/logout"
	Dashboard = "/wholesale/dashboard"
	Orders    = "/wholesale/orders"
	Register  = "/wholesale/register"
)

// Error markers appended to the login route as ?error=<marker>.
const (
	ErrAuthFailed = "auth_failed"
	ErrNotB2B     = "not_b2b"
)

// LoginWithError returns the login route with an error marker attached.
func LoginWithError(marker string) string {
	return Login + "?error=" + marker
}
