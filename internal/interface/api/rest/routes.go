package rest

const (
	RouteContacts         = "/contacts"
	RouteContactSearch    = RouteContacts + "/search"
	RouteContactBirthdays = RouteContacts + "/birthdays"
	RouteContact          = RouteContacts + "/:contact_id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
