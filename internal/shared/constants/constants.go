package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Roles
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"

	// SupportEmailDomain marks sign-ups that default to the staff role.
	SupportEmailDomain = "@autocrm.com"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"

	// Database table names
	TableUsers             = "users"
	TableUserRoles         = "user_roles"
	TableTeams             = "teams"
	TableTickets           = "tickets"
	TableTicketResponses   = "ticket_responses"
	TableTicketAttachments = "ticket_attachments"

	// Role bootstrap
	RoleCreateMaxAttempts = 3

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
