package log

// Common field names for structured logging.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldUserID      = "user_id"
	FieldKind        = "kind"
	FieldAmountCents = "amount_cents"
	FieldPeriod      = "period"
	FieldPeriodID    = "period_id"
	FieldError       = "error"
	FieldOperation   = "operation"
)

// Components defines standard component names.
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentLedger   = "ledger"
	ComponentGoals    = "goals"
	ComponentContent  = "content"
	ComponentStore    = "store"
	ComponentAMQP     = "amqp"
	ComponentNotifier = "notifier"
	ComponentSheets   = "sheets"
	ComponentCache    = "cache"
)
