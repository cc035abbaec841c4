package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldEmail      = "email"
	FieldAccountID  = "account_id"
	FieldExpenseID  = "expense_id"
	FieldTitle      = "title"
	FieldCategory   = "category"
	FieldAmount     = "amount_cents"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldKey        = "key"
	FieldBackend    = "backend"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentAccounts = "accounts"
	ComponentSession  = "session"
	ComponentLedger   = "ledger"
	ComponentReport   = "report"
	ComponentStore    = "store"
	ComponentSeed     = "seed"
)

// Operations defines standard operation names
const (
	OpRegister = "register"
	OpSignIn   = "sign_in"
	OpSignOut  = "sign_out"
	OpAdd      = "add"
	OpRemove   = "remove"
	OpLoad     = "load"
	OpSeed     = "seed"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
