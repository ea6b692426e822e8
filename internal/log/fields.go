package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldRecordID    = "record_id"
	FieldCategory    = "category"
	FieldSource      = "source"
	FieldAmountCents = "amount_cents"
	FieldCount       = "count"
	FieldState       = "state"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentAPI     = "api"
	ComponentExpense = "expense"
	ComponentIncome  = "income"
	ComponentCatalog = "catalog"
	ComponentToken   = "token"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpRefresh  = "refresh"
	OpLogin    = "login"
	OpRegister = "register"
	OpSeed     = "seed"
)
