package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldClientIP  = "client_ip"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status_code"
	FieldDuration  = "duration_ms"
	FieldUserAgent = "user_agent"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldYear      = "year"
	FieldLeftYear  = "left_year"
	FieldRightYear = "right_year"
	FieldTheme     = "theme"
	FieldOrigin    = "origin"
	FieldCategory  = "category"
	FieldImageURL  = "image_url"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentDataset  = "dataset"
	ComponentStorage  = "storage"
	ComponentMapImage = "mapimage"
	ComponentNotify   = "notify"
	ComponentCache    = "cache"
	ComponentTemplate = "template"
	ComponentImporter = "importer"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeNetwork       = "network_error"
	ErrorTypeTimeout       = "timeout_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypeInternal      = "internal_error"
)
