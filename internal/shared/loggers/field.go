package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldLogin        = "login"
	FieldPage         = "page"
	FieldRepositories = "repositories"
	FieldLanguages    = "languages"
	FieldTotalBytes   = "total_bytes"
	FieldResidual     = "residual_units"

	FieldRateLimitCost      = "rate_limit_cost"
	FieldRateLimitRemaining = "rate_limit_remaining"
)
