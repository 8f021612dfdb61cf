package errors

// ErrorCode identifies an API failure. Codes are stable and grouped by prefix.
type ErrorCode string

const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Import failures. IMPORT_001..003 mirror the parser's error kinds.
const (
	ImportFileUnreadable  ErrorCode = "IMPORT_001"
	ImportFileUnparseable ErrorCode = "IMPORT_002"
	ImportFieldInvalid    ErrorCode = "IMPORT_003"
	ImportSourceRequired  ErrorCode = "IMPORT_004"
)

const (
	TransactionNoMatch ErrorCode = "TRANSACTION_001"
)

const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	ImportFileUnreadable:  "Can't find the file. There is a problem with a file's path, it can not be read!",
	ImportFileUnparseable: "There is a problem with parsing. Json data is not valid",
	ImportFieldInvalid:    "A statement record has an invalid field value",
	ImportSourceRequired:  "An import file path is required",

	TransactionNoMatch: "No transaction matches the given category and year",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested resource does not exist",
}

// GetErrorMessage returns the default message for code, or a generic one for
// codes that are not registered.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
