package llm

import "strings"

// Category labels a provider failure for the user-facing notice.
type Category string

const (
	CategorySSL               Category = "ssl"
	CategoryPermission        Category = "permission"
	CategoryTimeout           Category = "timeout"
	CategoryRateLimit         Category = "rate_limit"
	CategoryInsufficientFunds Category = "insufficient_funds"
	CategoryGeneric           Category = "generic"
)

// genericErrorText is what the caller always gets back in the normalized
// error response; the classified notice is surfaced separately.
const genericErrorText = "I encountered an error. Please try again or check your connection."

const unavailableErrorText = "The AI service is not available. Please check your connection."

// ClassifyError maps a provider failure onto a category and a human-readable
// notice by inspecting the error text. Pure; checks run in priority order and
// the first match wins.
func ClassifyError(err error) (Category, string) {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "ssl") || strings.Contains(msg, "certificate"):
		return CategorySSL, "SSL/Certificate error. Please check your network settings."
	case strings.Contains(msg, "permission"):
		return CategoryPermission, "Permission error. Try running as administrator or check firewall settings."
	case strings.Contains(msg, "timeout"):
		return CategoryTimeout, "Request timeout. Please check your internet connection."
	case strings.Contains(msg, "rate limit"):
		return CategoryRateLimit, "Rate limit exceeded. Please wait a moment and try again."
	case strings.Contains(msg, "insufficient funds") || strings.Contains(msg, "insufficient credits"):
		return CategoryInsufficientFunds, "Insufficient credits. Please check your account balance."
	default:
		return CategoryGeneric, "Error communicating with the AI provider: " + err.Error()
	}
}
