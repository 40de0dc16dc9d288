package models

import "errors"

// Application-wide standard errors
var (
	// Validation Errors (не доходят до AI шлюза)
	ErrValidation = errors.New("validation error")

	// Configuration Errors (отсутствующие секреты)
	ErrAIKeyMissing     = errors.New("ai api key is not configured")
	ErrResendKeyMissing = errors.New("resend api key is not configured")

	// AI Gateway Errors
	ErrRateLimited     = errors.New("ai gateway rate limit exceeded")
	ErrPaymentRequired = errors.New("ai gateway payment required")
	ErrGateway         = errors.New("ai gateway error")
	ErrEmptyCompletion = errors.New("ai gateway returned no completion text")

	// Email Errors (логируются, никогда не влияют на путь генерации)
	ErrEmailSendFailed = errors.New("failed to send notification email")

	// Story Store Errors
	ErrStoryNotFound = errors.New("story not found")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
)
