// Package i18n provides internationalization support for the storefront cart.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyInvalidProductID indicates a product id path parameter that is not a positive integer.
	ErrKeyInvalidProductID = "error.validation.product_id"
	// ErrKeyInvalidSize indicates a size other than P, M or G.
	ErrKeyInvalidSize = "error.validation.size"
	// ErrKeyProductNotFound indicates a product id missing from the catalog.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyCatalogUnavailable indicates the catalog backend could not be read.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyInvalidToken indicates an invalid session token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeySessionExpired indicates an expired session token.
	ErrKeySessionExpired = "error.session_expired"
	// ErrKeySessionDisabled indicates the session capability is not configured.
	ErrKeySessionDisabled = "error.session_disabled"
)

// Success message translation keys.
const (
	// SuccessKeyCartCleared indicates the cart was emptied.
	SuccessKeyCartCleared = "success.cart_cleared"
	// SuccessKeyCheckoutCompleted indicates checkout finished and the cart was emptied.
	SuccessKeyCheckoutCompleted = "success.checkout_completed"
	// SuccessKeyLoggedOut indicates the shopper logged out and the cart was emptied.
	SuccessKeyLoggedOut = "success.logged_out"
)
