package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeOfferNotFound        = "OFFER_NOT_FOUND"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeInvalidCategory      = "INVALID_CATEGORY"
	ErrCodeInvalidStatus        = "INVALID_STATUS"
	ErrCodeInvalidCustomization = "INVALID_CUSTOMIZATION"
	ErrCodeSummaryTooLong       = "SUMMARY_TOO_LONG"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeUnauthorised         = "UNAUTHORIZED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrOfferNotFound        = NewDomainError(ErrCodeOfferNotFound, "Special offer not found")
	ErrInvalidQuantity      = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidCategory      = NewDomainError(ErrCodeInvalidCategory, "Category must be one of men, women, pack or gift-box")
	ErrInvalidStatus        = NewDomainError(ErrCodeInvalidStatus, "Status must be one of pending, confirmed, shipped, delivered or cancelled")
	ErrInvalidCustomization = NewDomainError(ErrCodeInvalidCustomization, "Customization is out of bounds")
	ErrSummaryTooLong       = NewDomainError(ErrCodeSummaryTooLong, "Offer summary must be at most 100 characters")
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
)
