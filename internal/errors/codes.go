package errors

// Error code constants, CATEGORY_DETAIL. The console maps these codes to the
// messages it renders; the message field is only a fallback.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthEmailRequired      = "AUTH_EMAIL_REQUIRED"
	AuthInvalidEmail       = "AUTH_INVALID_EMAIL"
	AuthPasswordRequired   = "AUTH_PASSWORD_REQUIRED"
	AuthPasswordTooShort   = "AUTH_PASSWORD_TOO_SHORT"
	AuthAccountNotFound    = "AUTH_ACCOUNT_NOT_FOUND"
	AuthIncorrectPassword  = "AUTH_INCORRECT_PASSWORD"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden     = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound  = "AUTHZ_ROLE_NOT_FOUND"
	AuthzInvalidRole   = "AUTHZ_INVALID_ROLE"
	AuthzAdminOnly     = "AUTHZ_ADMIN_ONLY"
	AuthzSectionDenied = "AUTHZ_SECTION_DENIED"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Distributor onboarding (DISTRIBUTOR_) ====================
	DistributorDraftNotFound   = "DISTRIBUTOR_DRAFT_NOT_FOUND"
	DistributorDraftIncomplete = "DISTRIBUTOR_DRAFT_INCOMPLETE"
	DistributorInvalidStep     = "DISTRIBUTOR_INVALID_STEP"
	DistributorProfileNotFound = "DISTRIBUTOR_PROFILE_NOT_FOUND"
	DistributorProfileExists   = "DISTRIBUTOR_PROFILE_EXISTS"
	DistributorAlreadyReviewed = "DISTRIBUTOR_ALREADY_REVIEWED"
	DistributorInvalidStatus   = "DISTRIBUTOR_INVALID_STATUS"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound          = "ORDER_NOT_FOUND"
	OrderInvalidStatus     = "ORDER_INVALID_STATUS"
	OrderCartEmpty         = "ORDER_CART_EMPTY"
	OrderPaymentInvalid    = "ORDER_PAYMENT_INVALID"
	OrderAlreadyDecided    = "ORDER_ALREADY_DECIDED"
	OrderInsufficientStock = "ORDER_INSUFFICIENT_STOCK"

	// ==================== Billing (INVOICE_) ====================
	InvoiceNotFound    = "INVOICE_NOT_FOUND"
	InvoiceAlreadyPaid = "INVOICE_ALREADY_PAID"

	// ==================== Cart (CART_) ====================
	CartLineNotFound = "CART_LINE_NOT_FOUND"
	CartInvalidQty   = "CART_INVALID_QTY"

	// ==================== Products (PRODUCT_) ====================
	ProductNotFound  = "PRODUCT_NOT_FOUND"
	ProductSKUExists = "PRODUCT_SKU_EXISTS"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalConfigError   = "INTERNAL_CONFIG_ERROR"
)
