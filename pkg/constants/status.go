package constants

// Result labels shared by metrics and logs.
const (
	StatusOK       = "ok"
	StatusFailed   = "failed"
	StatusRejected = "rejected"
	StatusNotFound = "not_found"
)

// Flash message categories, rendered as CSS classes.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

const (
	AdminCookieName = "admin_session"
	FlashCookieName = "flash_session"
	LocalsAdminKey  = "admin"
	UploadsRoute    = "/uploads"
)
