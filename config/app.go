package config

import "time"

// App holds the startup configuration the services depend on. Values are read
// from the environment once at boot and threaded in explicitly rather than
// queried ad hoc.
type App struct {
	// InquiryRecipient is the address notified on new inquiries. Blank means
	// notification dispatch is skipped.
	InquiryRecipient string

	// Inquiry submission throttle, per originating client.
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// StorageDriver selects the image store implementation: "local" or "s3".
	StorageDriver string
	StorageDir    string
	S3Bucket      string

	// Admin auth
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
}

// NewApp builds the typed app configuration from an environment snapshot.
func NewApp(c map[string]string) App {
	return App{
		InquiryRecipient:  GetString(c, "INQUIRY_TO_EMAIL", ""),
		RateLimitRequests: GetInt(c, "INQUIRY_RATE_LIMIT", 10),
		RateLimitWindow:   time.Duration(GetInt(c, "INQUIRY_RATE_WINDOW_SECONDS", 60)) * time.Second,
		StorageDriver:     GetString(c, "STORAGE_DRIVER", "local"),
		StorageDir:        GetString(c, "STORAGE_DIR", "storage/public"),
		S3Bucket:          GetString(c, "S3_BUCKET", ""),
		AdminPasswordHash: GetString(c, "ADMIN_PASSWORD_HASH", ""),
		JWTSecret:         GetString(c, "JWT_SECRET", ""),
		TokenTTL:          time.Duration(GetInt(c, "TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}
