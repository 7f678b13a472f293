package domain

import "time"

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an account holder. A user may own several businesses and
// keeps at most one of them marked active for the mobile app session.
type User struct {
	UserID                 string       `json:"userID"` // Primary Key (e.g., UUID)
	Username               string       `json:"username"`
	Name                   string       `json:"name"`
	PasswordHash           string       `json:"-" db:"password_hash"`
	AuthProvider           AuthProvider `json:"authProvider" db:"auth_provider"`
	GoogleID               *string      `json:"-" db:"google_id"`
	ActiveBusinessID       *string      `json:"activeBusinessID" db:"active_business_id"` // FK -> businesses.business_id
	RefreshTokenHash       string       `json:"-" db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time   `json:"-" db:"refresh_token_expiry_time"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// GoogleUserInfo holds the subset of the Google userinfo payload the app needs.
type GoogleUserInfo struct {
	Sub           string `json:"sub"` // Google's stable user identifier
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
