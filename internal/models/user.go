package models

// User is a registered account. PasswordHash is a bcrypt hash and must never
// leave the server.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	AvatarURL    string
	CreatedAt    int64
	UpdatedAt    int64
}
