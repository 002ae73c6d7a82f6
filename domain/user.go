package domain

import (
	"context"
	"time"
)

// User is the blog owner's admin account. The platform is single-tenant,
// there is no public registration.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name shown on the public site
	Email     string    // Login email (unique)
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByEmail retrieves a user by their login email.
	// Used during login to verify credentials.
	GetByEmail(ctx context.Context, email string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for the admin account.
type UserUsecase interface {
	// Login verifies credentials and returns a JWT token plus the profile.
	// Returns ErrUnauthorized on unknown email or password mismatch.
	Login(ctx context.Context, email, password string) (string, User, error)

	// EditPassword verifies the old password and stores the new one.
	EditPassword(ctx context.Context, id int64, oldPassword, newPassword string) error

	// EnsureAdmin creates the admin account on first boot if none exists.
	EnsureAdmin(ctx context.Context, name, email, password string) error
}
