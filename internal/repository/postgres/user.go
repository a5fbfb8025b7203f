package postgres

import (
	"database/sql"

	"flashcards/internal/domain"
)

// UserRepo implements repository.UserRepository over the bot_users table
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser returns the user, registering an unauthorized one on first contact.
// The no-op update makes RETURNING yield the existing row on conflict.
func (r *UserRepo) EnsureUser(userID int64) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRow(`
		INSERT INTO bot_users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, authorized, created_at
	`, userID).Scan(&user.UserID, &user.Authorized, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// AuthorizeUser marks user as authorized, creating the row if needed
func (r *UserRepo) AuthorizeUser(userID int64) error {
	_, err := r.db.Exec(`
		INSERT INTO bot_users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id) DO UPDATE SET authorized = TRUE
	`, userID)
	return err
}
