package store

const usersTable = "users"

// column order matches scanUser
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"password_hash",
	"created_at",
}
