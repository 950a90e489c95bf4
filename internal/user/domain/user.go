package domain

// User is a stored user record. ID is assigned by the repository and
// immutable once set.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
