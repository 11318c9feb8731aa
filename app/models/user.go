package models

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Avatar    string   `json:"avatar"`
	Role      string   `json:"role"`
	Purchases []string `json:"purchases"`
}

// RoleOwner gates the admin panel; every other role value is an ordinary
// buyer.
const RoleOwner = "owner"

// Session is the per-request identity resolved by the session middleware.
// With no real authentication, an anonymous session falls back to the
// built-in store owner account.
type Session struct {
	User          *User
	Authenticated bool
}

type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
}
