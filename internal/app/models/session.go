package models

// Session is the caller's identity for the current client instance. At
// most one session is persisted at a time, under the "user" key.
type Session struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  RoleType `json:"role"`
}
