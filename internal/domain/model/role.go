package model

// RoleRecord is a persisted authorization role. The set of roles is seeded
// by migration and referenced many-to-many from users; names are unique.
type RoleRecord struct {
	ID   string `json:"id"   db:"id"`
	Name string `json:"name" db:"name"`
}
