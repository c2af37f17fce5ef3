package models

// NullRowID marks an entity that has not been persisted yet. Put operations
// treat it as "insert and assign an id"; it is never a valid primary key.
const NullRowID int64 = -1

// User represents a person taking spelling tests
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName returns the user's display name
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
