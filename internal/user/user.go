// Package user defines the user record exchanged with the remote resource.
package user

// User is a single user record. IDs are assigned by the remote resource on
// the initial fetch; records created locally get a locally assigned ID
// because the sandbox API echoes a placeholder instead of a stable one.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website,omitempty"`
}

// Draft holds the editable fields of a user record. It is both the payload
// sent on create/replace and the patch merged locally after a successful
// update (the remote response body is not trusted for the merge).
type Draft struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website,omitempty"`
}

// Apply merges the draft's fields into u, leaving ID untouched.
func (d Draft) Apply(u *User) {
	u.Name = d.Name
	u.Username = d.Username
	u.Email = d.Email
	u.Phone = d.Phone
	u.Website = d.Website
}

// DraftOf extracts the editable fields of an existing record, used to
// pre-fill the edit form.
func DraftOf(u User) Draft {
	return Draft{
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
	}
}
