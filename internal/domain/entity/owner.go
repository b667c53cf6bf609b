package entity

// Owner is the authenticated identity behind an owner operation.
// It is always passed explicitly, never read from ambient state.
type Owner struct {
	ID    string `json:"id"` // Subject issued by the identity provider.
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// IsZero reports whether no identity is present.
func (o Owner) IsZero() bool {
	return o.ID == ""
}
