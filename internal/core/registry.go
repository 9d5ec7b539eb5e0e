package core

// Registry maps display names to live clients. A name maps to at most one
// client and a client is bound under at most one name. Accessed only from
// the hub goroutine.
type Registry struct {
	users map[string]*Client
}

// NewRegistry constructs an empty session registry.
func NewRegistry() *Registry {
	return &Registry{users: make(map[string]*Client)}
}

// Login binds name to the client. Returns false without mutating anything
// when the name is taken or the client already carries a name.
func (r *Registry) Login(name string, c *Client) bool {
	if _, taken := r.users[name]; taken || c.Name != "" {
		return false
	}
	r.users[name] = c
	c.Name = name
	return true
}

// Logout removes the client's bound name. Idempotent.
func (r *Registry) Logout(c *Client) {
	if c.Name == "" {
		return
	}
	if bound, ok := r.users[c.Name]; ok && bound == c {
		delete(r.users, c.Name)
	}
}

// Lookup returns the client bound to name, or nil.
func (r *Registry) Lookup(name string) *Client {
	return r.users[name]
}
