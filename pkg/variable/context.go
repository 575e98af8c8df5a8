package variable

// Provider supplies property values for a single entity.
// Property returns false when the entity does not support the property.
type Provider interface {
	Property(name string) (any, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(name string) (any, bool)

// Property implements Provider.
func (f ProviderFunc) Property(name string) (any, bool) {
	return f(name)
}

// Context maps entity names to their providers.
// The resolver only reads from it.
type Context map[string]Provider

// Values is a map-backed Provider.
type Values map[string]any

// Property implements Provider.
func (v Values) Property(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// User is the "user" entity.
type User struct {
	FirstName string `json:"firstName" mapstructure:"firstName"`
	LastName  string `json:"lastName" mapstructure:"lastName"`
	Email     string `json:"email" mapstructure:"email"`
}

// Property implements Provider.
func (u User) Property(name string) (any, bool) {
	switch name {
	case "firstName":
		return u.FirstName, true
	case "lastName":
		return u.LastName, true
	case "email":
		return u.Email, true
	}
	return nil, false
}

// Company is the "company" entity.
type Company struct {
	Name    string `json:"name" mapstructure:"name"`
	Address string `json:"address" mapstructure:"address"`
}

// Property implements Provider.
func (c Company) Property(name string) (any, bool) {
	switch name {
	case "name":
		return c.Name, true
	case "address":
		return c.Address, true
	}
	return nil, false
}

// Order is the "order" entity.
type Order struct {
	ID    int64   `json:"id" mapstructure:"id"`
	Total float64 `json:"total" mapstructure:"total"`
}

// Property implements Provider.
func (o Order) Property(name string) (any, bool) {
	switch name {
	case "id":
		return o.ID, true
	case "total":
		return o.Total, true
	}
	return nil, false
}

// Product is the "product" entity.
type Product struct {
	Name string `json:"name" mapstructure:"name"`
}

// Property implements Provider.
func (p Product) Property(name string) (any, bool) {
	if name == "name" {
		return p.Name, true
	}
	return nil, false
}
