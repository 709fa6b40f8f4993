package models

// Product represents a catalog entry owning exactly one model
type Product struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ImageRef string `json:"imageRef" yaml:"imageRef"` // URL or path relative to the static dir
	Model    Model  `json:"model" yaml:"model"`
}

// Clone returns a copy of the product whose model shares no slices with the original
func (p Product) Clone() Product {
	out := p
	out.Model = p.Model.Clone()
	return out
}

// Catalog bundles the parameter schema and the products it describes
type Catalog struct {
	Params   []ParameterSchema `json:"params" yaml:"params"`
	Products []Product         `json:"products" yaml:"products"`
}
