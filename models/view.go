package models

// ParamLine is a resolved parameter label/value pair shown in a product card
type ParamLine struct {
	ParamID int    `json:"paramId"`
	Label   string `json:"label"` // Empty when the ParamID has no schema entry
	Value   string `json:"value"`
}

// ProductSummary represents a product as rendered in the catalog list
type ProductSummary struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	ImageURL string      `json:"imageUrl"`
	Params   []ParamLine `json:"params"`
	Colors   []Color     `json:"colors"`
	Selected bool        `json:"selected"`
}

// EditorField is one schema-bound input of the editor panel
type EditorField struct {
	ParamID int       `json:"paramId"`
	Name    string    `json:"name"`
	Kind    ParamKind `json:"kind"`
	Value   string    `json:"value"`
}

// EditorView represents the editor panel state passed to templates and JSON clients
type EditorView struct {
	ProductID   int           `json:"productId,omitempty"`
	ProductName string        `json:"productName,omitempty"`
	Active      bool          `json:"active"`
	Fields      []EditorField `json:"fields"`
	Colors      []Color       `json:"colors"`
}

// ParamValueRequest represents the request body for editing a parameter value
type ParamValueRequest struct {
	Value string `json:"value"`
}

// ColorNameRequest represents the request body for renaming a color
type ColorNameRequest struct {
	Name string `json:"name"`
}

// SelectProductResponse represents the response after selecting a product
type SelectProductResponse struct {
	ProductID int        `json:"productId"`
	Editor    EditorView `json:"editor"`
}
