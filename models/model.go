package models

// ParamKind is the declared value kind of a parameter schema entry.
// Kinds are informational only; values are always stored as strings.
type ParamKind string

const (
	ParamKindText   ParamKind = "text"
	ParamKindNumber ParamKind = "number"
	ParamKindArray  ParamKind = "array"
)

// ParameterSchema describes one named field a product model can carry
type ParameterSchema struct {
	ID   int       `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Kind ParamKind `json:"kind" yaml:"kind"`
}

// ParamValue holds the value filled in for a single parameter schema entry
type ParamValue struct {
	ParamID int    `json:"paramId" yaml:"paramId"`
	Value   string `json:"value" yaml:"value"`
}

// Color represents a color variant of a product model
// IDs are only unique within the owning model
type Color struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Model is the editable payload of a product: parameter values and color variants
type Model struct {
	ParamValues []ParamValue `json:"paramValues" yaml:"paramValues"`
	Colors      []Color      `json:"colors" yaml:"colors"`
}

// Clone returns a structurally independent copy of the model.
// Nil slices stay nil so a clone compares equal to its source.
func (m Model) Clone() Model {
	var out Model
	if m.ParamValues != nil {
		out.ParamValues = make([]ParamValue, len(m.ParamValues))
		copy(out.ParamValues, m.ParamValues)
	}
	if m.Colors != nil {
		out.Colors = make([]Color, len(m.Colors))
		copy(out.Colors, m.Colors)
	}
	return out
}

// Value returns the value stored for paramID, or "" when no entry exists
func (m Model) Value(paramID int) string {
	for _, pv := range m.ParamValues {
		if pv.ParamID == paramID {
			return pv.Value
		}
	}
	return ""
}

// Equal reports whether both models hold the same entries in the same order.
// A nil slice and an empty slice are considered equal.
func (m Model) Equal(other Model) bool {
	if len(m.ParamValues) != len(other.ParamValues) || len(m.Colors) != len(other.Colors) {
		return false
	}
	for i := range m.ParamValues {
		if m.ParamValues[i] != other.ParamValues[i] {
			return false
		}
	}
	for i := range m.Colors {
		if m.Colors[i] != other.Colors[i] {
			return false
		}
	}
	return true
}
