package service

import "github.com/Yalanday/test-selsup/models"

// ModelEditorInterface defines the contract for editing a single product model
type ModelEditorInterface interface {
	OnInitialModelChange(initial models.Model)
	SetParamValue(paramID int, value string)
	SetColorName(colorID int, name string)
	RemoveColor(colorID int)
	AddColor() int
	Commit()
	Model() models.Model
	View() models.EditorView
}
