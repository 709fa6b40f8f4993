package service

import "github.com/Yalanday/test-selsup/models"

// EditorSessionInterface defines the contract of the UI event surface
type EditorSessionInterface interface {
	Select(productID int) error
	SetParamValue(paramID int, value string)
	SetColorName(colorID int, name string)
	RemoveColor(colorID int)
	AddColor() int
	Commit()
	WorkingCopy() models.Model
	EditorView() models.EditorView
	Products() []models.Product
	Selected() (models.Product, bool)
	Params() []models.ParameterSchema
}
