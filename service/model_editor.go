package service

import (
	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
)

// SaveFunc receives the full edited model when the editor commits
type SaveFunc func(model models.Model)

// ModelEditor keeps an editable working copy of one model against a fixed parameter schema.
// Every mutation replaces the working copy with a new Model value built on new slices,
// so snapshots returned earlier are never modified.
type ModelEditor struct {
	params []models.ParameterSchema
	model  models.Model
	onSave SaveFunc
	log    *zap.SugaredLogger
}

// Ensure ModelEditor implements ModelEditorInterface
var _ ModelEditorInterface = (*ModelEditor)(nil)

// NewModelEditor creates a ModelEditor with a working copy derived from initial
func NewModelEditor(params []models.ParameterSchema, initial models.Model, onSave SaveFunc, log *zap.SugaredLogger) *ModelEditor {
	schema := make([]models.ParameterSchema, len(params))
	copy(schema, params)

	return &ModelEditor{
		params: schema,
		model:  initial.Clone(),
		onSave: onSave,
		log:    logger.OrNop(log),
	}
}

// OnInitialModelChange discards the working copy and re-derives it from initial
func (e *ModelEditor) OnInitialModelChange(initial models.Model) {
	e.log.Debugf("🔄 Editor: re-deriving working copy (%d params, %d colors)", len(initial.ParamValues), len(initial.Colors))
	e.model = initial.Clone()
}

// SetParamValue replaces the value of every existing entry for paramID.
// No entry is created when none exists for paramID.
func (e *ModelEditor) SetParamValue(paramID int, value string) {
	updated := cloneParamValues(e.model.ParamValues)
	matched := 0
	for i := range updated {
		if updated[i].ParamID == paramID {
			updated[i].Value = value
			matched++
		}
	}
	if matched == 0 {
		e.log.Debugf("⚠️  Editor: no value entry for param %d, edit dropped", paramID)
	}
	e.model = models.Model{ParamValues: updated, Colors: cloneColors(e.model.Colors)}
}

// SetColorName renames the color with colorID; other colors are unchanged
func (e *ModelEditor) SetColorName(colorID int, name string) {
	updated := cloneColors(e.model.Colors)
	for i := range updated {
		if updated[i].ID == colorID {
			updated[i].Name = name
		}
	}
	e.model = models.Model{ParamValues: cloneParamValues(e.model.ParamValues), Colors: updated}
}

// RemoveColor drops the color with colorID, preserving the order of the rest
func (e *ModelEditor) RemoveColor(colorID int) {
	updated := make([]models.Color, 0, len(e.model.Colors))
	for _, c := range e.model.Colors {
		if c.ID == colorID {
			continue
		}
		updated = append(updated, c)
	}
	e.model = models.Model{ParamValues: cloneParamValues(e.model.ParamValues), Colors: updated}
}

// AddColor appends an unnamed color and returns its id.
// The id is max(existing ids)+1, or 1 for an empty list, so removing the
// highest id and adding again reuses it.
func (e *ModelEditor) AddColor() int {
	id := nextColorID(e.model.Colors)

	updated := make([]models.Color, len(e.model.Colors), len(e.model.Colors)+1)
	copy(updated, e.model.Colors)
	updated = append(updated, models.Color{ID: id, Name: ""})

	e.model = models.Model{ParamValues: cloneParamValues(e.model.ParamValues), Colors: updated}
	return id
}

// Commit hands a copy of the working copy to the save callback. Nothing is validated.
func (e *ModelEditor) Commit() {
	e.log.Infof("💾 Editor: committing model (%d params, %d colors)", len(e.model.ParamValues), len(e.model.Colors))
	if e.onSave == nil {
		return
	}
	e.onSave(e.model.Clone())
}

// Model returns a snapshot of the working copy
func (e *ModelEditor) Model() models.Model {
	return e.model.Clone()
}

// Params returns the parameter schema the editor was built with
func (e *ModelEditor) Params() []models.ParameterSchema {
	out := make([]models.ParameterSchema, len(e.params))
	copy(out, e.params)
	return out
}

// View builds the rendering contract: one field per schema entry, one row per color
func (e *ModelEditor) View() models.EditorView {
	fields := make([]models.EditorField, 0, len(e.params))
	for _, p := range e.params {
		fields = append(fields, models.EditorField{
			ParamID: p.ID,
			Name:    p.Name,
			Kind:    p.Kind,
			Value:   e.model.Value(p.ID),
		})
	}
	colors := cloneColors(e.model.Colors)
	if colors == nil {
		colors = []models.Color{}
	}
	return models.EditorView{Fields: fields, Colors: colors}
}

func nextColorID(colors []models.Color) int {
	if len(colors) == 0 {
		return 1
	}
	maxID := colors[0].ID
	for _, c := range colors[1:] {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

func cloneParamValues(in []models.ParamValue) []models.ParamValue {
	if in == nil {
		return nil
	}
	out := make([]models.ParamValue, len(in))
	copy(out, in)
	return out
}

func cloneColors(in []models.Color) []models.Color {
	if in == nil {
		return nil
	}
	out := make([]models.Color, len(in))
	copy(out, in)
	return out
}
