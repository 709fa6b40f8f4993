package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yalanday/test-selsup/models"
	"github.com/Yalanday/test-selsup/service"
)

var testParams = []models.ParameterSchema{
	{ID: 1, Name: "Назначение", Kind: models.ParamKindText},
	{ID: 2, Name: "Длина", Kind: models.ParamKindText},
	{ID: 3, Name: "Материал", Kind: models.ParamKindText},
}

func dressModel() models.Model {
	return models.Model{
		ParamValues: []models.ParamValue{
			{ParamID: 1, Value: "повседневное"},
			{ParamID: 2, Value: "макси"},
		},
		Colors: []models.Color{
			{ID: 1, Name: "Красный"},
			{ID: 2, Name: "Синий"},
		},
	}
}

func TestModelEditorWorkingCopyIsIndependent(t *testing.T) {
	t.Parallel()

	initial := dressModel()
	editor := service.NewModelEditor(testParams, initial, nil, nil)

	editor.SetParamValue(1, "офисное")
	editor.SetColorName(1, "Бордовый")

	require.Equal(t, "повседневное", initial.ParamValues[0].Value)
	require.Equal(t, "Красный", initial.Colors[0].Name)
	require.Equal(t, "офисное", editor.Model().Value(1))
}

func TestModelEditorReDerivationDiscardsEdits(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, dressModel(), nil, nil)
	editor.SetParamValue(2, "мини")
	editor.SetColorName(2, "Голубой")
	editor.AddColor()
	editor.RemoveColor(1)

	next := models.Model{
		ParamValues: []models.ParamValue{{ParamID: 3, Value: "синтетика"}},
		Colors:      []models.Color{{ID: 7, Name: "Белый"}},
	}
	editor.OnInitialModelChange(next)

	require.Equal(t, next, editor.Model())

	// The working copy must not alias the new initial model.
	editor.SetParamValue(3, "хлопок")
	require.Equal(t, "синтетика", next.ParamValues[0].Value)
}

func TestModelEditorSetParamValue(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, dressModel(), nil, nil)
	editor.SetParamValue(2, "миди")

	got := editor.Model()
	require.Equal(t, []models.ParamValue{
		{ParamID: 1, Value: "повседневное"},
		{ParamID: 2, Value: "миди"},
	}, got.ParamValues)
	require.Equal(t, dressModel().Colors, got.Colors)
}

func TestModelEditorSetParamValueWithoutEntryIsNoop(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, dressModel(), nil, nil)
	editor.SetParamValue(3, "шёлк")

	require.Equal(t, dressModel().ParamValues, editor.Model().ParamValues)
	require.Equal(t, "", editor.Model().Value(3))
}

func TestModelEditorSetColorName(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, dressModel(), nil, nil)
	editor.SetColorName(2, "Зелёный")
	editor.SetColorName(42, "Нет такого")

	require.Equal(t, []models.Color{{ID: 1, Name: "Красный"}, {ID: 2, Name: "Зелёный"}}, editor.Model().Colors)
}

func TestModelEditorRemoveColorPreservesOrder(t *testing.T) {
	t.Parallel()

	initial := models.Model{Colors: []models.Color{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}}
	editor := service.NewModelEditor(testParams, initial, nil, nil)
	editor.RemoveColor(2)

	require.Equal(t, []models.Color{{ID: 1, Name: "a"}, {ID: 3, Name: "c"}}, editor.Model().Colors)
}

func TestModelEditorAddColorIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		colors []models.Color
		wantID int
	}{
		{name: "empty list", colors: nil, wantID: 1},
		{name: "gap in ids", colors: []models.Color{{ID: 1}, {ID: 3}}, wantID: 4},
		{name: "unordered ids", colors: []models.Color{{ID: 5}, {ID: 2}}, wantID: 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			editor := service.NewModelEditor(testParams, models.Model{Colors: tt.colors}, nil, nil)
			require.Equal(t, tt.wantID, editor.AddColor())

			colors := editor.Model().Colors
			require.Len(t, colors, len(tt.colors)+1)
			require.Equal(t, models.Color{ID: tt.wantID, Name: ""}, colors[len(colors)-1])
		})
	}
}

func TestModelEditorAddColorReusesRemovedMaxID(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, models.Model{Colors: []models.Color{{ID: 1, Name: "a"}}}, nil, nil)
	first := editor.AddColor()
	editor.RemoveColor(first)
	second := editor.AddColor()

	require.Equal(t, first, second)
}

func TestModelEditorSnapshotsStayValid(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, dressModel(), nil, nil)
	before := editor.Model()

	editor.SetColorName(1, "Жёлтый")
	editor.RemoveColor(2)
	editor.SetParamValue(1, "вечернее")

	require.Equal(t, dressModel(), before)
}

func TestModelEditorCommitPassesFullModel(t *testing.T) {
	t.Parallel()

	var saved []models.Model
	editor := service.NewModelEditor(testParams, dressModel(), func(m models.Model) {
		saved = append(saved, m)
	}, nil)

	editor.SetColorName(1, "")
	editor.SetParamValue(1, "")
	editor.Commit()

	require.Len(t, saved, 1)
	require.Equal(t, "", saved[0].Colors[0].Name)
	require.Equal(t, "", saved[0].Value(1))

	// The committed value is detached from later edits.
	editor.SetColorName(2, "Оранжевый")
	require.Equal(t, "Синий", saved[0].Colors[1].Name)
}

func TestModelEditorCommitWithoutCallback(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, dressModel(), nil, nil)
	require.NotPanics(t, editor.Commit)
}

func TestModelEditorView(t *testing.T) {
	t.Parallel()

	editor := service.NewModelEditor(testParams, dressModel(), nil, nil)
	view := editor.View()

	require.False(t, view.Active)
	require.Equal(t, []models.EditorField{
		{ParamID: 1, Name: "Назначение", Kind: models.ParamKindText, Value: "повседневное"},
		{ParamID: 2, Name: "Длина", Kind: models.ParamKindText, Value: "макси"},
		{ParamID: 3, Name: "Материал", Kind: models.ParamKindText, Value: ""},
	}, view.Fields)
	require.Equal(t, dressModel().Colors, view.Colors)

	empty := service.NewModelEditor(testParams, models.Model{}, nil, nil).View()
	require.NotNil(t, empty.Colors)
	require.Empty(t, empty.Colors)
}

func TestModelEditorParamsAreCopied(t *testing.T) {
	t.Parallel()

	params := append([]models.ParameterSchema(nil), testParams...)
	editor := service.NewModelEditor(params, models.Model{}, nil, nil)
	params[0].Name = "changed"

	require.Equal(t, "Назначение", editor.Params()[0].Name)
}
