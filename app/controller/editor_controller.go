package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
	"github.com/Yalanday/test-selsup/service"
)

// EditorController handles HTTP requests that edit the selected product's model
type EditorController struct {
	session service.EditorSessionInterface
	log     *zap.SugaredLogger
}

// NewEditorController creates a new EditorController
func NewEditorController(session service.EditorSessionInterface, log *zap.SugaredLogger) *EditorController {
	return &EditorController{
		session: session,
		log:     logger.OrNop(log),
	}
}

// GetEditor handles GET /api/editor
func (c *EditorController) GetEditor(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.log, http.StatusOK, c.session.EditorView())
}

// SetParamValue handles POST /editor/params/{paramId}
// Entries missing from the working copy are not created
func (c *EditorController) SetParamValue(w http.ResponseWriter, r *http.Request) {
	paramID, err := pathID(r, "paramId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.ParamValueRequest
	if isFormRequest(r) {
		req.Value = r.FormValue("value")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.log.Warnf("❌ SetParamValue: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c.log.Debugf("📋 SetParamValue: param=%d value=%q", paramID, req.Value)
	c.session.SetParamValue(paramID, req.Value)
	c.respond(w, r)
}

// SetColorName handles POST /editor/colors/{colorId}
func (c *EditorController) SetColorName(w http.ResponseWriter, r *http.Request) {
	colorID, err := pathID(r, "colorId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.ColorNameRequest
	if isFormRequest(r) {
		req.Name = r.FormValue("name")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.log.Warnf("❌ SetColorName: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c.log.Debugf("📋 SetColorName: color=%d name=%q", colorID, req.Name)
	c.session.SetColorName(colorID, req.Name)
	c.respond(w, r)
}

// RemoveColor handles POST /editor/colors/{colorId}/delete
func (c *EditorController) RemoveColor(w http.ResponseWriter, r *http.Request) {
	colorID, err := pathID(r, "colorId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c.log.Debugf("🗑️  RemoveColor: color=%d", colorID)
	c.session.RemoveColor(colorID)
	c.respond(w, r)
}

// AddColor handles POST /editor/colors
func (c *EditorController) AddColor(w http.ResponseWriter, r *http.Request) {
	id := c.session.AddColor()
	c.log.Debugf("➕ AddColor: new color id=%d", id)
	c.respond(w, r)
}

// Commit handles POST /editor/commit
// Saves the working copy into the catalog; ignored while no product is selected
func (c *EditorController) Commit(w http.ResponseWriter, r *http.Request) {
	c.log.Infof("📥 Commit: Received %s request to %s", r.Method, r.URL.Path)
	c.session.Commit()
	c.respond(w, r)
}

func (c *EditorController) respond(w http.ResponseWriter, r *http.Request) {
	if isFormRequest(r) {
		redirectHome(w, r)
		return
	}
	writeJSON(w, c.log, http.StatusOK, c.session.EditorView())
}
