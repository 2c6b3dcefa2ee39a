package toolbar

import (
	"encoding/json"
	"log/slog"

	"github.com/quasilyte/gdata"
)

// SavedState is the toolbar state stored on disk between editor sessions.
type SavedState struct {
	SelectedObject string `json:"selectedObject"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for toolbar state storage.
// Persistence failures are never fatal; the toolbar just starts fresh.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tilewright",
	})
	if err != nil {
		slog.Warn("could not initialize toolbar persistence", "error", err)
		return err
	}
	gdataManager = m
	return nil
}

// SaveSelection stores the selected object id.
func SaveSelection(id string) {
	if gdataManager == nil {
		return
	}
	data, err := json.Marshal(SavedState{SelectedObject: id})
	if err != nil {
		slog.Warn("could not serialize toolbar state", "error", err)
		return
	}
	if err := gdataManager.SaveItem("toolbar", data); err != nil {
		slog.Warn("could not save toolbar state", "error", err)
	}
}

// LoadSelection returns the persisted object id, or "" when there is none.
func LoadSelection() string {
	if gdataManager == nil {
		return ""
	}
	data, err := gdataManager.LoadItem("toolbar")
	if err != nil {
		slog.Warn("could not load toolbar state", "error", err)
		return ""
	}
	if len(data) == 0 {
		return ""
	}
	var state SavedState
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Warn("could not parse saved toolbar state", "error", err)
		return ""
	}
	return state.SelectedObject
}
