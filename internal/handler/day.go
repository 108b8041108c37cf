package handler

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/store"
	"github.com/Rubenjb24/Questi-App/internal/utils"
)

// GetDay récupère le jour du mois actuellement affiché
func GetDay(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"day":     store.App.Day(),
		"liveDay": store.LiveDay,
	})
}

// SetDay change le jour affiché (action change-day du calendrier).
// Un jour différent du jour courant passe les quêtes en lecture seule.
func SetDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Day int `json:"day"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	store.App.SetDay(body.Day)
	utils.Success(w, map[string]interface{}{
		"day":    store.App.Day(),
		"active": store.App.ActiveQuests(),
	})
}
