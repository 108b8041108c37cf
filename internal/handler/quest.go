package handler

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/store"
	"github.com/Rubenjb24/Questi-App/internal/utils"
	"github.com/gorilla/mux"
)

// GetQuests récupère les quêtes du jour affiché (journalières + hebdomadaires)
func GetQuests(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"day":    store.App.Day(),
		"active": store.App.ActiveQuests(),
		"weekly": store.App.WeeklyQuests(),
	})
}

// GetCompletedQuests récupère les quêtes complétées (sélecteur de post)
func GetCompletedQuests(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, store.App.CompletedQuests())
}

// ToggleQuest bascule la complétion d'une quête. Un id inconnu ou un jour
// historique ne change rien: la réponse reste l'état courant.
func ToggleQuest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	questID := vars["id"]

	toggled := store.App.ToggleQuestCompletion(questID)
	if !toggled {
		utils.LogDebug("toggle ignoré pour la quête %q (jour historique ou id inconnu)", questID)
	}

	utils.Success(w, map[string]interface{}{
		"toggled":     toggled,
		"user":        store.App.User(),
		"celebrating": store.App.Celebrating(),
	})
}

// GetCelebration récupère l'état de la fenêtre de célébration
func GetCelebration(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{"celebrating": store.App.Celebrating()})
}
