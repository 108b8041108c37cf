package handler

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/middleware"
	"github.com/Rubenjb24/Questi-App/internal/store"
	"github.com/Rubenjb24/Questi-App/internal/utils"
)

// GetUser récupère le snapshot de l'utilisateur courant
func GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		// Pas de middleware sur cette route: retomber sur le store
		utils.Success(w, store.App.User())
		return
	}
	utils.Success(w, user)
}

// GetBadges récupère les badges de l'utilisateur
func GetBadges(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, store.App.Badges())
}
