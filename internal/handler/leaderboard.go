package handler

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/store"
	"github.com/Rubenjb24/Questi-App/internal/utils"
)

// GetGlobalLeaderboard récupère le classement global (top 5 figé + ligne live
// de l'utilisateur)
func GetGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, store.App.GlobalLeaderboard())
}

// GetFriendsLeaderboard récupère le classement des amis, rangs recalculés
func GetFriendsLeaderboard(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, store.App.FriendsLeaderboard())
}
