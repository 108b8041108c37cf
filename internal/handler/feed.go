package handler

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/store"
	"github.com/Rubenjb24/Questi-App/internal/utils"
	"github.com/gorilla/mux"
)

// GetFeed récupère le feed social (anti-chronologique)
func GetFeed(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, store.App.Feed())
}

// GetPostImages récupère les images sélectionnables pour un nouveau post
func GetPostImages(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, store.App.PostImages())
}

// CreatePost publie une complétion de quête sur le feed
func CreatePost(w http.ResponseWriter, r *http.Request) {
	var body struct {
		QuestID  string `json:"questId"`
		ImageURL string `json:"imageUrl"`
		Caption  string `json:"caption"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	created := store.App.CreatePost(body.QuestID, body.ImageURL, body.Caption)
	if !created {
		utils.LogDebug("création de post ignorée (quest %q, image %q)", body.QuestID, body.ImageURL)
	}

	utils.Success(w, map[string]interface{}{
		"created": created,
		"feed":    store.App.Feed(),
	})
}

// EditPost remplace la légende d'un post de l'utilisateur courant
func EditPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var body struct {
		Caption string `json:"caption"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	edited := store.App.EditPost(vars["id"], body.Caption)
	utils.Success(w, map[string]interface{}{
		"edited": edited,
		"feed":   store.App.Feed(),
	})
}

// DeletePost supprime un post de l'utilisateur courant
func DeletePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deleted := store.App.DeletePost(vars["id"])
	utils.Success(w, map[string]interface{}{
		"deleted": deleted,
		"feed":    store.App.Feed(),
	})
}

// ToggleLikePost ajoute ou retire le like de l'utilisateur courant sur un post
func ToggleLikePost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	store.App.ToggleLikePost(vars["id"])
	utils.Success(w, store.App.Feed())
}

// ToggleLikeComment bascule le like d'un commentaire d'un post
func ToggleLikeComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	store.App.ToggleLikeComment(vars["id"], vars["commentId"])
	utils.Success(w, store.App.Feed())
}

// AddComment ajoute un commentaire sous un post
func AddComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var body struct {
		Text string `json:"text"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	added := store.App.AddComment(vars["id"], body.Text)
	utils.Success(w, map[string]interface{}{
		"added": added,
		"feed":  store.App.Feed(),
	})
}
