package handler

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Questi API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"user": []map[string]string{
				{"method": "GET", "path": "/user", "description": "Utilisateur courant (points, streak, niveau, rang)"},
				{"method": "GET", "path": "/badges", "description": "Badges de l'utilisateur"},
			},
			"quests": []map[string]string{
				{"method": "GET", "path": "/quests", "description": "Quêtes du jour affiché + quêtes hebdomadaires"},
				{"method": "GET", "path": "/quests/completed", "description": "Quêtes complétées (sélecteur de post)"},
				{"method": "POST", "path": "/quests/{id}/toggle", "description": "Basculer la complétion d'une quête"},
				{"method": "GET", "path": "/celebration", "description": "État de la fenêtre de célébration"},
			},
			"day": []map[string]string{
				{"method": "GET", "path": "/day", "description": "Jour du mois affiché"},
				{"method": "PUT", "path": "/day", "description": "Changer le jour affiché (calendrier)"},
			},
			"feed": []map[string]string{
				{"method": "GET", "path": "/feed", "description": "Feed social (anti-chronologique)"},
				{"method": "POST", "path": "/feed", "description": "Publier une complétion de quête"},
				{"method": "PATCH", "path": "/feed/{id}", "description": "Modifier la légende d'un post"},
				{"method": "DELETE", "path": "/feed/{id}", "description": "Supprimer un post"},
				{"method": "POST", "path": "/feed/{id}/like", "description": "Liker/unliker un post"},
				{"method": "POST", "path": "/feed/{id}/comments", "description": "Commenter un post"},
				{"method": "POST", "path": "/feed/{id}/comments/{commentId}/like", "description": "Liker/unliker un commentaire"},
				{"method": "GET", "path": "/feed/images", "description": "Images sélectionnables pour un post"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard/global", "description": "Classement global"},
				{"method": "GET", "path": "/leaderboard/friends", "description": "Classement des amis"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour Questi - Quêtes journalières, points et feed social",
		},
	}

	utils.Success(w, routes)
}
