package api

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/handler"
	"github.com/Rubenjb24/Questi-App/internal/middleware"
	"github.com/Rubenjb24/Questi-App/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.CurrentUserMiddleware)
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// User
	r.HandleFunc("/user", handler.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/badges", handler.GetBadges).Methods(http.MethodGet)

	// Quests
	r.HandleFunc("/quests", handler.GetQuests).Methods(http.MethodGet)
	r.HandleFunc("/quests/completed", handler.GetCompletedQuests).Methods(http.MethodGet)
	r.HandleFunc("/quests/{id}/toggle", handler.ToggleQuest).Methods(http.MethodPost)
	r.HandleFunc("/celebration", handler.GetCelebration).Methods(http.MethodGet)

	// Day context (calendrier)
	r.HandleFunc("/day", handler.GetDay).Methods(http.MethodGet)
	r.HandleFunc("/day", handler.SetDay).Methods(http.MethodPut)

	// Social feed
	r.HandleFunc("/feed", handler.GetFeed).Methods(http.MethodGet)
	r.HandleFunc("/feed", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/feed/images", handler.GetPostImages).Methods(http.MethodGet)
	r.HandleFunc("/feed/{id}", handler.EditPost).Methods(http.MethodPatch, http.MethodPut)
	r.HandleFunc("/feed/{id}", handler.DeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/feed/{id}/like", handler.ToggleLikePost).Methods(http.MethodPost)
	r.HandleFunc("/feed/{id}/comments", handler.AddComment).Methods(http.MethodPost)
	r.HandleFunc("/feed/{id}/comments/{commentId}/like", handler.ToggleLikeComment).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard/global", handler.GetGlobalLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/friends", handler.GetFriendsLeaderboard).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
