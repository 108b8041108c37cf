package middleware

import (
	"context"
	"fmt"
	"net/http"

	model "github.com/Rubenjb24/Questi-App/internal/models"
	"github.com/Rubenjb24/Questi-App/internal/store"
)

// Context keys
type contextKey string

const userContextKey = contextKey("user")

// CurrentUserMiddleware injecte l'utilisateur courant dans le contexte.
// Pas d'authentification: l'application est mono-utilisateur, le snapshot
// vient directement du store.
func CurrentUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := store.App.User()
		ctx := context.WithValue(r.Context(), userContextKey, snapshot)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext récupère l'utilisateur depuis le contexte de la requête
func GetUserFromContext(r *http.Request) (model.UserSnapshot, error) {
	user, ok := r.Context().Value(userContextKey).(model.UserSnapshot)
	if !ok {
		return model.UserSnapshot{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}
