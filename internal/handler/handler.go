package handler

import (
	"net/http"

	"github.com/Rubenjb24/Questi-App/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
