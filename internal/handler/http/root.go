package http

import (
	"net/http"

	"github.com/giancarlosisasi/task-management-api/internal/utils"
	"github.com/giancarlosisasi/task-management-api/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "hi there from the task api!"}, http.StatusOK)
}
