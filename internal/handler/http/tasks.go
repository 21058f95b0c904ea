package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/giancarlosisasi/task-management-api/internal/logger"
	"github.com/giancarlosisasi/task-management-api/internal/service"
	"github.com/giancarlosisasi/task-management-api/internal/store"
	"github.com/giancarlosisasi/task-management-api/internal/utils"
	"github.com/giancarlosisasi/task-management-api/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// anonymous callers are allowed; caller stays nil without a valid token
	caller, _ := utils.GetUserFromContext(r.Context())

	tasks, err := h.services.TaskService.List(r.Context(), caller)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listTasks").Msg("error listing tasks")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.createTask").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	owner, _ := utils.GetUserFromContext(ctx)

	createdTask, err := h.services.TaskService.Create(ctx, input, owner)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Err(err).Msg("invalid task data provided")
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task creation")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdTask, http.StatusCreated)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTask").Msg("invalid task id")
		utils.WriteError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.Get(r.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			utils.WriteError(w, taskNotFoundDetail(taskID), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", taskID).Msg("unexpected error occurred during task lookup")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg("invalid task id")
		utils.WriteError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var input models.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedTask, err := h.services.TaskService.Update(ctx, taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			log.Err(err).Int64("id", taskID).Msg("invalid task data provided")
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrTaskNotFound):
			utils.WriteError(w, taskNotFoundDetail(taskID), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", taskID).Msg("unexpected error occurred during task update")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updatedTask, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteTask").Msg("invalid task id")
		utils.WriteError(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.Delete(r.Context(), taskID); err != nil {
		switch {
		case errors.Is(err, store.ErrTaskNotFound):
			utils.WriteError(w, taskNotFoundDetail(taskID), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", taskID).Msg("unexpected error occurred during task deletion")
			utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Task deleted successfully"}, http.StatusOK)
}

func taskIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "taskID"), 10, 64)
}

func taskNotFoundDetail(taskID int64) string {
	return fmt.Sprintf("Task with ID %d not found", taskID)
}
