package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskhive/taskhive-api/internal/api/shared"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/service"
)

// TaskHandler handles task CRUD API requests. Every route it serves sits
// behind the auth middleware, so the owner is always the authenticated
// user.
type TaskHandler struct {
	taskService *service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a TaskHandler backed by the given service.
func NewTaskHandler(taskService *service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("handler", "task")),
	}
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.Create(r.Context(), userID, service.TaskCreate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate.TimePtr(),
		Priority:    req.Priority,
	})
	if err != nil {
		if isTaskInputError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewTaskResponse(task))
}

// List handles GET /api/tasks. The completed filter applies only for the
// literal values "true" and "false"; anything else lists everything.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	filter := service.ListFilter{
		Completed: r.URL.Query().Get("completed"),
		Priority:  r.URL.Query().Get("priority"),
	}

	tasks, err := h.taskService.List(r.Context(), userID, filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskListResponse(tasks))
}

// GetByID handles GET /api/tasks/{id}. A task owned by someone else reads
// as missing.
func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	task, err := h.taskService.GetByID(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Update handles PUT and PATCH /api/tasks/{id}. Both verbs apply the same
// partial-update semantics.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.Update(r.Context(), userID, taskID, service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate.TimePtr(),
		Priority:    req.Priority,
		PrioritySet: req.PrioritySet(),
	})
	if err != nil {
		if isTaskInputError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTaskResponse(task))
}

// Delete handles DELETE /api/tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// isTaskInputError reports whether the error describes the caller's task
// input rather than an internal failure.
func isTaskInputError(err error) bool {
	return errors.Is(err, domain.ErrInvalidTaskTitle) ||
		errors.Is(err, domain.ErrDueDateInPast)
}
