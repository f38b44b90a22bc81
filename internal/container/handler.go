package container

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/filedrop/service/internal/response"
	"github.com/filedrop/service/internal/storage"
)

// Handler holds HTTP handlers for container endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new container Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	Name string `json:"name" example:"project-docs"`
}

type createResponse struct {
	Message string `json:"message" example:"container created"`
	Name    string `json:"name"    example:"project-docs"`
}

type containerBody struct {
	Name         string    `json:"name"         example:"project-docs"`
	LastModified time.Time `json:"lastModified"`
}

// List godoc
//
//	@Summary		List containers
//	@Description	Returns all storage containers ordered by name.
//	@Tags			containers
//	@Produce		json
//	@Success		200	{array}		containerBody
//	@Failure		502	{object}	response.ErrorBody
//	@Router			/containers [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	containers, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("list containers: %v", err)
		response.BadGateway(w)
		return
	}

	out := make([]containerBody, 0, len(containers))
	for _, c := range containers {
		out = append(out, containerBody{Name: c.Name, LastModified: c.LastModified})
	}
	response.OK(w, out)
}

// Create godoc
//
//	@Summary		Create container
//	@Description	Creates a new public-read container. Names must be 3-63 lowercase letters, numbers, or hyphens.
//	@Tags			containers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createRequest	true	"Container name"
//	@Success		201		{object}	createResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		409		{object}	response.ErrorBody
//	@Failure		502		{object}	response.ErrorBody
//	@Router			/containers [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	err := h.svc.Create(r.Context(), req.Name)
	switch {
	case err == nil:
		response.Created(w, createResponse{Message: "container created", Name: req.Name})
	case IsInvalidName(err):
		response.BadRequest(w, err.Error())
	case errors.Is(err, storage.ErrContainerExists):
		response.Conflict(w, "container already exists")
	default:
		log.Printf("create container %q: %v", req.Name, err)
		response.BadGateway(w)
	}
}
