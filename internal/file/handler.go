package file

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/filedrop/service/internal/container"
	"github.com/filedrop/service/internal/response"
	"github.com/filedrop/service/internal/storage"
)

// multipart form parse buffer; larger files spill to temp files
const parseMemory = 32 << 20

// Handler holds HTTP handlers for file endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new file Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type uploadResponse struct {
	Message      string `json:"message"      example:"file uploaded"`
	Filename     string `json:"filename"     example:"a81f4e2c-...-report.pdf"`
	OriginalName string `json:"originalName" example:"report.pdf"`
	URL          string `json:"url"          example:"http://localhost:9000/project-docs/a81f4e2c-...-report.pdf"`
	Size         int64  `json:"size"         example:"614400"`
	Container    string `json:"container"    example:"project-docs"`
}

type fileBody struct {
	Name         string    `json:"name"         example:"a81f4e2c-...-report.pdf"`
	OriginalName string    `json:"originalName" example:"report.pdf"`
	LastModified time.Time `json:"lastModified"`
	Size         int64     `json:"size"         example:"614400"`
	ContentType  string    `json:"contentType"  example:"application/pdf"`
	URL          string    `json:"url"          example:"http://localhost:9000/project-docs/a81f4e2c-...-report.pdf"`
}

type deleteResponse struct {
	Message string `json:"message" example:"file deleted"`
}

// Upload godoc
//
//	@Summary		Upload file
//	@Description	Uploads one multipart file into the container, creating the container on demand. Allowed types: PDF, Office documents, plain text, JPEG, PNG, GIF.
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			container	path		string	true	"Container name"
//	@Param			file		formData	file	true	"File to upload"
//	@Success		201			{object}	uploadResponse
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		502			{object}	response.ErrorBody
//	@Router			/upload/{container} [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	containerName := chi.URLParam(r, "container")

	if err := r.ParseMultipartForm(parseMemory); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	f, hdr, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file provided")
		return
	}
	defer f.Close()

	contentType := hdr.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := h.svc.Upload(r.Context(), containerName, hdr.Filename, contentType, hdr.Size, f)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorCode(w, http.StatusBadRequest, verr.Reason, verr.Message)
		case container.IsInvalidName(err):
			response.BadRequest(w, err.Error())
		default:
			log.Printf("upload to %q: %v", containerName, err)
			response.BadGateway(w)
		}
		return
	}

	response.Created(w, uploadResponse{
		Message:      "file uploaded",
		Filename:     info.Key,
		OriginalName: info.OriginalName,
		URL:          info.URL,
		Size:         info.Size,
		Container:    containerName,
	})
}

// List godoc
//
//	@Summary		List files
//	@Description	Returns the container's files with metadata, ordered by stored name.
//	@Tags			files
//	@Produce		json
//	@Param			container	path		string	true	"Container name"
//	@Success		200			{array}		fileBody
//	@Failure		404			{object}	response.ErrorBody
//	@Failure		502			{object}	response.ErrorBody
//	@Router			/containers/{container}/files [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	containerName := chi.URLParam(r, "container")

	objects, err := h.svc.List(r.Context(), containerName)
	if err != nil {
		if errors.Is(err, storage.ErrContainerNotFound) {
			response.NotFound(w, "container not found")
			return
		}
		log.Printf("list files in %q: %v", containerName, err)
		response.BadGateway(w)
		return
	}

	out := make([]fileBody, 0, len(objects))
	for _, o := range objects {
		out = append(out, fileBody{
			Name:         o.Key,
			OriginalName: o.OriginalName,
			LastModified: o.LastModified,
			Size:         o.Size,
			ContentType:  o.ContentType,
			URL:          o.URL,
		})
	}
	response.OK(w, out)
}

// Delete godoc
//
//	@Summary		Delete file
//	@Description	Removes one file by its stored name.
//	@Tags			files
//	@Produce		json
//	@Param			container	path		string	true	"Container name"
//	@Param			filename	path		string	true	"Stored file name"
//	@Success		200			{object}	deleteResponse
//	@Failure		404			{object}	response.ErrorBody
//	@Failure		502			{object}	response.ErrorBody
//	@Router			/containers/{container}/files/{filename} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	containerName := chi.URLParam(r, "container")
	filename := chi.URLParam(r, "filename")

	err := h.svc.Delete(r.Context(), containerName, filename)
	switch {
	case err == nil:
		response.OK(w, deleteResponse{Message: "file deleted"})
	case errors.Is(err, storage.ErrObjectNotFound):
		response.NotFound(w, "file not found")
	case errors.Is(err, storage.ErrContainerNotFound):
		response.NotFound(w, "container not found")
	default:
		log.Printf("delete %q from %q: %v", filename, containerName, err)
		response.BadGateway(w)
	}
}
