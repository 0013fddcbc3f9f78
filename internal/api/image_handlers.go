package api

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"menedzer-dysku/internal/database"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

func (s *Server) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	// One extra MiB of headroom for the multipart framing itself.
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+1<<20)

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "Image is too large or the form is malformed")
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No image uploaded")
		return
	}
	defer file.Close()

	if handler.Size > maxImageSize {
		respondError(w, http.StatusBadRequest, "Image is too large (max 5 MB)")
		return
	}

	ext := strings.ToLower(filepath.Ext(handler.Filename))
	expectedType, ok := allowedImageTypes[ext]
	if !ok {
		respondError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}
	contentType := handler.Header.Get("Content-Type")
	if contentType != expectedType {
		respondError(w, http.StatusBadRequest, "Only image files are allowed")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		name = handler.Filename
	}

	imageID, err := generateUniqueID(r.Context(), s.store.ImageExists)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error uploading image")
		return
	}

	// The object key doubles as the removal handle.
	objectName := "drive-app/" + uuid.New().String() + ext

	url, err := s.blobs.Upload(r.Context(), objectName, file, handler.Size, contentType)
	if err != nil {
		log.Printf("ERROR: Blob upload failed for user %d: %v", claims.UserID, err)
		respondError(w, http.StatusBadGateway, "Error uploading image")
		return
	}

	// The metadata row is written only after the blob backend confirmed
	// storage. FolderID is stored as given, mirroring folder creation.
	image, err := s.store.CreateImage(r.Context(), database.CreateImageParams{
		ID:       imageID,
		OwnerID:  claims.UserID,
		FolderID: folderID,
		Name:     name,
		URL:      url,
		PublicID: objectName,
	})
	if err != nil {
		log.Printf("ERROR: Failed to create image record, remote object %s may be orphaned: %v", objectName, err)
		respondError(w, http.StatusInternalServerError, "Error uploading image")
		return
	}

	if err := s.store.LogEvent(r.Context(), claims.UserID, "image_uploaded", image); err != nil {
		log.Printf("WARN: Failed to log image_uploaded event: %v", err)
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Image uploaded",
		"image":   image,
	})
}

func (s *Server) ListImagesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	images, err := s.store.ListImagesByFolder(r.Context(), claims.UserID, folderID)
	if err != nil {
		log.Printf("ERROR: Failed to list images in folder %s: %v", folderID, err)
		respondError(w, http.StatusInternalServerError, "Error fetching images")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"images":  images,
	})
}

func (s *Server) DeleteImageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	imageID := chi.URLParam(r, "imageId")

	image, err := s.store.GetImageByID(r.Context(), imageID, claims.UserID)
	if err != nil {
		log.Printf("ERROR: Failed to fetch image %s: %v", imageID, err)
		respondError(w, http.StatusInternalServerError, "Error deleting image")
		return
	}
	if image == nil {
		respondError(w, http.StatusNotFound, "Image not found or access denied")
		return
	}

	// Remote object first. If this fails the local row stays, pointing at
	// an object that still exists; the caller can retry. The reverse order
	// would risk an undetectable storage leak.
	if err := s.blobs.Remove(r.Context(), image.PublicID); err != nil {
		log.Printf("ERROR: Blob removal failed for image %s (%s): %v", imageID, image.PublicID, err)
		respondError(w, http.StatusBadGateway, "Error deleting image")
		return
	}

	deleted, err := s.store.DeleteImage(r.Context(), imageID, claims.UserID)
	if err != nil {
		log.Printf("ERROR: Failed to delete image record %s: %v", imageID, err)
		respondError(w, http.StatusInternalServerError, "Error deleting image")
		return
	}
	if !deleted {
		// A concurrent delete already removed the row.
		respondError(w, http.StatusNotFound, "Image not found or access denied")
		return
	}

	if err := s.store.LogEvent(r.Context(), claims.UserID, "image_deleted", map[string]string{"id": imageID}); err != nil {
		log.Printf("WARN: Failed to log image_deleted event: %v", err)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Image deleted successfully",
	})
}
