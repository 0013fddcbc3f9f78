package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"menedzer-dysku/internal/database"

	"github.com/go-chi/chi/v5"
	"github.com/jaevor/go-nanoid"
)

type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

func generateUniqueID(ctx context.Context, exists func(context.Context, string) (bool, error)) (string, error) {
	maxRetries := 10

	generateID, err := nanoid.Standard(21)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		id := generateID()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check id existence: %w", err)
		}
		if !taken {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "Folder name cannot be empty")
		return
	}

	folderID, err := generateUniqueID(r.Context(), s.store.FolderExists)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating folder")
		return
	}

	// ParentID is stored as given. A parent that does not exist or belongs
	// to another user only yields a folder unreachable from any listing.
	folder, err := s.store.CreateFolder(r.Context(), database.CreateFolderParams{
		ID:       folderID,
		OwnerID:  claims.UserID,
		ParentID: req.ParentID,
		Name:     req.Name,
	})
	if err != nil {
		log.Printf("ERROR: Failed to create folder for user %d: %v", claims.UserID, err)
		respondError(w, http.StatusInternalServerError, "Error creating folder")
		return
	}

	if err := s.store.LogEvent(r.Context(), claims.UserID, "folder_created", folder); err != nil {
		log.Printf("WARN: Failed to log folder_created event: %v", err)
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Folder created",
		"folder":  folder,
	})
}

func (s *Server) ListRootFoldersHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	folders, err := s.store.ListRootFolders(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("ERROR: Failed to list root folders for user %d: %v", claims.UserID, err)
		respondError(w, http.StatusInternalServerError, "Error fetching folders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"folders": folders,
	})
}

func (s *Server) GetFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	folderID := chi.URLParam(r, "folderId")

	folder, err := s.store.GetFolderByID(r.Context(), folderID, claims.UserID)
	if err != nil {
		log.Printf("ERROR: Failed to fetch folder %s: %v", folderID, err)
		respondError(w, http.StatusInternalServerError, "Error fetching folder")
		return
	}
	if folder == nil {
		respondError(w, http.StatusNotFound, "Folder not found or access denied")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"folder":  folder,
	})
}

func (s *Server) ListSubfoldersHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	parentID := chi.URLParam(r, "parentId")

	folders, err := s.store.ListSubfolders(r.Context(), claims.UserID, parentID)
	if err != nil {
		log.Printf("ERROR: Failed to list subfolders of %s: %v", parentID, err)
		respondError(w, http.StatusInternalServerError, "Error fetching subfolders")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"folders": folders,
	})
}

func (s *Server) DeleteFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	folderID := chi.URLParam(r, "parentId")

	deleted, err := s.store.DeleteFolder(r.Context(), folderID, claims.UserID)
	if err != nil {
		log.Printf("ERROR: Failed to delete folder %s: %v", folderID, err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Folder not found")
		return
	}

	if err := s.store.LogEvent(r.Context(), claims.UserID, "folder_deleted", map[string]string{"id": folderID}); err != nil {
		log.Printf("WARN: Failed to log folder_deleted event: %v", err)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Folder deleted successfully",
	})
}
