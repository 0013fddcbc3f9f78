package database

import (
	"context"
	"errors"
	"time"

	"menedzer-dysku/internal/models"

	"github.com/jackc/pgx/v5"
)

type CreateImageParams struct {
	ID       string
	OwnerID  int64
	FolderID string
	Name     string
	URL      string
	PublicID string
}

// CreateImage is only called after the blob backend confirmed storage, so
// a row always points at an object that existed at insert time.
func (q *Queries) CreateImage(ctx context.Context, arg CreateImageParams) (*models.Image, error) {
	query := `
		INSERT INTO images (id, owner_id, folder_id, name, url, public_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, folder_id, name, url, public_id, created_at
	`
	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.OwnerID,
		arg.FolderID,
		arg.Name,
		arg.URL,
		arg.PublicID,
		time.Now(),
	)

	var image models.Image
	err := row.Scan(
		&image.ID,
		&image.OwnerID,
		&image.FolderID,
		&image.Name,
		&image.URL,
		&image.PublicID,
		&image.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &image, nil
}

func (q *Queries) GetImageByID(ctx context.Context, id string, ownerID int64) (*models.Image, error) {
	query := `
		SELECT id, owner_id, folder_id, name, url, public_id, created_at
		FROM images
		WHERE id = $1 AND owner_id = $2
	`
	var image models.Image

	err := q.db.QueryRow(ctx, query, id, ownerID).Scan(
		&image.ID,
		&image.OwnerID,
		&image.FolderID,
		&image.Name,
		&image.URL,
		&image.PublicID,
		&image.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &image, nil
}

func (q *Queries) ListImagesByFolder(ctx context.Context, ownerID int64, folderID string) ([]models.Image, error) {
	query := `
		SELECT id, owner_id, folder_id, name, url, public_id, created_at
		FROM images
		WHERE owner_id = $1 AND folder_id = $2
		ORDER BY created_at
	`
	rows, err := q.db.Query(ctx, query, ownerID, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var image models.Image
		err := rows.Scan(
			&image.ID,
			&image.OwnerID,
			&image.FolderID,
			&image.Name,
			&image.URL,
			&image.PublicID,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if images == nil {
		return []models.Image{}, nil
	}

	return images, nil
}

func (q *Queries) DeleteImage(ctx context.Context, id string, ownerID int64) (bool, error) {
	query := `DELETE FROM images WHERE id = $1 AND owner_id = $2`
	res, err := q.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) ImageExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM images WHERE id = $1)"
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
