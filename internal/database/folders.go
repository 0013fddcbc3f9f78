package database

import (
	"context"
	"errors"
	"time"

	"menedzer-dysku/internal/models"

	"github.com/jackc/pgx/v5"
)

type CreateFolderParams struct {
	ID       string
	OwnerID  int64
	ParentID *string
	Name     string
}

// CreateFolder inserts a folder without checking that ParentID exists or
// belongs to the owner. Listing is always scoped by owner, so a bad parent
// reference only produces an unreachable folder.
func (q *Queries) CreateFolder(ctx context.Context, arg CreateFolderParams) (*models.Folder, error) {
	query := `
		INSERT INTO folders (id, owner_id, parent_id, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, parent_id, name, created_at
	`
	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.OwnerID,
		arg.ParentID,
		arg.Name,
		time.Now(),
	)

	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.ParentID,
		&folder.Name,
		&folder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &folder, nil
}

// GetFolderByID filters by both id and owner so a folder owned by someone
// else is indistinguishable from a missing one.
func (q *Queries) GetFolderByID(ctx context.Context, id string, ownerID int64) (*models.Folder, error) {
	query := `
		SELECT id, owner_id, parent_id, name, created_at
		FROM folders
		WHERE id = $1 AND owner_id = $2
	`
	var folder models.Folder

	err := q.db.QueryRow(ctx, query, id, ownerID).Scan(
		&folder.ID,
		&folder.OwnerID,
		&folder.ParentID,
		&folder.Name,
		&folder.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &folder, nil
}

func (q *Queries) ListRootFolders(ctx context.Context, ownerID int64) ([]models.Folder, error) {
	query := `
		SELECT id, owner_id, parent_id, name, created_at
		FROM folders
		WHERE owner_id = $1 AND parent_id IS NULL
		ORDER BY created_at
	`
	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFolders(rows)
}

// ListSubfolders does not check that the parent itself exists or is owned
// by the caller; children of a deleted folder stay enumerable this way.
func (q *Queries) ListSubfolders(ctx context.Context, ownerID int64, parentID string) ([]models.Folder, error) {
	query := `
		SELECT id, owner_id, parent_id, name, created_at
		FROM folders
		WHERE owner_id = $1 AND parent_id = $2
		ORDER BY created_at
	`
	rows, err := q.db.Query(ctx, query, ownerID, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFolders(rows)
}

// DeleteFolder removes exactly one row, scoped by owner. There is no
// cascade: child folders and contained images keep their records.
func (q *Queries) DeleteFolder(ctx context.Context, id string, ownerID int64) (bool, error) {
	query := `DELETE FROM folders WHERE id = $1 AND owner_id = $2`
	res, err := q.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) FolderExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM folders WHERE id = $1)"
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanFolders(rows pgx.Rows) ([]models.Folder, error) {
	var folders []models.Folder
	for rows.Next() {
		var folder models.Folder
		err := rows.Scan(
			&folder.ID,
			&folder.OwnerID,
			&folder.ParentID,
			&folder.Name,
			&folder.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if folders == nil {
		return []models.Folder{}, nil
	}

	return folders, nil
}
