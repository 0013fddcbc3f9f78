package api

import (
	"menedzer-dysku/internal/config"
	"menedzer-dysku/internal/database"
	"menedzer-dysku/internal/storage"
	"menedzer-dysku/internal/websocket"
)

type Server struct {
	config *config.Config
	store  *database.PostgresStore
	blobs  storage.BlobStore
	wsHub  *websocket.Hub
}

func NewServer(cfg *config.Config, store *database.PostgresStore, blobs storage.BlobStore, wsHub *websocket.Hub) *Server {
	return &Server{
		config: cfg,
		store:  store,
		blobs:  blobs,
		wsHub:  wsHub,
	}
}
