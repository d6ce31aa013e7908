package main

import (
	"context"
	"log"

	"cedra_front_end/internal/api"
	"cedra_front_end/internal/config"
	"cedra_front_end/internal/handlers"
	"cedra_front_end/internal/routes"
	"cedra_front_end/internal/session"
	"cedra_front_end/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func main() {
	config.Load()

	store := initStorage()

	// Identifiant stable de cette installation cliente, envoyé au
	// backend dans X-Client-ID.
	clientID, ok := store.Get(storage.KeyClientID)
	if !ok || clientID == "" {
		clientID = uuid.NewString()
		if err := store.Set(storage.KeyClientID, clientID); err != nil {
			log.Printf("⚠️ Échec persistance clientId: %v", err)
		}
	}

	// Le store de session est construit une fois et injecté partout :
	// pas d'état global.
	sess := session.New(store)
	backend := api.New(config.APIBaseURL(), sess.Token, clientID)
	sess.AttachBackend(backend)

	// Résolution de la session avant de servir la moindre page.
	sess.Hydrate(context.Background())

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterRoutes(r, handlers.New(sess, backend), sess)

	log.Println("🚀 Client Cedra lancé sur le port", config.Port())
	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatalf("❌ Serveur arrêté: %v", err)
	}
}

// initStorage choisit le miroir local : fichier JSON par défaut,
// Redis pour les déploiements hébergés.
func initStorage() storage.Store {
	if config.StorageBackend() == "redis" {
		st, err := storage.NewRedisStore(config.RedisHost(), config.RedisPassword(), "cedra_front")
		if err != nil {
			log.Fatalf("❌ Échec initialisation Redis: %v", err)
		}
		return st
	}

	log.Printf("✅ Stockage local: %s", config.StoragePath())
	return storage.NewFileStore(config.StoragePath())
}
