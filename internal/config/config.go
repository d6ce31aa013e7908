package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// APIBaseURL renvoie l'URL de base de l'API backend Cedra.
func APIBaseURL() string {
	if url := os.Getenv("API_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:8080/api"
}

// Port du serveur local servant l'UI.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}

// StorageBackend : "file" (défaut) ou "redis".
func StorageBackend() string {
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		return backend
	}
	return "file"
}

// StoragePath est le chemin du fichier miroir du stockage local.
func StoragePath() string {
	if path := os.Getenv("STORAGE_PATH"); path != "" {
		return path
	}
	return ".cedra/storage.json"
}

func RedisHost() string {
	return os.Getenv("REDIS_HOST")
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}
