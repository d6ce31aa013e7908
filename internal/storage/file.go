package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persiste les clés dans un fichier JSON unique. C'est le
// backend par défaut : l'analogue direct du localStorage du navigateur.
type FileStore struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, data: make(map[string]string)}

	// Lecture unique au démarrage ; un fichier absent ou corrompu
	// équivaut à un stockage vide.
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			log.Printf("⚠️ Stockage local corrompu (%s), on repart de zéro: %v", path, err)
			s.data = make(map[string]string)
		}
	}

	return s
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flush()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]string)
	return s.flush()
}

// flush réécrit le fichier entier. Appelé sous verrou.
func (s *FileStore) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}
