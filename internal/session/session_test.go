package session_test

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cedra_front_end/internal/models"
	"cedra_front_end/internal/session"
	"cedra_front_end/internal/storage"
)

// fakeBackend simule l'API backend avec des comportements injectables
// par fonction. Les compteurs permettent de vérifier qu'un flux invité
// ne touche jamais le réseau.
type fakeBackend struct {
	fetchCart   func(ctx context.Context) ([]models.CartItem, error)
	addItem     func(ctx context.Context, productID string, modelID, colorID *string) error
	removeItem  func(ctx context.Context, productID string, modelID, colorID *string) error
	fetchList   func(ctx context.Context) ([]models.WishlistItem, error)
	clearList   func(ctx context.Context) error
	addCalls    atomic.Int32
	removeCalls atomic.Int32
	fetchCalls  atomic.Int32
}

func (f *fakeBackend) FetchCart(ctx context.Context) ([]models.CartItem, error) {
	f.fetchCalls.Add(1)
	if f.fetchCart == nil {
		return nil, nil
	}
	return f.fetchCart(ctx)
}

func (f *fakeBackend) AddWishlistItem(ctx context.Context, productID string, modelID, colorID *string) error {
	f.addCalls.Add(1)
	if f.addItem == nil {
		return nil
	}
	return f.addItem(ctx, productID, modelID, colorID)
}

func (f *fakeBackend) RemoveWishlistItem(ctx context.Context, productID string, modelID, colorID *string) error {
	f.removeCalls.Add(1)
	if f.removeItem == nil {
		return nil
	}
	return f.removeItem(ctx, productID, modelID, colorID)
}

func (f *fakeBackend) FetchWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	if f.fetchList == nil {
		return nil, nil
	}
	return f.fetchList(ctx)
}

func (f *fakeBackend) ClearWishlist(ctx context.Context) error {
	if f.clearList == nil {
		return nil
	}
	return f.clearList(ctx)
}

func networkCalls(f *fakeBackend) int32 {
	return f.addCalls.Load() + f.removeCalls.Load() + f.fetchCalls.Load()
}

// newTestStore construit un store adossé à un miroir fichier réel dans
// un répertoire temporaire. On n'utilise pas t.TempDir() : Login lance
// une goroutine de réconciliation qui peut réécrire storage.json pendant
// le nettoyage du test, et le RemoveAll strict de t.TempDir échouerait.
func newTestStore(t *testing.T, backend session.Backend) (*session.Store, storage.Store) {
	t.Helper()
	dir, err := os.MkdirTemp("", "session_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	st := storage.NewFileStore(dir + "/storage.json")
	s := session.New(st)
	if backend != nil {
		s.AttachBackend(backend)
	}
	return s, st
}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "u1",
		"email":   "client@cedra.test",
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret_test"))
	require.NoError(t, err)
	return token
}

func TestHydrate(t *testing.T) {
	t.Parallel()

	t.Run("stockage vide donne une session invité résolue", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		s, _ := newTestStore(t, backend)

		require.True(t, s.Session().IsLoading)
		s.Hydrate(context.Background())

		sess := s.Session()
		assert.False(t, sess.IsLoading)
		assert.False(t, sess.IsAuthenticated)
		assert.Nil(t, sess.User)
		assert.Empty(t, s.Cart())
		assert.Empty(t, s.Wishlist())
		assert.Zero(t, networkCalls(backend), "le mode invité ne fait aucun appel réseau")
	})

	t.Run("panier stocké corrompu se dégrade en panier vide", func(t *testing.T) {
		t.Parallel()

		s, st := newTestStore(t, &fakeBackend{})
		require.NoError(t, st.Set(storage.KeyCart, "{pas du json"))

		s.Hydrate(context.Background())

		assert.False(t, s.Session().IsLoading, "isLoading doit être levé même sur échec")
		assert.Empty(t, s.Cart())
	})

	t.Run("token expiré retombe en mode invité", func(t *testing.T) {
		t.Parallel()

		s, st := newTestStore(t, &fakeBackend{})
		require.NoError(t, st.Set(storage.KeyToken, signedToken(t, -time.Hour)))
		require.NoError(t, st.Set(storage.KeyUser, `{"user_id":"u1","email":"client@cedra.test"}`))

		s.Hydrate(context.Background())

		sess := s.Session()
		assert.False(t, sess.IsAuthenticated)
		_, ok := st.Get(storage.KeyToken)
		assert.False(t, ok, "le token périmé est purgé du stockage")
	})

	t.Run("token et profil valides restaurent la session et réconcilient le panier", func(t *testing.T) {
		t.Parallel()

		serverCart := []models.CartItem{{ProductID: "P9", Name: "Lampe", Price: 20, Quantity: 1}}
		backend := &fakeBackend{
			fetchCart: func(context.Context) ([]models.CartItem, error) { return serverCart, nil },
		}
		s, st := newTestStore(t, backend)
		require.NoError(t, st.Set(storage.KeyToken, signedToken(t, time.Hour)))
		require.NoError(t, st.Set(storage.KeyUser, `{"user_id":"u1","email":"client@cedra.test","role":"admin"}`))
		require.NoError(t, st.Set(storage.KeyCart, `[{"product_id":"LOCAL","quantity":1}]`))

		s.Hydrate(context.Background())

		sess := s.Session()
		require.True(t, sess.IsAuthenticated)
		assert.True(t, s.IsAdmin())

		// La réconciliation est asynchrone : le panier serveur finit par
		// remplacer la version locale.
		assert.Eventually(t, func() bool {
			cart := s.Cart()
			return len(cart) == 1 && cart[0].ProductID == "P9"
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("persiste token et profil et redirige vers l'accueil", func(t *testing.T) {
		t.Parallel()

		s, st := newTestStore(t, &fakeBackend{})
		user := &models.User{ID: "u1", Email: "client@cedra.test"}

		redirect := s.Login("tok123", user)

		assert.Equal(t, "/", redirect)
		token, _ := st.Get(storage.KeyToken)
		assert.Equal(t, "tok123", token)
		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, "tok123", s.Token())
	})

	t.Run("honore returnAfterLogin puis consomme la clé", func(t *testing.T) {
		t.Parallel()

		s, st := newTestStore(t, &fakeBackend{})
		s.RememberReturnTo("/checkout")

		redirect := s.Login("tok123", &models.User{ID: "u1"})

		assert.Equal(t, "/checkout", redirect)
		_, ok := st.Get(storage.KeyReturnAfterLogin)
		assert.False(t, ok)
	})

	t.Run("réussit même si la réconciliation serveur échoue", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			fetchCart: func(context.Context) ([]models.CartItem, error) {
				return nil, assert.AnError
			},
		}
		s, _ := newTestStore(t, backend)
		s.AddToCart(models.CartItem{ProductID: "P1", Quantity: 2})

		redirect := s.Login("tok123", &models.User{ID: "u1"})

		assert.Equal(t, "/", redirect)
		assert.True(t, s.IsAuthenticated())

		assert.Eventually(t, func() bool { return backend.fetchCalls.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
		// Échec de synchro : le panier local reste intact.
		require.Len(t, s.Cart(), 1)
		assert.Equal(t, "P1", s.Cart()[0].ProductID)
	})

	t.Run("rejoue l'article en attente après la réconciliation", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			fetchCart: func(context.Context) ([]models.CartItem, error) {
				return []models.CartItem{{ProductID: "SRV", Quantity: 1}}, nil
			},
		}
		s, st := newTestStore(t, backend)
		s.RememberPendingCartItem(models.CartItem{ProductID: "PEND", Quantity: 1})

		s.Login("tok123", &models.User{ID: "u1"})

		assert.Eventually(t, func() bool {
			ids := map[string]bool{}
			for _, item := range s.Cart() {
				ids[item.ProductID] = true
			}
			return ids["SRV"] && ids["PEND"]
		}, 2*time.Second, 10*time.Millisecond)

		_, ok := st.Get(storage.KeyPendingCartItem)
		assert.False(t, ok, "la clé transitoire est consommée")
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("purge mémoire, stockage et clés transitoires", func(t *testing.T) {
		t.Parallel()

		s, st := newTestStore(t, &fakeBackend{})
		s.Login("tok123", &models.User{ID: "u1"})
		s.AddToCart(models.CartItem{ProductID: "P1", Quantity: 1})
		s.RememberReturnTo("/cart")
		s.RememberPendingCartItem(models.CartItem{ProductID: "P2", Quantity: 1})

		redirect := s.Logout()

		assert.Equal(t, "/login", redirect)
		assert.False(t, s.IsAuthenticated())
		assert.Empty(t, s.Cart())
		assert.Empty(t, s.Wishlist())
		for _, key := range []string{
			storage.KeyToken, storage.KeyUser, storage.KeyCart, storage.KeyWishlist,
			storage.KeyPendingCartItem, storage.KeyReturnAfterLogin,
		} {
			_, ok := st.Get(key)
			assert.False(t, ok, "clé %s encore présente après logout", key)
		}
	})

	t.Run("jette une réconciliation encore en vol", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		backend := &fakeBackend{
			fetchCart: func(context.Context) ([]models.CartItem, error) {
				<-release
				return []models.CartItem{{ProductID: "STALE", Quantity: 1}}, nil
			},
		}
		s, _ := newTestStore(t, backend)
		s.Login("tok123", &models.User{ID: "u1"})

		done := make(chan error, 1)
		go func() { done <- s.ReconcileCartFromServer(context.Background()) }()

		// Logout pendant que la requête est en vol, puis la réponse arrive.
		assert.Eventually(t, func() bool { return backend.fetchCalls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
		s.Logout()
		close(release)

		require.NoError(t, <-done)
		assert.Empty(t, s.Cart(), "la réponse périmée ne doit pas repeupler le panier")
	})
}

func TestDerivedGetters(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, &fakeBackend{})
	assert.False(t, s.IsAdmin())
	assert.Nil(t, s.CurrentUser())

	s.Login("tok", &models.User{ID: "u1", Role: "admin"})
	assert.True(t, s.IsAdmin())
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, "u1", s.CurrentUser().ID)

	s.Logout()
	assert.False(t, s.IsAdmin())
}
