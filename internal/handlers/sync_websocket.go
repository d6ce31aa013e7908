package handlers

import (
	"log"
	"net/http"
	"time"

	"cedra_front_end/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Le serveur n'écoute qu'en local, l'UI vient de la même origine.
		return true
	},
}

// SyncWebSocket pousse l'état panier/liste d'envies vers l'UI à chaque
// mutation du store : badge panier, cœur wishlist, etc. se mettent à
// jour sans polling.
func (h *Handler) SyncWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	events, unsubscribe := h.Store.Subscribe()
	defer unsubscribe()

	conn.WriteJSON(gin.H{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	// État initial, puis un instantané par mutation.
	if err := h.writeSnapshot(conn, session.EventCart); err != nil {
		return
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := h.writeSnapshot(conn, ev.Kind); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) writeSnapshot(conn *websocket.Conn, kind session.EventKind) error {
	switch kind {
	case session.EventWishlist:
		items := h.Store.Wishlist()
		return conn.WriteJSON(gin.H{
			"type":  string(kind),
			"items": items,
			"count": len(items),
		})
	case session.EventSession:
		sess := h.Store.Session()
		return conn.WriteJSON(gin.H{
			"type":            string(kind),
			"isAuthenticated": sess.IsAuthenticated,
			"isAdmin":         sess.User.IsAdmin(),
		})
	default:
		return conn.WriteJSON(gin.H{
			"type":  string(session.EventCart),
			"items": h.Store.Cart(),
			"total": h.Store.CartTotal(),
			"count": h.Store.CartCount(),
		})
	}
}
