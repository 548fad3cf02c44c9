package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/memgame/memory-backend/internal/store"
)

const writeTimeout = 5 * time.Second

// Handler serves the live-update stream. The connection is one-way: after
// the upgrade the client only listens, starting with an InitState snapshot
// and then every event the engine broadcasts to this player. Dropping the
// connection only detaches this player's subscription; in-flight game
// mutations are unaffected.
func Handler(st *store.Store, log *zap.Logger, originPatterns []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := tokenFrom(r)
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		// Reject unknown tokens before upgrading.
		if res, err := st.Ping(token); err != nil || !res.TokenValid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: originPatterns,
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "stream closed")

		ch, id, err := st.Subscribe(token)
		if err != nil {
			// Session vanished between the check and the subscribe.
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}
		defer st.Unsubscribe(token, id)

		log.Info("stream opened")

		// No client messages are expected; CloseRead watches for the
		// connection going away while we write.
		ctx := conn.CloseRead(r.Context())

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "bye")
				return
			case ev, ok := <-ch:
				if !ok {
					// Replaced by a newer subscription or the session
					// was deleted.
					conn.Close(websocket.StatusNormalClosure, "subscription closed")
					return
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					log.Error("marshal event", zap.Error(err))
					continue
				}
				wctx, cancel := context.WithTimeout(ctx, writeTimeout)
				err = conn.Write(wctx, websocket.MessageText, payload)
				cancel()
				if err != nil {
					return
				}
			}
		}
	}
}

func tokenFrom(r *http.Request) string {
	if c, err := r.Cookie("memory_token"); err == nil {
		return c.Value
	}
	// Browsers cannot always attach cookies to cross-origin websocket
	// upgrades; allow the token as a query parameter too.
	return r.URL.Query().Get("token")
}
