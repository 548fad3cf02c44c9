package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/memgame/memory-backend/internal/engine"
	"github.com/memgame/memory-backend/internal/store"
)

// Cookie names the browser client presents its credentials under.
const (
	CookieMasterKey = "master_key"
	CookieToken     = "memory_token"
)

const tokenCookieMaxAge = 1209600 // two weeks

type api struct {
	store *store.Store
	log   *zap.Logger
}

// Ping answers status queries. A client that still holds a token from a
// deleted or replaced session gets 410 plus a cookie clear so it knows to
// rejoin.
func (a *api) Ping(w http.ResponseWriter, r *http.Request) {
	token := cookieValue(r, CookieToken)
	res, err := a.store.Ping(token)
	if err != nil {
		a.writeError(w, err)
		return
	}
	if token != "" && !res.TokenValid {
		a.log.Info("revoked stale token")
		http.SetCookie(w, &http.Cookie{
			Name:     CookieToken,
			Value:    "0",
			Path:     "/",
			MaxAge:   -1,
			SameSite: http.SameSiteNoneMode,
			Secure:   true,
		})
		writeJSON(w, http.StatusGone, res.SessionID)
		return
	}
	writeJSON(w, http.StatusOK, res.SessionID)
}

// CheckKey trades the admin key (sent as the raw query string) for the
// master_key cookie every admin call presents afterwards.
func (a *api) CheckKey(w http.ResponseWriter, r *http.Request) {
	key := r.URL.RawQuery
	if err := a.store.CheckKey(key); err != nil {
		a.writeError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieMasterKey,
		Value:    key,
		Path:     "/",
		MaxAge:   31536000,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusOK)
}

func (a *api) Create(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	if err := a.store.Create(cookieValue(r, CookieMasterKey), id); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, "Success!")
}

func (a *api) Delete(w http.ResponseWriter, r *http.Request) {
	if err := a.store.Delete(cookieValue(r, CookieMasterKey)); err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, "Success!")
}

func (a *api) Join(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}
	token, err := a.store.Join(name)
	if err != nil {
		a.writeError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieToken,
		Value:    token,
		Path:     "/",
		MaxAge:   tokenCookieMaxAge,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, struct {
		Token string `json:"token"`
	}{Token: token})
}

func (a *api) Ready(w http.ResponseWriter, r *http.Request) {
	status, err := a.store.Ready(cookieValue(r, CookieToken))
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, string(status))
}

func (a *api) Pick(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(r.URL.Query().Get("card"))
	if err != nil {
		http.Error(w, "missing or malformed card", http.StatusBadRequest)
		return
	}
	res, err := a.store.Pick(cookieValue(r, CookieToken), slot)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Img  string `json:"img"`
		Turn bool   `json:"turn"`
	}{Img: res.Image, Turn: res.Turn})
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (a *api) writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		a.log.Error("unhandled engine error", zap.Error(err))
	}
	http.Error(w, err.Error(), status)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrUnauthorized), errors.Is(err, engine.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNoGame):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, engine.ErrAlreadyRunning),
		errors.Is(err, engine.ErrDuplicateName),
		errors.Is(err, engine.ErrNotRunning),
		errors.Is(err, engine.ErrAlreadyFlipped):
		return http.StatusConflict
	case errors.Is(err, engine.ErrNotYourTurn):
		return http.StatusForbidden
	case errors.Is(err, engine.ErrInvalidCard):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
