package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/drivingschool/admin/internal/app/models/dto"
	"github.com/drivingschool/admin/internal/pkg/logger"
	"github.com/drivingschool/admin/internal/session"
)

const (
	sessionIDKey    = "sessionID"
	sessionStateKey = "sessionState"

	sessionSaveTimeout = 5 * time.Second
)

// SessionOptions configures the session cookie
type SessionOptions struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Sessions attaches the caller's screen state to the request and saves it once the handler returns.
// A missing or malformed cookie starts a fresh session.
func Sessions(store session.Store, opts SessionOptions) gin.HandlerFunc {
	lgr := logger.Component("session")
	return func(c *gin.Context) {
		id, err := c.Cookie(opts.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}

		state, err := store.Load(c.Request.Context(), id)
		switch {
		case errors.Is(err, session.ErrNotFound):
			state = &session.State{}
		case err != nil:
			lgr.Error().Err(err).Str("session", id).Msg("Failed to load session")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Session store unavailable")))
			return
		}

		c.Set(sessionIDKey, id)
		c.Set(sessionStateKey, state)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, id, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)

		c.Next()

		// The client may already be gone; the state still has to be written.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), sessionSaveTimeout)
		defer cancel()
		if err := store.Save(ctx, id, state); err != nil {
			lgr.Error().Err(err).Str("session", id).Msg("Failed to save session")
		}
	}
}

// SessionState returns the state attached by Sessions
func SessionState(c *gin.Context) *session.State {
	if v, ok := c.Get(sessionStateKey); ok {
		if state, ok := v.(*session.State); ok {
			return state
		}
	}
	// Handlers mounted without Sessions get a throwaway state.
	state := &session.State{}
	c.Set(sessionStateKey, state)
	return state
}

// SessionID returns the id of the current session
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
