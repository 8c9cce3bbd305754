// visitor.go - anonymous visitor ids for remembering the theme
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/logging"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/theme"
)

const (
	visitorCookie = "folio_visitor"
	visitorKey    = "visitor"

	// themeCookie carries the theme itself for visitors without a stored
	// preference (DNT, or no database). It identifies nobody.
	themeCookie = "folio_theme"

	// Preferences untouched this long are deleted at startup.
	preferenceRetention = 365 * 24 * time.Hour
)

func generateSalt() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// hashVisitor turns the cookie id into the storage key, so the database
// never holds the value the browser sends.
func hashVisitor(id, salt string) string {
	hash := sha256.New()
	hash.Write([]byte(id + salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// visitorMiddleware assigns a visitor cookie and stores the hashed id on
// the context. Requests with DNT: 1 get no cookie and no stored preference.
func (s *site) visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if err != nil || !validVisitorID(id) {
			id = uuid.NewString()
			c.SetCookie(visitorCookie, id, int(preferenceRetention.Seconds()), "/", "", false, true)
		}
		c.Set(visitorKey, hashVisitor(id, s.salt))
		c.Next()
	}
}

func validVisitorID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// preference loads the theme for this request's visitor. Visitors without
// a stored preference get the theme cookie, else the browser's color scheme.
func (s *site) preference(c *gin.Context) *theme.Preference {
	def := theme.FromColorScheme(c.GetHeader("Sec-CH-Prefers-Color-Scheme"))
	if !s.remembers(c) {
		if v, err := c.Cookie(themeCookie); err == nil {
			if t, ok := theme.Parse(v); ok {
				def = t
			}
		}
		return theme.Init(c.Request.Context(), nil, "", def)
	}
	return theme.Init(c.Request.Context(), s.prefs, c.GetString(visitorKey), def)
}

// remembers reports whether this visitor's theme is kept in the store.
func (s *site) remembers(c *gin.Context) bool {
	return s.prefs != nil && c.GetString(visitorKey) != ""
}

// rememberInCookie keeps t in the browser for visitors the store does not
// cover.
func (s *site) rememberInCookie(c *gin.Context, t theme.Theme) {
	if s.remembers(c) {
		return
	}
	c.SetCookie(themeCookie, string(t), int(preferenceRetention.Seconds()), "/", "", false, true)
}

// purgePreferences deletes stale preference rows.
func purgePreferences(ctx context.Context, st *store.Store) {
	n, err := st.Purge(ctx, preferenceRetention)
	if err != nil {
		logging.Error("Error cleaning up old preferences", zap.Error(err))
		return
	}
	if n > 0 {
		logging.Info("Removed stale theme preferences", zap.Int64("rows", n))
	}
}
