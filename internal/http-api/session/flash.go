// Package session carries flash messages between a handler and the next page
// the browser renders.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie = "flash"
	flashKey    = "session.flashes"
	flashMaxAge = 60
	consumedKey = "session.flashesConsumed"
)

// Flash queues a message for the next rendered page.
func Flash(c *gin.Context, message string) {
	c.Set(flashKey, append(queued(c), message))
}

func queued(c *gin.Context) []string {
	if v, ok := c.Get(flashKey); ok {
		if messages, ok := v.([]string); ok {
			return messages
		}
	}
	return nil
}

// Flashes returns the messages carried over from the previous request
// followed by the ones queued in this one, and clears both.
func Flashes(c *gin.Context) []string {
	var messages []string
	if _, done := c.Get(consumedKey); !done {
		messages = readCookie(c)
		c.Set(consumedKey, true)
		if messages != nil {
			clearCookie(c)
		}
	}
	messages = append(messages, queued(c)...)
	c.Set(flashKey, []string(nil))
	return messages
}

// Redirect sends a 302 to location. Messages queued in this request are
// stored in a short-lived cookie so the target page can show them.
func Redirect(c *gin.Context, location string) {
	if messages := queued(c); len(messages) > 0 {
		if raw, err := json.Marshal(messages); err == nil {
			setCookie(c, base64.RawURLEncoding.EncodeToString(raw), flashMaxAge)
		}
		c.Set(flashKey, []string(nil))
	}
	c.Redirect(http.StatusFound, location)
}

func readCookie(c *gin.Context) []string {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}

func setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, value, maxAge, "/", "", false, true)
}

func clearCookie(c *gin.Context) {
	setCookie(c, "", -1)
}
