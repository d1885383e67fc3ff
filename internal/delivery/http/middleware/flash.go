package middleware

import (
	"encoding/json"
	"time"

	"creovibe/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const flashKey = "flashes"

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FlashStore keeps one-shot messages in a fiber session between a redirect
// and the next render.
type FlashStore struct {
	store *session.Store
}

// NewFlashStore uses the in-memory session storage when storage is nil.
func NewFlashStore(storage fiber.Storage, secure bool) *FlashStore {
	return &FlashStore{store: session.New(session.Config{
		Storage:        storage,
		Expiration:     time.Hour,
		KeyLookup:      "cookie:" + constants.FlashCookieName,
		CookiePath:     "/",
		CookieSecure:   secure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})}
}

// Push appends a message for the next Pop.
func (f *FlashStore) Push(c *fiber.Ctx, kind, message string) error {
	sess, err := f.store.Get(c)
	if err != nil {
		return err
	}
	flashes := decodeFlashes(sess.Get(flashKey))
	flashes = append(flashes, Flash{Kind: kind, Message: message})

	raw, err := json.Marshal(flashes)
	if err != nil {
		return err
	}
	sess.Set(flashKey, string(raw))
	return sess.Save()
}

// Pop returns the pending messages and drops the session. Storage errors
// yield no messages.
func (f *FlashStore) Pop(c *fiber.Ctx) []Flash {
	sess, err := f.store.Get(c)
	if err != nil {
		return nil
	}
	flashes := decodeFlashes(sess.Get(flashKey))
	if len(flashes) == 0 {
		return nil
	}
	_ = sess.Destroy()
	return flashes
}

func decodeFlashes(v interface{}) []Flash {
	raw, ok := v.(string)
	if !ok || raw == "" {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		return nil
	}
	return flashes
}
