package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	cookieName = "herdbook_flash"
	contextKey = "herdbook_flash"
)

type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Add queues a message for the next rendered page. Messages ride in a
// short-lived cookie so they survive the redirect after a mutation, and
// in the request context so a render in the same request sees them too.
func Add(c echo.Context, category, text string) {
	messages := peek(c)
	messages = append(messages, Message{Category: category, Text: text})
	c.Set(contextKey, messages)
	write(c, messages)
}

// Pop returns the queued messages and clears them.
func Pop(c echo.Context) []Message {
	messages := peek(c)
	if len(messages) > 0 {
		c.Set(contextKey, []Message{})
		c.SetCookie(&http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	}
	return messages
}

func peek(c echo.Context) []Message {
	if messages, ok := c.Get(contextKey).([]Message); ok {
		return messages
	}
	ck, err := c.Cookie(cookieName)
	if err != nil || ck.Value == "" {
		return nil
	}
	raw, err := base64.URLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}

func write(c echo.Context, messages []Message) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:  cookieName,
		Value: base64.URLEncoding.EncodeToString(raw),
		Path:  "/",
	})
}
