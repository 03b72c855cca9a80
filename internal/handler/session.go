package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionCookieName carries the opaque participant identity between
// requests. Plain bearer-token-by-cookie: no signing, no expiry, no
// revocation.
const sessionCookieName = "session_id"

// sessionID returns the caller's session identifier.  When the cookie
// is absent a fresh 128-bit identifier is minted and set on the
// response so subsequent requests authenticate as the same participant.
func sessionID(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{Name: sessionCookieName, Value: id, Path: "/"})
	return id
}

// requestSessionID reads the session cookie without minting a new
// identifier.  Voting uses this: a caller with no session cannot be a
// participant and minting one would not change that.
func requestSessionID(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookieName); err == nil {
		return ck.Value
	}
	return ""
}
