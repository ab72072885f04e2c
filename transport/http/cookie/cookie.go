package cookie

import (
	"net/http"
	"strings"

	"todolist/config"
)

// Token writes and reads the HTTP-only cookie carrying the access token.
type Token struct {
	name     string
	domain   string
	secure   bool
	sameSite http.SameSite
}

func New(cfg *config.Config) Token {
	return Token{
		name:     cfg.Cookie.Name,
		domain:   cfg.Cookie.Domain,
		secure:   cfg.Cookie.Secure,
		sameSite: parseSameSite(cfg.Cookie.SameSite),
	}
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Set stores token for maxAge seconds.
func (t Token) Set(writer http.ResponseWriter, token string, maxAge int64) {
	http.SetCookie(writer, t.build(token, int(maxAge)))
}

// Clear expires the cookie in the browser.
func (t Token) Clear(writer http.ResponseWriter) {
	http.SetCookie(writer, t.build("", -1))
}

// Read returns the token carried by the request cookie, or an empty string.
func (t Token) Read(request *http.Request) string {
	c, err := request.Cookie(t.name)
	if err != nil {
		return ""
	}

	return c.Value
}

func (t Token) build(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     t.name,
		Value:    value,
		Path:     "/",
		Domain:   t.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   t.secure || t.sameSite == http.SameSiteNoneMode,
		SameSite: t.sameSite,
	}
}
