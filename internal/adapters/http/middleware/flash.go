package middleware

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

const flashCookieName = "aurafest_flash"

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Message string
	Kind    string // "success", "danger", "info"
}

// FlashCodec signs and encodes flash cookies so their content cannot be
// forged client-side.
type FlashCodec struct {
	sc     *securecookie.SecureCookie
	secure bool
}

// NewFlashCodec creates a FlashCodec signing with the given key. secure
// controls the Secure flag on the cookies it writes.
// PRE: key is a 32-byte secret
func NewFlashCodec(key []byte, secure bool) *FlashCodec {
	sc := securecookie.New(key, nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	return &FlashCodec{sc: sc, secure: secure}
}

// Set queues a flash notice for the next page load.
// POST: Signed flash cookie is set on the response
func (f *FlashCodec) Set(w http.ResponseWriter, message, kind string) {
	encoded, err := f.sc.Encode(flashCookieName, Flash{Message: message, Kind: kind})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   300,
	})
}

// Pop reads and clears the pending flash notice, if any.
// POST: Flash cookie is expired on the response
func (f *FlashCodec) Pop(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}, false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
	var flash Flash
	if err := f.sc.Decode(flashCookieName, cookie.Value, &flash); err != nil {
		return Flash{}, false
	}
	return flash, true
}
