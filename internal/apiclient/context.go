package apiclient

import (
	"context"
	"net/http"
)

type contextKey string

const contextKeyCookies contextKey = "apiCookies"

// WithCookies attaches the caller's credentials to ctx. Only credentialed
// requests send them.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, contextKeyCookies, cookies)
}

func cookiesFromContext(ctx context.Context) []*http.Cookie {
	cookies, _ := ctx.Value(contextKeyCookies).([]*http.Cookie)
	return cookies
}

// ForwardCookies picks the named cookies off an incoming request.
func ForwardCookies(r *http.Request, names []string) []*http.Cookie {
	var out []*http.Cookie
	for _, name := range names {
		if cookie, err := r.Cookie(name); err == nil {
			out = append(out, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}
	return out
}
