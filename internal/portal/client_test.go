package portal

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	return NewClient(ClientOptions{
		BaseURL:        serverURL,
		Username:       "user@example.com",
		Password:       "secret",
		RequestTimeout: 5 * time.Second,
	})
}

func TestLoginCapturesCookiesAcrossRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "user@example.com", r.PostForm.Get("user_session[email]"))

		// session cookie is issued on the redirect itself
		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "abc123"})
		http.Redirect(w, r, "/member/home", http.StatusFound)
	})
	mux.HandleFunc("/member/home", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil || cookie.Value != "abc123" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		// a second cookie set after the redirect must also be captured
		http.SetCookie(w, &http.Cookie{Name: "site_pref", Value: "82"})
		fmt.Fprint(w, "<html>home</html>")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)

	ok, err := client.Login(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, client.LoggedIn())
	require.Equal(t, "abc123", client.cookies["session_id"])
	require.Equal(t, "82", client.cookies["site_pref"])
}

func TestLoginRejectedCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// invalid credentials bounce back to the login page
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		fmt.Fprint(w, "<html>login</html>")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)

	ok, err := client.Login(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.False(t, client.LoggedIn())
}

func TestLoginNetworkFault(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	serverURL := server.URL
	server.Close() // connection refused from here on

	client := testClient(serverURL)

	_, err := client.Login(context.Background())
	require.Error(t, err)
}

func TestDoStopsAfterTooManyRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.get(context.Background(), "/")
	require.Error(t, err)
	require.Contains(t, err.Error(), "too many redirects")
}

func TestCookieHeaderMergesJar(t *testing.T) {
	client := testClient("http://example.com")
	client.cookies["b"] = "2"
	client.cookies["a"] = "1"

	require.Equal(t, "a=1; b=2", client.cookieHeader())
}
