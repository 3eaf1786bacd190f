// Package portal drives the legacy scheduling portal: a session
// authenticated, form-posting HTML application whose "currently selected
// site" lives in server-side session state. The client owns its cookie
// jar and follows redirects itself, because the portal issues session
// cookies mid-redirect and the transport-default redirect handling would
// drop them before the next hop.
package portal

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const maxRedirects = 10

type Client struct {
	baseURL  string
	username string
	password string
	http     *resty.Client
	cookies  map[string]string
	loggedIn bool
}

type ClientOptions struct {
	BaseURL        string
	Username       string
	Password       string
	RequestTimeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.SetTimeout(opts.RequestTimeout)
	client.SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	// redirects are followed manually in do(), so cookies set on a 3xx are
	// merged into the jar before the next hop goes out
	client.GetClient().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		username: opts.Username,
		password: opts.Password,
		http:     client,
		cookies:  map[string]string{},
	}
}

// Login posts the credential pair and follows the resulting redirect
// chain. It returns false when the portal rejects the credentials (a
// redirect back to the login page); only network-level faults are errors.
func (c *Client) Login(ctx context.Context) (bool, error) {
	form := url.Values{}
	form.Set("user_session[email]", c.username)
	form.Set("user_session[password]", c.password)

	res, err := c.do(ctx, http.MethodPost, "/login", form)
	if err != nil {
		return false, fmt.Errorf("login request: %w", err)
	}

	finalPath := res.RawResponse.Request.URL.Path
	if !res.IsSuccess() || strings.HasSuffix(finalPath, "/login") {
		return false, nil
	}

	c.loggedIn = true
	return true, nil
}

func (c *Client) LoggedIn() bool {
	return c.loggedIn
}

// get issues a GET through the session, following redirects manually.
func (c *Client) get(ctx context.Context, path string) (*resty.Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// postForm issues a form-encoded POST through the session, following
// redirects manually.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*resty.Response, error) {
	return c.do(ctx, http.MethodPost, path, form)
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) (*resty.Response, error) {
	target := c.absoluteURL(path)

	for hop := 0; hop <= maxRedirects; hop++ {
		req := c.http.R().SetContext(ctx)
		if header := c.cookieHeader(); header != "" {
			req.SetHeader("Cookie", header)
		}
		if method == http.MethodPost {
			req.SetHeader("Content-Type", "application/x-www-form-urlencoded")
			req.SetBody(form.Encode())
		}

		res, err := req.Execute(method, target)
		if err != nil {
			return nil, err
		}

		c.storeCookies(res)

		location := res.Header().Get("Location")
		if res.StatusCode() >= 300 && res.StatusCode() < 400 && location != "" {
			target = c.absoluteURL(location)
			// the portal redirects POSTs to plain pages; re-issue as GET
			method = http.MethodGet
			form = nil
			continue
		}

		return res, nil
	}

	return nil, fmt.Errorf("too many redirects for %s", path)
}

func (c *Client) storeCookies(res *resty.Response) {
	for _, cookie := range res.RawResponse.Cookies() {
		if cookie.Name == "" {
			continue
		}
		c.cookies[cookie.Name] = cookie.Value
	}
}

func (c *Client) cookieHeader() string {
	if len(c.cookies) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(c.cookies))
	for name, value := range c.cookies {
		pairs = append(pairs, name+"="+value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "; ")
}

func (c *Client) absoluteURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func logRequestFailure(op string, err error) {
	slog.Error("portal request failed", "op", op, "error", err)
}
