package portal

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Navigator walks the portal's member pages on top of a logged-in
// session. Every step reports failure through its return value instead of
// an error, so a caller can keep processing the remaining sites after one
// of them fails. Navigation is strictly sequential: the selected site is
// server-side session state shared by every request on this session.
type Navigator struct {
	client          *Client
	siteChangeDelay time.Duration
	pageLoadDelay   time.Duration
	currentSite     string
}

type ScheduleInfo struct {
	ID    string
	Title string
	Site  string
}

func NewNavigator(client *Client, siteChangeDelay, pageLoadDelay time.Duration) *Navigator {
	return &Navigator{
		client:          client,
		siteChangeDelay: siteChangeDelay,
		pageLoadDelay:   pageLoadDelay,
	}
}

// Login authenticates the underlying session client.
func (n *Navigator) Login(ctx context.Context) (bool, error) {
	return n.client.Login(ctx)
}

// ChangeSite switches the portal's selected site: navigate to the
// multi-site home page, wait the courtesy delay, then post the site
// selection form.
func (n *Navigator) ChangeSite(ctx context.Context, siteID, siteName string) bool {
	res, err := n.client.get(ctx, "/member/multi_site_schedule")
	if err != nil {
		logRequestFailure("navigate to home", err)
		return false
	}
	if !res.IsSuccess() {
		slog.Warn("home page returned non-success status", "status", res.StatusCode())
		return false
	}

	if !sleepCtx(ctx, n.siteChangeDelay) {
		return false
	}

	form := url.Values{}
	form.Set("site_id", siteID)

	res, err = n.client.postForm(ctx, "/member/change_selected_site", form)
	if err != nil {
		logRequestFailure("change selected site", err)
		return false
	}
	if !res.IsSuccess() {
		slog.Warn("site change returned non-success status", "site_id", siteID, "status", res.StatusCode())
		return false
	}

	if siteName != "" {
		n.currentSite = siteName
	} else {
		n.currentSite = siteID
	}
	return true
}

// FetchSchedules lists the schedules published for the currently selected
// site. An empty slice means the listing could not be fetched or held no
// schedules; the two are deliberately not distinguished.
func (n *Navigator) FetchSchedules(ctx context.Context) []ScheduleInfo {
	res, err := n.client.get(ctx, "/member/schedule")
	if err != nil {
		logRequestFailure("navigate to schedules", err)
		return nil
	}
	if !res.IsSuccess() {
		return nil
	}

	if !sleepCtx(ctx, n.pageLoadDelay) {
		return nil
	}

	res, err = n.client.get(ctx, "/member/schedule")
	if err != nil {
		logRequestFailure("fetch schedules", err)
		return nil
	}
	if !res.IsSuccess() {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.String()))
	if err != nil {
		logRequestFailure("parse schedule listing", err)
		return nil
	}

	var schedules []ScheduleInfo
	doc.Find(`form[action="/member/schedule"]`).Each(func(_ int, form *goquery.Selection) {
		id := form.Find(`input[name="[id]"]`).AttrOr("value", "")
		title := strings.TrimSpace(form.Find("h2").First().Text())
		if id == "" || title == "" {
			return
		}

		site := n.currentSite
		if site == "" {
			site = "Unknown"
		}
		schedules = append(schedules, ScheduleInfo{ID: id, Title: title, Site: site})
	})

	return schedules
}

// GetPrintableSchedule posts the "create print version" form for one
// schedule and returns the raw document text. ok is false on any
// non-success response.
func (n *Navigator) GetPrintableSchedule(ctx context.Context, scheduleID string) (string, bool) {
	form := url.Values{}
	form.Set("[id]", scheduleID)
	form.Set("commit", "Create Print Version")

	res, err := n.client.postForm(ctx, "/member/schedule", form)
	if err != nil {
		logRequestFailure("get printable schedule", err)
		return "", false
	}
	if !res.IsSuccess() {
		return "", false
	}

	return res.String(), true
}

// sleepCtx waits the courtesy delay unless the run context is cancelled
// first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
