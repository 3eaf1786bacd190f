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

const scheduleListing = `<html><body>
<form action="/member/schedule" method="post">
  <input name="[id]" value="5501" type="hidden">
  <h2>January 2024 Scribe Schedule</h2>
</form>
<form action="/member/schedule" method="post">
  <input name="[id]" value="5502" type="hidden">
  <h2>February 2024 Scribe Schedule</h2>
</form>
<form action="/member/other"><input name="[id]" value="9999"><h2>ignored</h2></form>
</body></html>`

func testNavigator(serverURL string) *Navigator {
	return NewNavigator(testClient(serverURL), 0, 0)
}

func TestChangeSite(t *testing.T) {
	var selectedSite string

	mux := http.NewServeMux()
	mux.HandleFunc("/member/multi_site_schedule", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>sites</html>")
	})
	mux.HandleFunc("/member/change_selected_site", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		selectedSite = r.PostForm.Get("site_id")
		fmt.Fprint(w, "<html>ok</html>")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	nav := testNavigator(server.URL)

	ok := nav.ChangeSite(context.Background(), "82", "St Joseph Scribe")
	require.True(t, ok)
	require.Equal(t, "82", selectedSite)
	require.Equal(t, "St Joseph Scribe", nav.currentSite)
}

func TestChangeSiteFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/member/multi_site_schedule", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	nav := testNavigator(server.URL)
	require.False(t, nav.ChangeSite(context.Background(), "82", "St Joseph Scribe"))
}

func TestFetchSchedules(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/member/schedule", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, scheduleListing)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	nav := testNavigator(server.URL)
	nav.currentSite = "St Joseph Scribe"

	schedules := nav.FetchSchedules(context.Background())
	require.Len(t, schedules, 2)
	require.Equal(t, ScheduleInfo{ID: "5501", Title: "January 2024 Scribe Schedule", Site: "St Joseph Scribe"}, schedules[0])
	require.Equal(t, "5502", schedules[1].ID)
}

func TestFetchSchedulesListingUnavailable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/member/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	nav := testNavigator(server.URL)
	require.Empty(t, nav.FetchSchedules(context.Background()))
}

func TestGetPrintableSchedule(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/member/schedule", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "5501", r.PostForm.Get("[id]"))
		require.Equal(t, "Create Print Version", r.PostForm.Get("commit"))
		fmt.Fprint(w, "<html>printable</html>")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	nav := testNavigator(server.URL)

	doc, ok := nav.GetPrintableSchedule(context.Background(), "5501")
	require.True(t, ok)
	require.Contains(t, doc, "printable")
}

func TestGetPrintableScheduleNonSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/member/schedule", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	nav := testNavigator(server.URL)

	doc, ok := nav.GetPrintableSchedule(context.Background(), "5501")
	require.False(t, ok)
	require.Empty(t, doc)
}

func TestSleepCtxCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.False(t, sleepCtx(ctx, time.Second))
}
