package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/chiragkumaaar/calendar-agent/internal"
)

type Client struct {
	oauthCfg *oauth2.Config

	Verbose bool
}

func NewClient(credJSON []byte) (*Client, error) {
	oauthCfg, err := google.ConfigFromJSON(credJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("google: parsing credentials file: %v", err)
	}

	return &Client{
		oauthCfg: oauthCfg,
	}, nil
}

const defaultSleep = 5 * time.Second

func (c Client) FreeBusy(ctx context.Context, acc *internal.Account, emails []string, from, to time.Time) (map[string][]internal.BusyPeriod, error) {
	svc, err := c.calendarSvc(ctx, acc)
	if err != nil {
		return nil, err
	}

	items := make([]*calendar.FreeBusyRequestItem, len(emails))
	for i, email := range emails {
		items[i] = &calendar.FreeBusyRequestItem{Id: email}
	}
	req := &calendar.FreeBusyRequest{
		TimeMin:  from.UTC().Format(time.RFC3339),
		TimeMax:  to.UTC().Format(time.RFC3339),
		TimeZone: "UTC",
		Items:    items,
	}

	c.logf(acc, "querying free/busy for %d calendar(s) between %s and %s", len(emails), req.TimeMin, req.TimeMax)

	var resp *calendar.FreeBusyResponse
	for {
		resp, err = svc.Freebusy.Query(req).Context(ctx).Do()
		if err == nil {
			break
		}
		if shouldRetry(err) {
			time.Sleep(defaultSleep)
			continue
		}
		return nil, fmt.Errorf("google: free/busy query: %w", err)
	}

	return newBusyReport(resp), nil
}

func (c Client) CreateEvent(ctx context.Context, acc *internal.Account, req *internal.Event) (*internal.Event, error) {
	msg := fmt.Sprintf("creating event: %q on %s... ", req.Summary, req.StartsAt)
	defer func() {
		c.logf(acc, "%s", msg)
	}()

	svc, err := c.calendarSvc(ctx, acc)
	if err != nil {
		msg += "❌"
		return nil, err
	}

	var res *internal.Event
	for {
		gevent, err := svc.Events.
			Insert("primary", newGoogleEvent(req)).
			Context(ctx).
			SendUpdates("all").
			ConferenceDataVersion(1).
			Do()
		if err == nil {
			res = newEvent(gevent)
			msg += "✅"
			break
		}
		if shouldRetry(err) {
			time.Sleep(defaultSleep)
			continue
		}
		msg += "❌"
		return nil, err
	}
	return res, nil
}

// Timezone returns the location of the account's primary calendar.
func (c Client) Timezone(ctx context.Context, acc *internal.Account) (*time.Location, error) {
	svc, err := c.calendarSvc(ctx, acc)
	if err != nil {
		return nil, err
	}
	meta, err := svc.Calendars.Get("primary").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google: getting calendar metadata: %w", err)
	}
	if meta.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(meta.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("google: unknown calendar timezone %q: %w", meta.TimeZone, err)
	}
	return loc, nil
}

func (c Client) Email(ctx context.Context, auth []byte) (string, error) {
	acc := &internal.Account{Auth: string(auth)}
	svc, err := c.calendarSvc(ctx, acc)
	if err != nil {
		return "", err
	}
	entry, err := svc.CalendarList.Get("primary").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return entry.Id, nil
}

func (c Client) Login(ctx context.Context, notify func(authURL string)) ([]byte, error) {
	state := fmt.Sprintf("calendar-agent-%d", time.Now().UTC().Nanosecond())
	authURL := c.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	notify(authURL)

	mux := http.NewServeMux()
	server := &http.Server{
		Addr:    ":8080",
		Handler: mux,
	}

	var (
		token   *oauth2.Token
		authErr error
	)

	mux.HandleFunc("/calendar-agent", func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			go server.Shutdown(ctx)
		}()

		query := req.URL.Query()
		if query.Get("state") != state {
			authErr = errors.New("oauth link is not valid")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		token, authErr = c.oauthCfg.Exchange(ctx, query.Get("code"))
		if authErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintln(w, "Unable to retrieve token:", authErr)
			return
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "All good, you can close this window!")
	})

	serverCh := make(chan struct{})
	var svrErr error
	go func() {
		svrErr = server.ListenAndServe()
		close(serverCh)
	}()

	<-serverCh

	if svrErr != nil && svrErr != http.ErrServerClosed {
		return nil, svrErr
	}

	if authErr != nil {
		return nil, authErr
	}

	return json.Marshal(token)
}

func (c Client) calendarSvc(ctx context.Context, acc *internal.Account) (*calendar.Service, error) {
	var tok *oauth2.Token
	err := json.Unmarshal([]byte(acc.Auth), &tok)
	if err != nil {
		return nil, err
	}
	httpClient := c.oauthCfg.Client(ctx, tok)
	return calendar.NewService(ctx, option.WithHTTPClient(httpClient))
}

func (c Client) logf(acc *internal.Account, format string, a ...any) {
	if c.Verbose {
		internal.Logf(os.Stdout, "google:", acc, format, a...)
	}
}

func shouldRetry(err error) bool {
	return errIsReason(err, "rateLimitExceeded")
}

func errIsReason(err error, reason string) bool {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return false
	}

	for _, err := range gErr.Errors {
		switch err.Reason {
		case reason:
			return true
		}
	}
	return false
}
