package portal

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"
	"chainsync/internal/errors"
	"chainsync/internal/infra/workbook"
)

const (
	loginPath = "/Authenticate/LogOn"

	// dateLayout is the portal's request date format.
	dateLayout = "02.01.2006"
)

// session is one unit's authenticated portal session.
type session struct {
	cfg        Config
	unit       *entity.Unit
	client     *http.Client
	userAgent  string
	logger     *slog.Logger
	authorized bool
}

// EnsureAuthenticated performs the lazy login. Success is detected by the
// final URL having moved away from the login page; the portal answers 200 on
// rejected credentials and just re-renders the form.
func (s *session) EnsureAuthenticated(ctx context.Context) error {
	if s.authorized {
		return nil
	}

	form := url.Values{
		"State":       {""},
		"fromSiteId":  {""},
		"CountryCode": {s.cfg.CountryCode},
		"login":       {s.unit.Login},
		"password":    {s.unit.Password, "ltr"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.AuthBaseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "build login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", s.cfg.AuthBaseURL)
	req.Header.Set("Referer", s.cfg.AuthBaseURL+loginPath)
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return syncerrors.NewTransportError(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse

	// Rejected credentials come back as a 200 re-rendering the login form;
	// any error status (the portal throttles with 4xx as readily as it
	// breaks with 5xx) is a response problem, not a credential verdict.
	if resp.StatusCode >= http.StatusBadRequest {
		return syncerrors.NewResponseError(resp.StatusCode)
	}
	if stillOnLoginPage(resp) {
		return syncerrors.NewAuthError(s.unit.Name)
	}

	s.authorized = true
	s.logger.Debug("portal session authenticated", slog.String("unit", s.unit.Name))

	return nil
}

// stillOnLoginPage reports whether the redirect chain ended back on the login
// form, the portal's only signal for rejected credentials.
func stillOnLoginPage(resp *http.Response) bool {
	if resp.Request == nil || resp.Request.URL == nil {
		return false
	}

	return strings.Contains(resp.Request.URL.Path, loginPath)
}

// FetchReport requests one kind's export for the window and decodes the
// spreadsheet payload.
func (s *session) FetchReport(ctx context.Context, kind entity.ReportKind, window entity.SyncWindow) (*entity.RawTable, error) {
	if err := s.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	spec, err := requestSpec(kind)
	if err != nil {
		return nil, err
	}

	form := url.Values{
		"unitsIds":  {strconv.Itoa(s.unit.ExternalID)},
		"beginDate": {window.Start.Format(dateLayout)},
		"endDate":   {window.End.Format(dateLayout)},
	}
	for field, values := range spec.fields {
		form[field] = values
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.cfg.OfficeBaseURL+spec.path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", kind)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, syncerrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse

		return nil, syncerrors.NewResponseError(resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, syncerrors.NewTransportError(err)
	}

	table, err := workbook.Decode(payload, kind.SkipRows())
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s payload", kind)
	}

	return table, nil
}

// Close releases the session's idle connections.
func (s *session) Close() {
	s.client.CloseIdleConnections()
	s.authorized = false
}

// reportRequest describes the kind-specific part of an export request.
type reportRequest struct {
	path   string
	fields url.Values
}

func requestSpec(kind entity.ReportKind) (reportRequest, error) {
	switch kind {
	case entity.ReportClientsStatistic:
		return reportRequest{
			path: "/Reports/ClientsStatistic/Export",
			fields: url.Values{
				"hidePhoneNumbers": {"false"},
			},
		}, nil
	case entity.ReportPromoUsage:
		return reportRequest{
			path:   "/Reports/Promo/Export",
			fields: url.Values{},
		}, nil
	case entity.ReportOrders:
		return reportRequest{
			path: "/Reports/Orders/Export",
			fields: url.Values{
				"OrderSources": {
					"Telephone", "Site", "Restaurant", "DefectOrder",
					"Mobile", "Pizzeria", "Aggregator",
				},
				"SelectOrderTypes": {"Delivery", "Pickup", "Stationary"},
			},
		}, nil
	default:
		return reportRequest{}, errors.Errorf("unknown report kind %q", kind)
	}
}
