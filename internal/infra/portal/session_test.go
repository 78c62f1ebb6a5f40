package portal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSessionUnit() *entity.Unit {
	return &entity.Unit{
		Name:       "Москва-1",
		ExternalID: 243,
		TZShift:    3,
		Login:      "moscow1",
		Password:   "secret",
	}
}

func newSessionAgainst(server *httptest.Server) *session {
	gw := NewGateway(Config{
		AuthBaseURL:   server.URL,
		OfficeBaseURL: server.URL,
		CountryCode:   "Ru",
		Timeout:       5 * time.Second,
	}, newDiscardLogger())

	return gw.NewSession(testSessionUnit()).(*session)
}

// reportWorkbook builds an xlsx payload the way the portal serves it:
// skipRows decorative lines, then the header, then the data rows.
func reportWorkbook(t *testing.T, skipRows int, header []string, rows ...[]string) []byte {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	line := 1
	writeRow := func(row []string) {
		cell, err := excelize.CoordinatesToCellName(1, line)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
		line++
	}

	for i := 0; i < skipRows; i++ {
		writeRow([]string{"Отчёт"})
	}
	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	require.NoError(t, file.Close())

	return buf.Bytes()
}

func TestSession_LoginSuccess(t *testing.T) {
	var form url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newSessionAgainst(server)
	defer s.Close()

	require.NoError(t, s.EnsureAuthenticated(context.Background()))

	assert.Equal(t, "moscow1", form.Get("login"))
	assert.Equal(t, []string{"secret", "ltr"}, form["password"])
	assert.Equal(t, "Ru", form.Get("CountryCode"))

	// The session remembers it is authenticated; no second login round-trip.
	require.NoError(t, s.EnsureAuthenticated(context.Background()))
}

func TestSession_RejectedCredentials(t *testing.T) {
	// The portal answers 200 and re-renders the login form on bad credentials.
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newSessionAgainst(server)
	defer s.Close()

	err := s.EnsureAuthenticated(context.Background())
	require.Error(t, err)

	var authErr *syncerrors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Москва-1", authErr.Unit)
	assert.False(t, syncerrors.IsRetryable(err))
}

func TestSession_LoginThrottled(t *testing.T) {
	// Throttling is a response problem the retry loop should work through,
	// not a credential rejection.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	s := newSessionAgainst(server)
	defer s.Close()

	err := s.EnsureAuthenticated(context.Background())
	require.Error(t, err)

	var respErr *syncerrors.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusTooManyRequests, respErr.Status)
	assert.True(t, syncerrors.IsRetryable(err))
}

func TestSession_LoginServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := newSessionAgainst(server)
	defer s.Close()

	err := s.EnsureAuthenticated(context.Background())
	require.Error(t, err)

	var respErr *syncerrors.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusInternalServerError, respErr.Status)
	assert.True(t, syncerrors.IsRetryable(err))
}

func TestSession_FetchReport(t *testing.T) {
	payload := reportWorkbook(t, entity.ReportClientsStatistic.SkipRows(),
		[]string{"№ телефона", "Количество заказов"},
		[]string{"+79261234567", "5"},
	)

	var form url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/Reports/ClientsStatistic/Export", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write(payload) //nolint:errcheck
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newSessionAgainst(server)
	defer s.Close()

	window := entity.SyncWindow{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}
	table, err := s.FetchReport(context.Background(), entity.ReportClientsStatistic, window)
	require.NoError(t, err)

	assert.Equal(t, "243", form.Get("unitsIds"))
	assert.Equal(t, "01.02.2024", form.Get("beginDate"))
	assert.Equal(t, "15.02.2024", form.Get("endDate"))
	assert.Equal(t, "false", form.Get("hidePhoneNumbers"))

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "+79261234567", table.Cell(table.Rows[0], "№ телефона"))
}

func TestSession_FetchReportOrdersFields(t *testing.T) {
	payload := reportWorkbook(t, entity.ReportOrders.SkipRows(),
		[]string{"№ заказа"},
		[]string{"101"},
	)

	var form url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/Reports/Orders/Export", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write(payload) //nolint:errcheck
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newSessionAgainst(server)
	defer s.Close()

	window := entity.SyncWindow{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	table, err := s.FetchReport(context.Background(), entity.ReportOrders, window)
	require.NoError(t, err)

	assert.Contains(t, form["OrderSources"], "Telephone")
	assert.Contains(t, form["OrderSources"], "Aggregator")
	assert.Equal(t, []string{"Delivery", "Pickup", "Stationary"}, form["SelectOrderTypes"])
	require.Len(t, table.Rows, 1)
}

func TestSession_FetchReportBadStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/Reports/ClientsStatistic/Export", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := newSessionAgainst(server)
	defer s.Close()

	window := entity.SyncWindow{
		Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
	}
	_, err := s.FetchReport(context.Background(), entity.ReportClientsStatistic, window)
	require.Error(t, err)

	var respErr *syncerrors.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusBadGateway, respErr.Status)
}

func TestRequestSpec_UnknownKind(t *testing.T) {
	_, err := requestSpec(entity.ReportKind("invented"))
	require.Error(t, err)
}
