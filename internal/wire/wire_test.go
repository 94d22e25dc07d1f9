package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"moviebooking/internal/adaptor"
	"moviebooking/internal/dto/request"
	"moviebooking/internal/dto/response"
	"moviebooking/internal/usecase"
	"moviebooking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "wire-test-secret"

type authSvc struct{ usecase.AuthService }

func (authSvc) ForgotPassword(context.Context, string) error { return nil }

type movieSvc struct{ usecase.MovieService }

func (movieSvc) GetAll(context.Context) ([]response.MovieResponse, error) {
	return []response.MovieResponse{{MovieName: "Avatar"}}, nil
}

func (movieSvc) ListTickets(context.Context, string) ([]response.TicketResponse, error) {
	return []response.TicketResponse{}, nil
}

func (movieSvc) UpdateTicketStatus(context.Context, string, string) error { return nil }

type bookingSvc struct{ usecase.BookingService }

func (bookingSvc) Book(_ context.Context, _, movieName string, req *request.BookTicketRequest) (*response.BookingResult, error) {
	return &response.BookingResult{Status: response.BookingStatusBooked, MovieName: movieName, TheatreName: req.TheatreName}, nil
}

type reviewSvc struct{ usecase.ReviewService }

func (reviewSvc) ListByMovie(context.Context, string) ([]response.ReviewResponse, error) {
	return []response.ReviewResponse{}, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func testRouter() http.Handler {
	config := &utils.Config{
		App: utils.AppConfig{Name: "moviebooking", Version: "test"},
		JWT: utils.JWTConfig{Secret: testSecret, ExpiryHours: 1},
	}
	service := &usecase.Service{
		Auth:    authSvc{},
		Movie:   movieSvc{},
		Booking: bookingSvc{},
		Review:  reviewSvc{},
	}
	return NewRouter(adaptor.NewHandler(service, okPinger{}, config, zap.NewNop()), config, zap.NewNop())
}

func token(t *testing.T, roles ...string) string {
	t.Helper()
	tok, _, err := utils.GenerateToken(testSecret, "alice", roles, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestRouter_Access(t *testing.T) {
	user := token(t, roleUser)
	admin := token(t, roleAdmin)
	router := testRouter()

	bookBody := `{"theatreName":"PVR","noOfTickets":1,"seatNumber":["A1"]}`

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
		want   int
	}{
		{"status is public", http.MethodGet, "/", "", "", http.StatusOK},
		{"health is public", http.MethodGet, "/health", "", "", http.StatusOK},
		{"catalogue needs a token", http.MethodGet, "/all", "", "", http.StatusUnauthorized},
		{"catalogue for user", http.MethodGet, "/all", "", user, http.StatusOK},
		{"catalogue for admin", http.MethodGet, "/all", "", admin, http.StatusOK},
		{"booking for user", http.MethodPost, "/Avatar/add", bookBody, user, http.StatusOK},
		{"booking is user only", http.MethodPost, "/Avatar/add", bookBody, admin, http.StatusForbidden},
		{"tickets are admin only", http.MethodGet, "/userTickets/Avatar", "", user, http.StatusForbidden},
		{"tickets for admin", http.MethodGet, "/userTickets/Avatar", "", admin, http.StatusOK},
		{"status update for admin", http.MethodPut, "/Avatar/update/abc", "", admin, http.StatusOK},
		{"forgot password for user", http.MethodPut, "/alice/forgot", "{}", user, http.StatusOK},
		{"reviews are public", http.MethodGet, "/movies/Avatar/reviews", "", "", http.StatusOK},
		{"adding a review needs a token", http.MethodPost, "/movies/Avatar/reviews", "{}", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if path != "/" && path != "/health" {
				path = BasePath + path
			}

			req := httptest.NewRequest(tt.method, path, strings.NewReader(tt.body))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, BasePath+"/all", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
