package httptransport

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"auth-gateway/internal/session"
	"auth-gateway/internal/transport/http/mocks"
)

type SessionHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	resolver *mocks.MockSessionResolver
	router   chi.Router
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerSuite))
}

func (s *SessionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.resolver = mocks.NewMockSessionResolver(s.ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	s.router = chi.NewRouter()
	NewSessionHandler(s.resolver, logger).Register(s.router)
}

func (s *SessionHandlerSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *SessionHandlerSuite) TestIdentifiedSession() {
	s.resolver.EXPECT().
		Resolve(gomock.Any(), session.IdentityClaim{CPF: "123.456.789-00"}).
		Return(session.Issued(session.Session{
			AccessToken: "tok-1",
			ExpiresIn:   3600,
			SubjectID:   "12345678900",
			Kind:        session.KindIdentified,
		}))

	rec := s.post(`{"cpf":"123.456.789-00"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("tok-1", body["accessToken"])
	s.Equal(float64(3600), body["expiresIn"])
	s.Equal("12345678900", body["clienteId"])
	s.Equal("IDENTIFICADO", body["tipo"])
}

func (s *SessionHandlerSuite) TestAnonymousSessionHasNullClienteID() {
	s.resolver.EXPECT().
		Resolve(gomock.Any(), session.IdentityClaim{}).
		Return(session.Issued(session.Session{
			AccessToken: "tok-anon",
			ExpiresIn:   1800,
			Kind:        session.KindAnonymous,
		}))

	rec := s.post(`{}`)

	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("ANONIMO", body["tipo"])
	// The key must be present and explicitly null, not omitted.
	v, ok := body["clienteId"]
	s.True(ok)
	s.Nil(v)
}

func (s *SessionHandlerSuite) TestRefusalIsPassedThrough() {
	s.resolver.EXPECT().
		Resolve(gomock.Any(), session.IdentityClaim{CPF: "11122233344"}).
		Return(session.Refused(http.StatusBadRequest, "authentication error"))

	rec := s.post(`{"cpf":"11122233344"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.JSONEq(`{"error":"authentication error"}`, rec.Body.String())
}

func (s *SessionHandlerSuite) TestMalformedBodyAnswersInternalError() {
	rec := s.post(`{"cpf":`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.JSONEq(`{"error":"internal server error"}`, rec.Body.String())
}

func (s *SessionHandlerSuite) TestEmptyBodyAnswersInternalError() {
	rec := s.post(``)

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *SessionHandlerSuite) TestPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/auth/sessions", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
