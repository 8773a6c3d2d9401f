package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicing-api/internal/dto"
	"invoicing-api/internal/middleware"
	"invoicing-api/internal/models"
	"invoicing-api/internal/repositories"
	"invoicing-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const allowedOrigin = "http://localhost:4200/"

type stubTaxService struct {
	result *dto.TaxCalculation
	err    error
	taxIDs []string
}

func (s *stubTaxService) GetTaxCalculation(_ context.Context, taxID string) (*dto.TaxCalculation, error) {
	s.taxIDs = append(s.taxIDs, taxID)
	return s.result, s.err
}

type stubInvoiceService struct {
	invoices []dto.InvoiceDto
	filter   repositories.InvoiceFilter
	err      error
	pdf      []byte
}

func (s *stubInvoiceService) ListInvoices(_ context.Context, filter repositories.InvoiceFilter) ([]dto.InvoiceDto, error) {
	s.filter = filter
	return s.invoices, s.err
}

func (s *stubInvoiceService) GetInvoice(_ context.Context, id string) (*dto.InvoiceDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.invoices {
		if s.invoices[i].ID.String() == id {
			return &s.invoices[i], nil
		}
	}
	return nil, repositories.NotFoundError("invoice", id)
}

func (s *stubInvoiceService) CreateInvoice(_ context.Context, req *dto.InvoiceDto) (*dto.InvoiceDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *req
	created.ID = uuid.New()
	return &created, nil
}

func (s *stubInvoiceService) UpdateInvoice(_ context.Context, id string, req *dto.InvoiceDto) (*dto.InvoiceDto, error) {
	if s.err != nil {
		return nil, s.err
	}
	updated := *req
	updated.ID = uuid.MustParse(id)
	return &updated, nil
}

func (s *stubInvoiceService) DeleteInvoice(context.Context, string) error {
	return s.err
}

func (s *stubInvoiceService) RenderInvoicePDF(context.Context, string) ([]byte, error) {
	return s.pdf, s.err
}

type stubCompanyService struct {
	company *dto.CompanyDto
	err     error
}

func (s *stubCompanyService) ListCompanies(context.Context) ([]dto.CompanyDto, error) {
	if s.company == nil {
		return []dto.CompanyDto{}, s.err
	}
	return []dto.CompanyDto{*s.company}, s.err
}

func (s *stubCompanyService) GetCompany(context.Context, string) (*dto.CompanyDto, error) {
	return s.company, s.err
}

func (s *stubCompanyService) GetCompanyByTaxID(_ context.Context, taxID string) (*dto.CompanyDto, error) {
	if s.company == nil || s.company.TaxIdentificationNumber != taxID {
		return nil, &services.CompanyNotFoundError{TaxID: taxID}
	}
	return s.company, nil
}

func (s *stubCompanyService) CreateCompany(_ context.Context, req *dto.CompanyDto) (*dto.CompanyDto, error) {
	return req, s.err
}

func (s *stubCompanyService) UpdateCompany(_ context.Context, _ string, req *dto.CompanyDto) (*dto.CompanyDto, error) {
	return req, s.err
}

func (s *stubCompanyService) DeleteCompany(context.Context, string) error {
	return s.err
}

type stubUserService struct {
	users    map[string]*models.User
	password string
}

func newStubUserService(users ...*models.User) *stubUserService {
	s := &stubUserService{users: map[string]*models.User{}, password: "s3cretpassword"}
	for _, u := range users {
		s.users[u.ID.String()] = u
	}
	return s
}

func (s *stubUserService) Register(_ context.Context, req *dto.CreateUserRequest) (*dto.UserDto, error) {
	for _, u := range s.users {
		if u.Username == req.Username {
			return nil, repositories.DuplicateError("user", "username", req.Username)
		}
	}
	return &dto.UserDto{ID: uuid.New(), Username: req.Username, Email: req.Email, Role: models.RoleUser}, nil
}

func (s *stubUserService) GetUser(_ context.Context, id string) (*dto.UserDto, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repositories.NotFoundError("user", id)
	}
	return &dto.UserDto{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}, nil
}

func (s *stubUserService) ListUsers(context.Context) ([]dto.UserDto, error) {
	out := []dto.UserDto{}
	for _, u := range s.users {
		out = append(out, dto.UserDto{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	return out, nil
}

func (s *stubUserService) DeleteUser(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return repositories.NotFoundError("user", id)
	}
	delete(s.users, id)
	return nil
}

func (s *stubUserService) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username && password == s.password {
			return u, nil
		}
	}
	return nil, services.ErrInvalidCredentials
}

type testEnv struct {
	router   *gin.Engine
	auth     *middleware.AuthService
	tax      *stubTaxService
	invoices *stubInvoiceService
	users    *stubUserService
	admin    *models.User
	member   *models.User
	hook     *test.Hook
	health   error
}

func newTestEnv(t *testing.T, errs *ErrorMapper) *testEnv {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	admin := &models.User{ID: uuid.New(), Username: "admin", Role: models.RoleAdmin}
	member := &models.User{ID: uuid.New(), Username: "member", Role: models.RoleUser}

	env := &testEnv{
		auth:     middleware.NewAuthService(&middleware.AuthConfig{JWTSecret: "test-secret"}),
		tax:      &stubTaxService{},
		invoices: &stubInvoiceService{},
		users:    newStubUserService(admin, member),
		admin:    admin,
		member:   member,
		hook:     hook,
	}
	if errs == nil {
		errs = NewErrorMapper(logger)
	}

	router := gin.New()
	SetupMiddleware(router, &MiddlewareConfig{
		AllowedOrigins: []string{allowedOrigin},
		MaxBodyBytes:   1 << 20,
		Logger:         logger,
	})
	SetupRoutes(router, &RouterConfig{
		InvoiceService: env.invoices,
		CompanyService: &stubCompanyService{company: &dto.CompanyDto{
			ID:                      uuid.New(),
			TaxIdentificationNumber: "ABC123",
			Name:                    "Bakery",
		}},
		UserService:          env.users,
		TaxCalculatorService: env.tax,
		AuthService:          env.auth,
		Errors:               errs,
		Logger:               logger,
		Health:               func(context.Context) error { return env.health },
	})
	env.router = router
	return env
}

func (e *testEnv) token(t *testing.T, user *models.User) string {
	t.Helper()
	token, _, err := e.auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(method, path, body, token string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorResponse {
	t.Helper()
	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetTaxCalculation(t *testing.T) {
	env := newTestEnv(t, nil)
	env.tax.result = &dto.TaxCalculation{
		Income:                                decimal.RequireFromString("1000"),
		Costs:                                 decimal.RequireFromString("308"),
		IncomeMinusCosts:                      decimal.RequireFromString("692"),
		CollectedVat:                          decimal.RequireFromString("230"),
		PaidVat:                               decimal.RequireFromString("31"),
		VatToReturn:                           decimal.RequireFromString("199"),
		PensionInsurance:                      decimal.Zero,
		IncomeMinusCostsMinusPensionInsurance: decimal.RequireFromString("692"),
		IncomeMinusCostsMinusPensionInsuranceRounded: decimal.RequireFromString("692"),
		IncomeTax:                     decimal.RequireFromString("131.48"),
		HealthInsurance:               decimal.Zero,
		HealthInsuranceToSubtract:     decimal.Zero,
		IncomeTaxMinusHealthInsurance: decimal.RequireFromString("131.48"),
		FinalIncomeTax:                decimal.RequireFromString("131"),
	}

	w := env.do(http.MethodGet, "/api/tax/ABC123", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"ABC123"}, env.tax.taxIDs)
	assert.JSONEq(t, `{
		"income": "1000",
		"costs": "308",
		"incomeMinusCosts": "692",
		"collectedVat": "230",
		"paidVat": "31",
		"vatToReturn": "199",
		"pensionInsurance": "0",
		"incomeMinusCostsMinusPensionInsurance": "692",
		"incomeMinusCostsMinusPensionInsuranceRounded": "692",
		"incomeTax": "131.48",
		"healthInsurance": "0",
		"healthInsuranceToSubtract": "0",
		"incomeTaxMinusHealthInsurance": "131.48",
		"finalIncomeTax": "131"
	}`, w.Body.String())

	var logged bool
	for _, entry := range env.hook.AllEntries() {
		if entry.Level == logrus.DebugLevel && entry.Message == "Getting tax calculation" {
			assert.Equal(t, "ABC123", entry.Data["tax_id"])
			logged = true
		}
	}
	assert.True(t, logged, "expected a debug entry for the tax lookup")
}

func TestGetTaxCalculationErrors(t *testing.T) {
	tests := []struct {
		name       string
		errs       func() *ErrorMapper
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown tax id",
			err:        &services.CompanyNotFoundError{TaxID: "ABC123"},
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name: "unknown tax id with configured status",
			errs: func() *ErrorMapper {
				return NewErrorMapper(nil).WithStatus(services.ErrCompanyNotFound, http.StatusBadRequest)
			},
			err:        &services.CompanyNotFoundError{TaxID: "ABC123"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "not_found",
		},
		{
			name:       "invalid input",
			err:        &services.ValidationError{Fields: []services.FieldError{{Field: "taxId", Message: "is required"}}},
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "unexpected failure",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs *ErrorMapper
			if tt.errs != nil {
				errs = tt.errs()
			}
			env := newTestEnv(t, errs)
			env.tax.err = tt.err

			w := env.do(http.MethodGet, "/api/tax/ABC123", "", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, tt.wantCode, body.Error)
			assert.NotEmpty(t, body.RequestID)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "disk on fire")
			}
		})
	}
}

func TestEmptyTaxIDDoesNotMatch(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodGet, "/api/tax/", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, env.tax.taxIDs)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"allowed origin without trailing slash", http.MethodGet, "http://localhost:4200", http.StatusOK, "http://localhost:4200"},
		{"allowed origin with trailing slash", http.MethodGet, "http://localhost:4200/", http.StatusOK, "http://localhost:4200/"},
		{"no origin", http.MethodGet, "", http.StatusOK, ""},
		{"foreign origin", http.MethodGet, "http://evil.example.com", http.StatusForbidden, ""},
		{"preflight from allowed origin", http.MethodOptions, "http://localhost:4200", http.StatusNoContent, "http://localhost:4200"},
		{"preflight from foreign origin", http.MethodOptions, "http://evil.example.com", http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.tax.result = &dto.TaxCalculation{}

			var w *httptest.ResponseRecorder
			if tt.origin == "" {
				w = env.do(tt.method, "/api/tax/ABC123", "", "")
			} else {
				w = env.do(tt.method, "/api/tax/ABC123", "", "", "Origin", tt.origin)
			}

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	env.health = errors.New("database is locked")
	w = env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestInvoiceRoutes(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.token(t, env.member)
	existing := dto.InvoiceDto{ID: uuid.New(), Number: "2021/05/0001"}
	env.invoices.invoices = []dto.InvoiceDto{existing}
	env.invoices.pdf = []byte("%PDF-1.3 test")

	t.Run("requires a token", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/invoices", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("list passes query filters", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/invoices?taxId=ABC123&buyerTaxId=XYZ", "", token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, repositories.InvoiceFilter{CompanyTaxID: "ABC123", BuyerTaxID: "XYZ"}, env.invoices.filter)

		var got []dto.InvoiceDto
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, existing.ID, got[0].ID)
	})

	t.Run("get unknown invoice", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/invoices/"+uuid.NewString(), "", token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		body := `{"number":"2021/05/0002","date":"2021-05-02",
			"seller":{"taxIdentificationNumber":"ABC123","name":"Bakery"},
			"buyer":{"taxIdentificationNumber":"XYZ","name":"Shop"},
			"invoiceEntries":[{"description":"Bread","quantity":"1","netPrice":"10.00","vatRate":"VAT_8"}]}`
		w := env.do(http.MethodPost, "/api/invoices", body, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var got dto.InvoiceDto
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEqual(t, uuid.Nil, got.ID)
		assert.Equal(t, "2021/05/0002", got.Number)
		assert.Equal(t, "2021-05-02", got.Date.Format(models.DateLayout))
	})

	t.Run("create with malformed body", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/invoices", `{"number":`, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation_error", decodeError(t, w).Error)
	})

	t.Run("pdf", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/invoices/"+existing.ID.String()+"/pdf", "", token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), existing.ID.String()+".pdf")
		assert.Equal(t, env.invoices.pdf, w.Body.Bytes())
	})

	t.Run("delete", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/api/invoices/"+existing.ID.String(), "", token)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestInvoiceValidationDetails(t *testing.T) {
	env := newTestEnv(t, nil)
	env.invoices.err = &services.ValidationError{Fields: []services.FieldError{
		{Field: "number", Message: "is required"},
		{Field: "invoiceEntries", Message: "must contain at least 1 item"},
	}}

	w := env.do(http.MethodPost, "/api/invoices", `{"number":""}`, env.token(t, env.member))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Error   string                `json:"error"`
		Details []services.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "validation_error", body.Error)
	assert.Len(t, body.Details, 2)
}

func TestCompanyRoutes(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.token(t, env.member)

	w := env.do(http.MethodGet, "/api/companies/tax/ABC123", "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/companies/tax/NOPE", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "company with tax id NOPE not found", decodeError(t, w).Message)

	w = env.do(http.MethodPost, "/api/companies", `{"taxIdentificationNumber":"X1","name":"New"}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUserRoutes(t *testing.T) {
	env := newTestEnv(t, nil)
	adminToken := env.token(t, env.admin)
	memberToken := env.token(t, env.member)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"register is public", http.MethodPost, "/api/users", `{"username":"newbie","password":"s3cretpassword"}`, "", http.StatusCreated},
		{"duplicate username", http.MethodPost, "/api/users", `{"username":"member","password":"s3cretpassword"}`, "", http.StatusConflict},
		{"list needs a token", http.MethodGet, "/api/users", "", "", http.StatusUnauthorized},
		{"list needs admin", http.MethodGet, "/api/users", "", memberToken, http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/users", "", adminToken, http.StatusOK},
		{"member reads self", http.MethodGet, "/api/users/" + env.member.ID.String(), "", memberToken, http.StatusOK},
		{"member reads self by uppercase id", http.MethodGet, "/api/users/" + strings.ToUpper(env.member.ID.String()), "", memberToken, http.StatusOK},
		{"member reads self by braced id", http.MethodGet, "/api/users/%7B" + env.member.ID.String() + "%7D", "", memberToken, http.StatusOK},
		{"member with malformed id", http.MethodGet, "/api/users/not-a-uuid", "", memberToken, http.StatusForbidden},
		{"member cannot read others", http.MethodGet, "/api/users/" + env.admin.ID.String(), "", memberToken, http.StatusForbidden},
		{"admin reads anyone", http.MethodGet, "/api/users/" + env.member.ID.String(), "", adminToken, http.StatusOK},
		{"member cannot delete", http.MethodDelete, "/api/users/" + env.admin.ID.String(), "", memberToken, http.StatusForbidden},
		{"admin deletes unknown", http.MethodDelete, "/api/users/" + uuid.NewString(), "", adminToken, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.body, tt.token)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestAuthRoutes(t *testing.T) {
	env := newTestEnv(t, nil)

	t.Run("login", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/auth/login", `{"username":"member","password":"s3cretpassword"}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, env.member.ID, resp.User.ID)
		assert.True(t, resp.ExpiresAt.After(time.Now()))

		claims, err := env.auth.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, env.member.ID.String(), claims.UserID)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/auth/login", `{"username":"member","password":"nope-nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh", func(t *testing.T) {
		body := `{"token":"` + env.token(t, env.member) + `"}`
		w := env.do(http.MethodPost, "/api/auth/refresh", body, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("refresh garbage", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/auth/refresh", `{"token":"garbage"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh for deleted user", func(t *testing.T) {
		ghost := &models.User{ID: uuid.New(), Username: "ghost", Role: models.RoleUser}
		body := `{"token":"` + env.token(t, ghost) + `"}`
		w := env.do(http.MethodPost, "/api/auth/refresh", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/auth/me", "", env.token(t, env.admin))
		require.Equal(t, http.StatusOK, w.Code)

		var user dto.UserDto
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
		assert.Equal(t, "admin", user.Username)
	})
}

func TestErrorMapperResolve(t *testing.T) {
	mapper := NewErrorMapper(nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"company not found", &services.CompanyNotFoundError{TaxID: "1"}, http.StatusNotFound, "not_found"},
		{"repository not found", repositories.NotFoundError("invoice", "x"), http.StatusNotFound, "not_found"},
		{"duplicate", repositories.DuplicateError("company", "tax_id", "1"), http.StatusConflict, "conflict"},
		{"wrapped invalid input", fmt.Errorf("create: %w", services.ErrInvalidInput), http.StatusBadRequest, "validation_error"},
		{"credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized"},
		{"token", middleware.ErrInvalidToken, http.StatusUnauthorized, "unauthorized"},
		{"forbidden", services.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapper.Resolve(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestErrorMapperWithStatus(t *testing.T) {
	sentinel := errors.New("teapot")
	mapper := NewErrorMapper(nil).
		WithStatus(services.ErrCompanyNotFound, http.StatusUnprocessableEntity).
		WithStatus(sentinel, http.StatusConflict)

	status, _ := mapper.Resolve(&services.CompanyNotFoundError{TaxID: "1"})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// other not-found errors keep their status
	status, _ = mapper.Resolve(repositories.NotFoundError("invoice", "x"))
	assert.Equal(t, http.StatusNotFound, status)

	status, code := mapper.Resolve(fmt.Errorf("wrapped: %w", sentinel))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "conflict", code)
}
