package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workwise_backend/internal/app"
	"workwise_backend/internal/auth"
	"workwise_backend/internal/config"
	"workwise_backend/internal/database"
	"workwise_backend/internal/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLMinutes = 60
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = os.TempDir() + "/workwise-test-uploads"
	cfg.Upload.MaxSize = 10 << 20
	cfg.Upload.AllowedTypes = []string{"application/pdf", "image/png"}
	config.AppConfig = cfg

	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return app.SetupRouter(config.AppConfig, db), db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	parsed := map[string]interface{}{}
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	}
	return rec, parsed
}

func registerAndLogin(t *testing.T, router *gin.Engine, username, email string) (string, uint) {
	t.Helper()

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	userID := uint(body["userId"].(float64))

	rec, body = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"usernameOrEmail": username,
		"password":        "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return body["accessToken"].(string), userID
}

func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	hash, err := auth.HashPassword("admin-password")
	require.NoError(t, err)
	admin := &models.User{
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    "2026-01-01T00:00:00Z",
	}
	require.NoError(t, db.Create(admin).Error)

	token, err := auth.GenerateToken(admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestHTTP_RegisterLoginFlow(t *testing.T) {
	router, _ := newTestServer(t)

	token, userID := registerAndLogin(t, router, "alice", "alice@example.com")
	assert.NotEmpty(t, token)

	// Duplicate registrations conflict.
	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "alice",
		"email":    "second@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "CONFLICT", errObj["code"])

	// Wrong password is a 401.
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"usernameOrEmail": "alice",
		"password":        "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The token grants access to the caller's own profile.
	rec, body = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/profile", userID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", body["username"])
}

func TestHTTP_RegisterValidation(t *testing.T) {
	router, _ := newTestServer(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "bob",
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTP_ProfileAccessControl(t *testing.T) {
	router, _ := newTestServer(t)

	aliceToken, aliceID := registerAndLogin(t, router, "alice", "alice@example.com")
	_, bobID := registerAndLogin(t, router, "bob", "bob@example.com")

	// No token: 401.
	rec, _ := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/profile", aliceID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Someone else's profile: 403.
	rec, _ = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/profile", bobID), aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHTTP_ProfileUpdate(t *testing.T) {
	router, _ := newTestServer(t)
	token, userID := registerAndLogin(t, router, "carol", "carol@example.com")
	path := fmt.Sprintf("/api/v1/users/%d/profile", userID)

	rec, body := doJSON(t, router, http.MethodPut, path, token, map[string]string{
		"profileName": "Carol",
		"location":    "Wellington",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Carol", body["profileName"])
	assert.Equal(t, "Wellington", body["location"])

	// An empty patch returns the current profile unchanged.
	rec, body = doJSON(t, router, http.MethodPut, path, token, map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Carol", body["profileName"])
}

func TestHTTP_QualificationLifecycle(t *testing.T) {
	router, _ := newTestServer(t)
	token, userID := registerAndLogin(t, router, "dave", "dave@example.com")
	base := fmt.Sprintf("/api/v1/users/%d/qualifications", userID)

	rec, body := doJSON(t, router, http.MethodPost, base, token, map[string]interface{}{
		"qualificationType": "degree",
		"institution":       "Victoria University",
		"qualificationName": "BSc",
		"startDate":         "2021-02-01",
		"endDate":           "2024-12-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	qualID := int(body["qualificationId"].(float64))

	// Marking it current clears the end date.
	rec, body = doJSON(t, router, http.MethodPut, fmt.Sprintf("%s/%d", base, qualID), token, map[string]interface{}{
		"isCurrent": true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["isCurrent"])
	assert.Nil(t, body["endDate"])

	// A patch with no recognized fields is rejected.
	rec, body = doJSON(t, router, http.MethodPut, fmt.Sprintf("%s/%d", base, qualID), token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "NO_OP_UPDATE", errObj["code"])

	rec, _ = doJSON(t, router, http.MethodDelete, fmt.Sprintf("%s/%d", base, qualID), token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func uploadCV(t *testing.T, router *gin.Engine, token, base, name string, primary bool) map[string]interface{} {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename="%s.pdf"`, name)},
		"Content-Type":        {"application/pdf"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("cvName", name))
	if primary {
		require.NoError(t, writer.WriteField("isPrimary", "true"))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, base, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func listCVs(t *testing.T, router *gin.Engine, token, base string) []map[string]interface{} {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, base, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var cvs []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cvs))
	return cvs
}

func TestHTTP_CVUploadAndPrimary(t *testing.T) {
	router, _ := newTestServer(t)
	token, userID := registerAndLogin(t, router, "erin", "erin@example.com")
	base := fmt.Sprintf("/api/v1/users/%d/cvs", userID)

	first := int(uploadCV(t, router, token, base, "first", false)["cvId"].(float64))
	second := int(uploadCV(t, router, token, base, "second", false)["cvId"].(float64))

	rec, _ := doJSON(t, router, http.MethodPut, fmt.Sprintf("%s/%d/primary", base, first), token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, body := doJSON(t, router, http.MethodPut, fmt.Sprintf("%s/%d/primary", base, second), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["isPrimary"])

	// Exactly one primary after repeated promotions.
	cvs := listCVs(t, router, token, base)
	require.Len(t, cvs, 2)
	primaries := 0
	for _, cv := range cvs {
		if cv["isPrimary"] == true {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestHTTP_CVUploadWithPrimaryFlag(t *testing.T) {
	router, _ := newTestServer(t)
	token, userID := registerAndLogin(t, router, "iris", "iris@example.com")
	base := fmt.Sprintf("/api/v1/users/%d/cvs", userID)

	uploadCV(t, router, token, base, "resume1", false)
	body := uploadCV(t, router, token, base, "resume2", true)
	assert.Equal(t, true, body["isPrimary"])

	cvs := listCVs(t, router, token, base)
	require.Len(t, cvs, 2)

	var primaryNames []string
	for _, cv := range cvs {
		if cv["isPrimary"] == true {
			primaryNames = append(primaryNames, cv["cvName"].(string))
		}
	}
	assert.Equal(t, []string{"resume2"}, primaryNames,
		"a primary-flagged upload must become the sole primary")
}

func TestHTTP_AdminGates(t *testing.T) {
	router, db := newTestServer(t)
	userToken, _ := registerAndLogin(t, router, "frank", "frank@example.com")

	// Regular users cannot register unions.
	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/unions", userToken, map[string]interface{}{
		"registerNum": "REG-1",
		"sectorInfo":  "Retail",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := adminToken(t, db)
	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/unions", admin, map[string]interface{}{
		"registerNum": "REG-1",
		"sectorInfo":  "Retail",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	unionID := int(body["unionId"].(float64))

	// Enroll a worker and observe the counter through the public list.
	_, workerID := registerAndLogin(t, router, "worker", "worker@example.com")
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/unions/members", admin, map[string]interface{}{
		"workerId": workerID,
		"unionId":  unionID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/unions", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)
	require.Equal(t, http.StatusOK, listRec.Code)

	var unions []map[string]interface{}
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &unions))
	require.Len(t, unions, 1)
	assert.EqualValues(t, 1, unions[0]["membershipSize"])
}

func TestHTTP_JobsPublicBrowsing(t *testing.T) {
	router, db := newTestServer(t)
	admin := adminToken(t, db)

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/businesses", admin, map[string]interface{}{
		"businessName": "Harbour Cafe",
		"industry":     "Hospitality",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	businessID := int(body["businessId"].(float64))

	rec, body = doJSON(t, router, http.MethodPost, "/api/v1/jobs", admin, map[string]interface{}{
		"businessId":     businessID,
		"jobTitle":       "Barista",
		"jobLocation":    "Wellington",
		"employmentType": "full-time",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	jobID := int(body["jobId"].(float64))

	// Listings, detail and search are public.
	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", jobID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Harbour Cafe", body["businessName"])

	searchRec := httptest.NewRecorder()
	router.ServeHTTP(searchRec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/search?query=barista", nil))
	require.Equal(t, http.StatusOK, searchRec.Code)
	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(searchRec.Body.Bytes(), &results))
	require.Len(t, results, 1)

	rec, _ = doJSON(t, router, http.MethodGet, "/api/v1/jobs/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_ForgotPasswordIsNeutral(t *testing.T) {
	router, _ := newTestServer(t)
	registerAndLogin(t, router, "grace", "grace@example.com")

	rec, body := doJSON(t, router, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]string{
		"email": "grace@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	known := body["message"]

	rec, body = doJSON(t, router, http.MethodPost, "/api/v1/auth/forgot-password", "", map[string]string{
		"email": "stranger@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, known, body["message"], "response must not reveal whether the account exists")
}

func TestHTTP_SavedJobsAndStats(t *testing.T) {
	router, _ := newTestServer(t)
	token, userID := registerAndLogin(t, router, "henry", "henry@example.com")

	rec, _ := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/saved-jobs", userID), token, map[string]string{
		"jobTitle":    "Chef",
		"companyName": "Bistro",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/applications", userID), token, map[string]string{
		"jobTitle":    "Chef",
		"companyName": "Bistro",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, body := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/stats", userID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, body["savedJobsCount"])
	assert.EqualValues(t, 1, body["applicationsCount"])
}
