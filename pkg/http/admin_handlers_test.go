package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/logify-service/pkg/common"
	"liyu1981.xyz/logify-service/pkg/models"
)

func TestRoleGating(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	tech := createTestUser(t, rs, models.RoleTechnician)
	techToken := tokenFor(t, rs, tech)
	ticketID := createTicketVia(t, rs, techToken, "Gate check")["id"].(string)
	userID := uuid.NewString()

	cases := []struct {
		method     string
		path       string
		body       any
		techStatus int
	}{
		{http.MethodPost, "/api/tickets", gin.H{"title": "t", "descriptionMarkdown": "d"}, http.StatusCreated},
		{http.MethodPatch, "/api/tickets/" + ticketID, gin.H{"title": "t2"}, http.StatusOK},
		{http.MethodPost, "/api/tickets/" + ticketID + "/comments", gin.H{"message": "m"}, http.StatusCreated},
		{http.MethodPost, "/api/upload", nil, http.StatusBadRequest},
		{http.MethodGet, "/api/admin/users", nil, http.StatusForbidden},
		{http.MethodPost, "/api/admin/users", gin.H{"name": "n", "email": "e@example.com", "password": "p"}, http.StatusForbidden},
		{http.MethodPatch, "/api/admin/users/" + userID, gin.H{"role": "ADMIN"}, http.StatusForbidden},
		{http.MethodPatch, "/api/admin/users/" + userID + "/status", gin.H{"isActive": false}, http.StatusForbidden},
		{http.MethodGet, "/api/admin/audit-logs", nil, http.StatusForbidden},
	}

	for _, tc := range cases {
		w := doJSON(rs, tc.method, tc.path, tc.body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without session", tc.method, tc.path)

		w = doJSON(rs, tc.method, tc.path, tc.body, techToken)
		assert.Equal(t, tc.techStatus, w.Code, "%s %s as technician: %s", tc.method, tc.path, w.Body.String())
	}
}

func TestSelfProtection(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	admin := createTestUser(t, rs, models.RoleAdmin)
	token := tokenFor(t, rs, admin)

	w := doJSON(rs, http.MethodPatch, "/api/admin/users/"+admin.ID, gin.H{"role": "TECHNICIAN"}, token)
	assertErrorCode(t, w, http.StatusBadRequest, "OWN_ROLE")

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/"+admin.ID, gin.H{"isActive": false}, token)
	assertErrorCode(t, w, http.StatusBadRequest, "OWN_STATUS")

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/"+admin.ID+"/status", gin.H{"isActive": false}, token)
	assertErrorCode(t, w, http.StatusBadRequest, "OWN_STATUS")

	w = doJSON(rs, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeMap(t, w)
	assert.Equal(t, "ADMIN", me["role"])
	assert.Equal(t, true, me["isActive"])
}

func TestAdminUsers(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	admin := createTestUser(t, rs, models.RoleAdmin)
	token := tokenFor(t, rs, admin)
	email := uuid.NewString() + "@Example.com"

	w := doJSON(rs, http.MethodPost, "/api/admin/users", gin.H{"name": "Tech One", "email": email, "password": "pw"}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeMap(t, w)
	assert.Equal(t, common.NormalizeEmail(email), created["email"])
	assert.Equal(t, "TECHNICIAN", created["role"])
	assert.NotContains(t, created, "passwordHash")
	id := created["id"].(string)

	w = doJSON(rs, http.MethodPost, "/api/admin/users", gin.H{"name": "Dup", "email": email, "password": "pw"}, token)
	assertErrorCode(t, w, http.StatusConflict, "CONFLICT")

	w = doJSON(rs, http.MethodPost, "/api/admin/users", gin.H{"name": "No password", "email": "x@example.com"}, token)
	assertErrorCode(t, w, http.StatusBadRequest, "MISSING_FIELDS")

	w = doJSON(rs, http.MethodPost, "/api/admin/users", gin.H{"name": "n", "email": uuid.NewString() + "@example.com", "password": "p", "role": "ROOT"}, token)
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_ROLE")

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/"+id, gin.H{"role": "ADMIN"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ADMIN", decodeMap(t, w)["role"])

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/"+id+"/status", gin.H{"isActive": false}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeMap(t, w)["isActive"])

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/"+id+"/status", gin.H{}, token)
	assertErrorCode(t, w, http.StatusBadRequest, "MISSING_FIELDS")

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/"+uuid.NewString(), gin.H{"role": "ADMIN"}, token)
	assertErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/zzz", gin.H{"role": "ADMIN"}, token)
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_ID")

	w = doJSON(rs, http.MethodGet, "/api/admin/users", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id)
	assert.NotContains(t, w.Body.String(), "plain:")

	w = doJSON(rs, http.MethodGet, "/api/admin/audit-logs", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []map[string]any
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&logs))
	require.NotEmpty(t, logs)
	assert.LessOrEqual(t, len(logs), 100)

	actions := map[string]bool{}
	for _, entry := range logs {
		if entry["targetId"] == id {
			actions[entry["action"].(string)] = true
		}
	}
	assert.True(t, actions[models.AuditActionUserCreated])
	assert.True(t, actions[models.AuditActionUserUpdated])
	assert.True(t, actions[models.AuditActionUserStatusChanged])

	w = doJSON(rs, http.MethodGet, "/api/admin/audit-logs?limit=abc", nil, token)
	assertErrorCode(t, w, http.StatusBadRequest, "INVALID_BODY")
}

func TestLiveSessionFollowsStoredUser(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer(t)
	admin := createTestUser(t, rs, models.RoleAdmin)
	adminToken := tokenFor(t, rs, admin)

	tech := createTestUser(t, rs, models.RoleTechnician)
	techToken := tokenFor(t, rs, tech)
	createTicketVia(t, rs, techToken, "Before disabling")

	w := doJSON(rs, http.MethodPatch, "/api/admin/users/"+tech.ID+"/status", gin.H{"isActive": false}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodPost, "/api/tickets", gin.H{"title": "After", "descriptionMarkdown": "still here"}, techToken)
	assertErrorCode(t, w, http.StatusForbidden, "ACCOUNT_DISABLED")

	w = doJSON(rs, http.MethodGet, "/api/auth/me", nil, techToken)
	assertErrorCode(t, w, http.StatusForbidden, "ACCOUNT_DISABLED")

	// a disabled session reads tickets as a visitor
	w = doJSON(rs, http.MethodGet, "/api/tickets", nil, techToken)
	require.Equal(t, http.StatusOK, w.Code)
	var tickets []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
	require.NotEmpty(t, tickets)
	assert.NotContains(t, tickets[0], "createdBy")

	// a demoted admin loses admin routes with the token it already holds
	other := createTestUser(t, rs, models.RoleAdmin)
	otherToken := tokenFor(t, rs, other)
	w = doJSON(rs, http.MethodGet, "/api/admin/users", nil, otherToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(rs, http.MethodPatch, "/api/admin/users/"+other.ID, gin.H{"role": "TECHNICIAN"}, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, http.MethodGet, "/api/admin/users", nil, otherToken)
	assertErrorCode(t, w, http.StatusForbidden, "FORBIDDEN")
}
