package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	agentRepo "fundihub/database/repository/agent"
	"fundihub/models"
	"fundihub/utils"
)

type fakeAgentRepo struct {
	agents map[string]*models.ServiceAgent
}

func newFakeAgentRepo(agents ...*models.ServiceAgent) *fakeAgentRepo {
	r := &fakeAgentRepo{agents: make(map[string]*models.ServiceAgent)}
	for _, a := range agents {
		r.agents[a.ID] = a
	}
	return r
}

func (r *fakeAgentRepo) Create(ctx context.Context, a *models.ServiceAgent) error {
	r.agents[a.ID] = a
	return nil
}

func (r *fakeAgentRepo) GetByID(ctx context.Context, id string) (*models.ServiceAgent, error) {
	a, ok := r.agents[id]
	if !ok {
		return nil, agentRepo.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAgentRepo) GetByEmail(ctx context.Context, email string) (*models.ServiceAgent, error) {
	for _, a := range r.agents {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, agentRepo.ErrNotFound
}

func (r *fakeAgentRepo) ListAll(ctx context.Context) ([]models.ServiceAgent, error) {
	return nil, nil
}

func (r *fakeAgentRepo) UpdateAreas(ctx context.Context, id string, areas []string) error {
	return nil
}

func (r *fakeAgentRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	a, ok := r.agents[id]
	if !ok {
		return agentRepo.ErrNotFound
	}
	a.Security.TokenHash = tokenHash
	return nil
}

func (r *fakeAgentRepo) EnsureIndexes() error { return nil }

func newAuthRouter(repo agentRepo.AgentRepository, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", JWTAuthMiddleware(repo, roles...), func(c *gin.Context) {
		actor, _ := GetActor(c)
		c.JSON(http.StatusOK, actor)
	})
	return r
}

func doAuthedGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	r := newAuthRouter(newFakeAgentRepo())
	assert.Equal(t, http.StatusUnauthorized, doAuthedGet(r, "").Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	r := newAuthRouter(newFakeAgentRepo())
	assert.Equal(t, http.StatusUnauthorized, doAuthedGet(r, "not-a-jwt").Code)
}

func TestAuthCustomerTokenNeedsNoSession(t *testing.T) {
	token, err := utils.GenerateToken("customer-1", models.RoleCustomer, time.Hour)
	require.NoError(t, err)

	r := newAuthRouter(newFakeAgentRepo(), models.RoleCustomer)
	assert.Equal(t, http.StatusOK, doAuthedGet(r, token).Code)
}

func TestAuthRoleGate(t *testing.T) {
	customer, err := utils.GenerateToken("customer-1", models.RoleCustomer, time.Hour)
	require.NoError(t, err)
	admin, err := utils.GenerateToken("admin-1", models.RoleAdmin, time.Hour)
	require.NoError(t, err)

	r := newAuthRouter(newFakeAgentRepo(), models.RoleAgent)
	assert.Equal(t, http.StatusForbidden, doAuthedGet(r, customer).Code)
	assert.Equal(t, http.StatusOK, doAuthedGet(r, admin).Code, "admins pass every role gate")
}

func TestAuthAgentTokenMatchesStoredHash(t *testing.T) {
	token, err := utils.GenerateToken("agent-1", models.RoleAgent, time.Hour)
	require.NoError(t, err)

	repo := newFakeAgentRepo(&models.ServiceAgent{
		ID:       "agent-1",
		Security: models.AgentSecurity{TokenHash: utils.HashToken(token)},
	})
	r := newAuthRouter(repo, models.RoleAgent)
	assert.Equal(t, http.StatusOK, doAuthedGet(r, token).Code)
}

func TestAuthAgentTokenSupersededByNewLogin(t *testing.T) {
	old, err := utils.GenerateToken("agent-1", models.RoleAgent, time.Hour)
	require.NoError(t, err)
	fresh, err := utils.GenerateToken("agent-1", models.RoleAgent, 2*time.Hour)
	require.NoError(t, err)

	// Only the freshest token's hash is stored; the old one still has a
	// valid signature but must be rejected.
	repo := newFakeAgentRepo(&models.ServiceAgent{
		ID:       "agent-1",
		Security: models.AgentSecurity{TokenHash: utils.HashToken(fresh)},
	})
	r := newAuthRouter(repo, models.RoleAgent)
	assert.Equal(t, http.StatusUnauthorized, doAuthedGet(r, old).Code)
	assert.Equal(t, http.StatusOK, doAuthedGet(r, fresh).Code)
}

func TestAuthAgentTokenUnknownAgent(t *testing.T) {
	token, err := utils.GenerateToken("agent-404", models.RoleAgent, time.Hour)
	require.NoError(t, err)

	r := newAuthRouter(newFakeAgentRepo(), models.RoleAgent)
	assert.Equal(t, http.StatusUnauthorized, doAuthedGet(r, token).Code)
}
