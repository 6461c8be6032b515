package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	agentRepo "fundihub/database/repository/agent"
	workerRepo "fundihub/database/repository/worker"
	"fundihub/models"
	"fundihub/utils"
)

type fakeAgentRepo struct {
	agents map[string]*models.ServiceAgent
}

func newFakeAgentRepo() *fakeAgentRepo {
	return &fakeAgentRepo{agents: make(map[string]*models.ServiceAgent)}
}

func (r *fakeAgentRepo) Create(ctx context.Context, a *models.ServiceAgent) error {
	cp := *a
	r.agents[a.ID] = &cp
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
	var out []models.ServiceAgent
	for _, a := range r.agents {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAgentRepo) UpdateAreas(ctx context.Context, id string, areas []string) error {
	a, ok := r.agents[id]
	if !ok {
		return agentRepo.ErrNotFound
	}
	a.Areas = areas
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

type fakeWorkerRepo struct {
	workers map[string]*models.Worker
}

func newFakeWorkerRepo(workers ...*models.Worker) *fakeWorkerRepo {
	r := &fakeWorkerRepo{workers: make(map[string]*models.Worker)}
	for _, w := range workers {
		r.workers[w.ID] = w
	}
	return r
}

func (r *fakeWorkerRepo) Create(ctx context.Context, w *models.Worker) error {
	r.workers[w.ID] = w
	return nil
}

func (r *fakeWorkerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, workerRepo.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWorkerRepo) ListByAgent(ctx context.Context, agentID string) ([]models.Worker, error) {
	return nil, nil
}

func (r *fakeWorkerRepo) ListAll(ctx context.Context) ([]models.Worker, error) { return nil, nil }

func (r *fakeWorkerRepo) UpdateTimetable(ctx context.Context, id string, tt []models.DaySchedule, slotMinutes int) error {
	return nil
}

func (r *fakeWorkerRepo) AddNonAvailability(ctx context.Context, id string, e models.NonAvailability) error {
	return nil
}

func (r *fakeWorkerRepo) RemoveNonAvailability(ctx context.Context, id, date string) error {
	return nil
}

func (r *fakeWorkerRepo) SetStatus(ctx context.Context, id, status string) error { return nil }

func (r *fakeWorkerRepo) SetVerificationStatus(ctx context.Context, id, vs string) error {
	w, ok := r.workers[id]
	if !ok {
		return workerRepo.ErrNotFound
	}
	w.VerificationStatus = vs
	return nil
}

func (r *fakeWorkerRepo) UpdateServices(ctx context.Context, id string, svcs []models.WorkerService) error {
	return nil
}

func (r *fakeWorkerRepo) EnsureIndexes() error { return nil }

func registerRequest() RegisterAgentRequest {
	return RegisterAgentRequest{
		Name:     "Joy",
		Email:    "joy@example.com",
		Password: "long-enough-pass",
	}
}

func TestRegisterScrubsCredentials(t *testing.T) {
	repo := newFakeAgentRepo()
	svc := &DefaultAgentService{Repo: repo, WorkerRepo: newFakeWorkerRepo()}

	created, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Empty(t, created.Security.PasswordHash, "hashes never leave the service")

	stored := repo.agents[created.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.Security.PasswordHash), []byte("long-enough-pass")))
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeAgentRepo()
	svc := &DefaultAgentService{Repo: repo, WorkerRepo: newFakeWorkerRepo()}

	created, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "joy@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "long-enough-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	authed, err := svc.Authenticate(context.Background(), "joy@example.com", "long-enough-pass")
	require.NoError(t, err)
	require.NotEmpty(t, authed.Security.Token)
	assert.Equal(t, utils.HashToken(authed.Security.Token), repo.agents[created.ID].Security.TokenHash)
}

func TestAuthenticateRotatesTokenHash(t *testing.T) {
	repo := newFakeAgentRepo()
	svc := &DefaultAgentService{Repo: repo, WorkerRepo: newFakeWorkerRepo()}

	created, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "joy@example.com", "long-enough-pass")
	require.NoError(t, err)

	second, err := svc.Authenticate(context.Background(), "joy@example.com", "long-enough-pass")
	require.NoError(t, err)

	// The stored hash follows the latest login, so older tokens fail the
	// session check even before expiry.
	assert.Equal(t, utils.HashToken(second.Security.Token), repo.agents[created.ID].Security.TokenHash)
}

func TestVerifyWorker(t *testing.T) {
	w := &models.Worker{ID: "worker-1", AgentID: "agent-1", VerificationStatus: models.VerificationPending}
	workers := newFakeWorkerRepo(w)
	svc := &DefaultAgentService{Repo: newFakeAgentRepo(), WorkerRepo: workers}

	require.NoError(t, svc.VerifyWorker(context.Background(), "agent-1", "worker-1", true))
	assert.Equal(t, models.VerificationVerified, workers.workers["worker-1"].VerificationStatus)

	require.NoError(t, svc.VerifyWorker(context.Background(), "agent-1", "worker-1", false))
	assert.Equal(t, models.VerificationRejected, workers.workers["worker-1"].VerificationStatus)
}

func TestVerifyWorkerForeignAgent(t *testing.T) {
	w := &models.Worker{ID: "worker-1", AgentID: "agent-1", VerificationStatus: models.VerificationPending}
	workers := newFakeWorkerRepo(w)
	svc := &DefaultAgentService{Repo: newFakeAgentRepo(), WorkerRepo: workers}

	err := svc.VerifyWorker(context.Background(), "agent-2", "worker-1", true)
	assert.ErrorIs(t, err, ErrWorkerNotManaged)
	assert.Equal(t, models.VerificationPending, workers.workers["worker-1"].VerificationStatus,
		"a foreign agent's decision must not stick")
}
