package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"talent-match/internal/domain/application"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/objective"
	"talent-match/internal/domain/record"
	"talent-match/internal/domain/review"
	"talent-match/internal/domain/user"
	"talent-match/internal/pkg/metrics"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)

func testMetrics() *metrics.Manager {
	return metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
}

type fakeUsers struct {
	byID map[uuid.UUID]user.User
	err  error
}

func newFakeUsers(us ...user.User) *fakeUsers {
	f := &fakeUsers{byID: map[uuid.UUID]user.User{}}
	for _, u := range us {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u user.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) ListPending(context.Context) ([]user.User, error) {
	out := make([]user.User, 0)
	for _, u := range f.byID {
		if !u.IsApproved {
			out = append(out, u)
		}
	}
	return out, f.err
}

func (f *fakeUsers) Approve(_ context.Context, id uuid.UUID, role user.Role) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.IsApproved = true
	u.Role = role
	f.byID[id] = u
	return nil
}

func (f *fakeUsers) CountPending(ctx context.Context) (int, error) {
	out, err := f.ListPending(ctx)
	return len(out), err
}

func (f *fakeUsers) ListApproved(_ context.Context, role user.Role) ([]user.User, error) {
	out := make([]user.User, 0)
	for _, u := range f.byID {
		if u.IsApproved && u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName() < out[j].FullName() })
	return out, f.err
}

func (f *fakeUsers) UpdateProfile(_ context.Context, u user.User) error {
	if f.err != nil {
		return f.err
	}
	cur, ok := f.byID[u.ID]
	if !ok {
		return user.ErrNotFound
	}
	cur.FirstName, cur.LastName = u.FirstName, u.LastName
	cur.Department, cur.Position = u.Department, u.Position
	f.byID[u.ID] = cur
	return nil
}

type fakeOffers struct {
	byID     map[uuid.UUID]job.Offer
	getErr   error
	eligible decimal.Decimal
}

func newFakeOffers(os ...job.Offer) *fakeOffers {
	f := &fakeOffers{byID: map[uuid.UUID]job.Offer{}}
	for _, o := range os {
		f.byID[o.ID] = o
	}
	return f
}

func (f *fakeOffers) Create(_ context.Context, o job.Offer) error {
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOffers) GetByID(ctx context.Context, id uuid.UUID) (job.Offer, error) {
	if f.getErr != nil {
		return job.Offer{}, f.getErr
	}
	if err := ctx.Err(); err != nil {
		return job.Offer{}, err
	}
	o, ok := f.byID[id]
	if !ok {
		return job.Offer{}, repository.ErrJobOfferNotFound
	}
	return o, nil
}

func (f *fakeOffers) List(context.Context) ([]job.Offer, error) {
	out := make([]job.Offer, 0, len(f.byID))
	for _, o := range f.byID {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOffers) ListEligible(_ context.Context, avg decimal.Decimal) ([]job.Offer, error) {
	f.eligible = avg
	out := make([]job.Offer, 0)
	for _, o := range f.byID {
		if o.IsActive() && o.MinPerformanceScore.LessThanOrEqual(avg) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOffers) UpdateStatus(_ context.Context, id uuid.UUID, status job.Status) error {
	o, ok := f.byID[id]
	if !ok {
		return repository.ErrJobOfferNotFound
	}
	o.Status = status
	f.byID[id] = o
	return nil
}

func (f *fakeOffers) CountActive(context.Context) (int, error) {
	n := 0
	for _, o := range f.byID {
		if o.IsActive() {
			n++
		}
	}
	return n, nil
}

type fakeCandidates struct {
	pool  []matching.CandidateProfile
	err   error
	delay time.Duration
	calls int
}

func (f *fakeCandidates) ListProfiles(ctx context.Context) ([]matching.CandidateProfile, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.pool, nil
}

func (f *fakeCandidates) GetProfile(_ context.Context, id uuid.UUID) (matching.CandidateProfile, error) {
	for _, p := range f.pool {
		if p.ID == id {
			return p, nil
		}
	}
	return matching.CandidateProfile{}, user.ErrNotFound
}

type fakeApplications struct {
	items     []application.Application
	createErr error
}

func (f *fakeApplications) Create(_ context.Context, a application.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, a)
	return nil
}

func (f *fakeApplications) Exists(_ context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	for _, a := range f.items {
		if a.JobOfferID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplications) ListByJob(_ context.Context, jobID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range f.items {
		if a.JobOfferID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplications) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, a := range f.items {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplications) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status, notes *string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			if notes != nil {
				f.items[i].HRNotes = notes
			}
			return nil
		}
	}
	return repository.ErrApplicationNotFound
}

func (f *fakeApplications) CountPending(context.Context) (int, error) {
	n := 0
	for _, a := range f.items {
		if a.Status == application.StatusPending {
			n++
		}
	}
	return n, nil
}

type fakeReviews struct {
	items []review.Review
	avg   decimal.Decimal
}

func (f *fakeReviews) Create(_ context.Context, rv review.Review) error {
	f.items = append(f.items, rv)
	return nil
}

func (f *fakeReviews) ListByReviewer(_ context.Context, reviewerID uuid.UUID) ([]review.Review, error) {
	out := make([]review.Review, 0)
	for _, rv := range f.items {
		if rv.ReviewerID == reviewerID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviews) ListByEmployee(_ context.Context, employeeID uuid.UUID) ([]review.Review, error) {
	out := make([]review.Review, 0)
	for _, rv := range f.items {
		if rv.EmployeeID == employeeID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (f *fakeReviews) AverageForEmployee(context.Context, uuid.UUID) (decimal.Decimal, int, error) {
	return f.avg, len(f.items), nil
}

type fakeRecords struct {
	achievements []record.Achievement
	certificates []record.Certificate
}

func (f *fakeRecords) CreateAchievement(_ context.Context, a record.Achievement) error {
	f.achievements = append(f.achievements, a)
	return nil
}

func (f *fakeRecords) ListAchievements(context.Context, uuid.UUID) ([]record.Achievement, error) {
	return f.achievements, nil
}

func (f *fakeRecords) CreateCertificate(_ context.Context, c record.Certificate) error {
	f.certificates = append(f.certificates, c)
	return nil
}

func (f *fakeRecords) ListCertificates(context.Context, uuid.UUID) ([]record.Certificate, error) {
	return f.certificates, nil
}

type fakeObjectives struct {
	byID     map[uuid.UUID]objective.Objective
	progress []objective.Progress
	approved map[uuid.UUID]bool
	addErr   error
}

func newFakeObjectives(os ...objective.Objective) *fakeObjectives {
	f := &fakeObjectives{byID: map[uuid.UUID]objective.Objective{}, approved: map[uuid.UUID]bool{}}
	for _, o := range os {
		f.byID[o.ID] = o
	}
	return f
}

func (f *fakeObjectives) Create(_ context.Context, o objective.Objective) error {
	f.byID[o.ID] = o
	return nil
}

func (f *fakeObjectives) GetByID(_ context.Context, id uuid.UUID) (objective.Objective, error) {
	o, ok := f.byID[id]
	if !ok {
		return objective.Objective{}, repository.ErrObjectiveNotFound
	}
	return o, nil
}

func (f *fakeObjectives) ListByUser(_ context.Context, userID uuid.UUID) ([]objective.Objective, error) {
	out := make([]objective.Objective, 0)
	for _, o := range f.byID {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeObjectives) ListForApproved(context.Context) ([]objective.Objective, error) {
	out := make([]objective.Objective, 0)
	for _, o := range f.byID {
		if f.approved[o.UserID] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeObjectives) AddProgress(_ context.Context, o objective.Objective, p objective.Progress) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.byID[o.ID] = o
	f.progress = append(f.progress, p)
	return nil
}

// memCache stores JSON like the Redis cache does so round trips are realistic.
type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Notify(event string, _ any) {
	n.events = append(n.events, event)
}
