package lead

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	leadRepo "scopex/database/repository/lead"
	"scopex/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemoteRepo is an in-memory RemoteLeadRepository. With failAll set it
// behaves like an unreachable remote store.
type fakeRemoteRepo struct {
	mu      sync.Mutex
	records map[models.LeadCategory][]models.LeadRecord
	failAll bool
}

func newFakeRemoteRepo() *fakeRemoteRepo {
	return &fakeRemoteRepo{records: make(map[models.LeadCategory][]models.LeadRecord)}
}

var errRemoteDown = errors.New("remote store unreachable")

func (f *fakeRemoteRepo) Create(_ context.Context, category models.LeadCategory, record models.LeadRecord) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return "", errRemoteDown
	}
	f.records[category] = append(f.records[category], record)
	return record.ID, nil
}

func (f *fakeRemoteRepo) ListAll(_ context.Context, category models.LeadCategory) ([]models.LeadRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errRemoteDown
	}
	out := make([]models.LeadRecord, len(f.records[category]))
	copy(out, f.records[category])
	return out, nil
}

func (f *fakeRemoteRepo) Update(_ context.Context, category models.LeadCategory, id string, patch models.LeadPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errRemoteDown
	}
	for i := range f.records[category] {
		if f.records[category][i].ID == id {
			patch.Apply(&f.records[category][i])
			return nil
		}
	}
	return errors.New("lead not found")
}

func (f *fakeRemoteRepo) Delete(_ context.Context, category models.LeadCategory, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errRemoteDown
	}
	recs := f.records[category]
	for i := range recs {
		if recs[i].ID == id {
			f.records[category] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return errors.New("lead not found")
}

var _ leadRepo.RemoteLeadRepository = (*fakeRemoteRepo)(nil)

func newTestCache(t *testing.T) *LocalLeadCache {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return NewLocalLeadCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func newTestRegistry(t *testing.T, remote *fakeRemoteRepo) *DefaultLeadRegistry {
	t.Helper()
	return &DefaultLeadRegistry{Cache: newTestCache(t), Remote: remote}
}

func apexEnquiry() models.LeadRecord {
	return models.LeadRecord{
		HospitalName: "Apex Heart Institute",
		ContactName:  "Dr. Rahul Sharma",
		Mobile:       "9827012345",
		Interest:     "Full Lab Outsourcing",
	}
}

func TestSubmit_SucceedsWithRemoteDown(t *testing.T) {
	remote := newFakeRemoteRepo()
	remote.failAll = true
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	ok := registry.Submit(ctx, models.CategoryHospital, apexEnquiry())
	require.True(t, ok)

	listed := registry.List(ctx)
	require.Len(t, listed, 1)
	got := listed[0]
	assert.Equal(t, models.CategoryHospital, got.Category)
	assert.Equal(t, models.StatusNew, got.Status)
	assert.Equal(t, "Apex Heart Institute", got.HospitalName)
	assert.Equal(t, "Dr. Rahul Sharma", got.ContactName)
	assert.Equal(t, "9827012345", got.Mobile)
	assert.Equal(t, "Full Lab Outsourcing", got.Interest)
	assert.True(t, models.IsLocalID(got.ID))
	assert.NotEmpty(t, got.SubmittedAt)
}

func TestSubmit_NotifiesSubscribersOnce(t *testing.T) {
	registry := newTestRegistry(t, newFakeRemoteRepo())

	var mu sync.Mutex
	var seen []models.LeadRecord
	registry.Subscribe(func(r models.LeadRecord) {
		mu.Lock()
		seen = append(seen, r)
		mu.Unlock()
	})

	require.True(t, registry.Submit(context.Background(), models.CategoryHospital, apexEnquiry()))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.Equal(t, "Apex Heart Institute", seen[0].HospitalName)
	assert.True(t, models.IsLocalID(seen[0].ID))
}

func TestSubmit_BackgroundRemoteWrite(t *testing.T) {
	remote := newFakeRemoteRepo()
	registry := newTestRegistry(t, remote)

	require.True(t, registry.Submit(context.Background(), models.CategoryCamp, models.LeadRecord{
		FullName:     "Amit Verma",
		Organization: "Tech Mahindra SEZ",
		Phone:        "8889912344",
		Email:        "amit@techm.com",
		Date:         "2024-11-15",
		Headcount:    "200-500",
		Requirements: "Full wellness screening for 400 employees over 2 days.",
	}))

	assert.Eventually(t, func() bool {
		recs, err := remote.ListAll(context.Background(), models.CategoryCamp)
		return err == nil && len(recs) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestList_DedupsLocalAgainstRemote(t *testing.T) {
	remote := newFakeRemoteRepo()
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	// A local submission that also landed remotely under a
	// remote-confirmed id.
	cached := apexEnquiry()
	cached.ID = models.LocalIDPrefix + "abc"
	cached.Category = models.CategoryHospital
	cached.SubmittedAt = time.Now().Format(models.SubmittedAtLayout)
	cached.Status = models.StatusNew
	require.NoError(t, registry.Cache.SaveCategory(ctx, models.CategoryHospital, []models.LeadRecord{cached}))

	confirmed := cached
	confirmed.ID = "remote-1"
	remote.records[models.CategoryHospital] = []models.LeadRecord{confirmed}

	listed := registry.List(ctx)

	require.Len(t, listed, 1)
	assert.Equal(t, "remote-1", listed[0].ID)
}

func TestList_IsIdempotent(t *testing.T) {
	remote := newFakeRemoteRepo()
	remote.failAll = true
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	require.True(t, registry.Submit(ctx, models.CategoryHospital, apexEnquiry()))
	require.True(t, registry.Submit(ctx, models.CategoryCamp, models.LeadRecord{
		FullName:     "Amit Verma",
		Organization: "Tech Mahindra SEZ",
		Phone:        "8889912344",
		Email:        "amit@techm.com",
		Date:         "2024-11-15",
		Headcount:    "200-500",
		Requirements: "Screening camp",
	}))

	first := registry.List(ctx)
	second := registry.List(ctx)

	assert.Equal(t, idsOf(first), idsOf(second))
}

func TestUpdate_LocalRecordVisibility(t *testing.T) {
	remote := newFakeRemoteRepo()
	remote.failAll = true
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	require.True(t, registry.Submit(ctx, models.CategoryHospital, apexEnquiry()))
	id := registry.List(ctx)[0].ID

	closed := models.StatusClosed
	notes := "Contract signed"
	ok := registry.Update(ctx, id, models.CategoryHospital, models.LeadPatch{Status: &closed, AdminNotes: &notes})
	require.True(t, ok)

	got := registry.List(ctx)[0]
	assert.Equal(t, models.StatusClosed, got.Status)
	assert.Equal(t, "Contract signed", got.AdminNotes)
	// Other fields untouched.
	assert.Equal(t, "Apex Heart Institute", got.HospitalName)
	assert.Equal(t, "9827012345", got.Mobile)
}

func TestUpdate_RemoteOnlyRecord(t *testing.T) {
	remote := newFakeRemoteRepo()
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	rec := apexEnquiry()
	rec.ID = "remote-1"
	rec.Category = models.CategoryHospital
	rec.Status = models.StatusNew
	rec.SubmittedAt = time.Now().Format(models.SubmittedAtLayout)
	remote.records[models.CategoryHospital] = []models.LeadRecord{rec}

	following := models.StatusFollowingUp
	require.True(t, registry.Update(ctx, "remote-1", models.CategoryHospital, models.LeadPatch{Status: &following}))

	got := registry.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusFollowingUp, got[0].Status)
}

func TestUpdate_UnknownIDFails(t *testing.T) {
	registry := newTestRegistry(t, newFakeRemoteRepo())

	closed := models.StatusClosed
	assert.False(t, registry.Update(context.Background(), "remote-missing", models.CategoryHospital, models.LeadPatch{Status: &closed}))
}

func TestDelete_LocalOnlyRecord(t *testing.T) {
	remote := newFakeRemoteRepo()
	remote.failAll = true
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	require.True(t, registry.Submit(ctx, models.CategoryHospital, apexEnquiry()))
	id := registry.List(ctx)[0].ID
	require.True(t, models.IsLocalID(id))

	// A local-only id needs only the local deletion, even with the remote
	// store down.
	require.True(t, registry.Delete(ctx, id, models.CategoryHospital))
	assert.Empty(t, registry.List(ctx))
}

func TestDelete_RemovesFromBothStores(t *testing.T) {
	remote := newFakeRemoteRepo()
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	rec := apexEnquiry()
	rec.ID = "remote-1"
	rec.Category = models.CategoryHospital
	rec.SubmittedAt = time.Now().Format(models.SubmittedAtLayout)
	remote.records[models.CategoryHospital] = []models.LeadRecord{rec}
	require.NoError(t, registry.Cache.SaveCategory(ctx, models.CategoryHospital, []models.LeadRecord{rec}))

	require.True(t, registry.Delete(ctx, "remote-1", models.CategoryHospital))

	assert.Empty(t, registry.List(ctx))
	recs, err := remote.ListAll(ctx, models.CategoryHospital)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestDelete_RemoteFailureReportsFalse(t *testing.T) {
	remote := newFakeRemoteRepo()
	registry := newTestRegistry(t, remote)
	ctx := context.Background()

	rec := apexEnquiry()
	rec.ID = "remote-1"
	rec.Category = models.CategoryHospital
	require.NoError(t, registry.Cache.SaveCategory(ctx, models.CategoryHospital, []models.LeadRecord{rec}))
	remote.failAll = true

	assert.False(t, registry.Delete(ctx, "remote-1", models.CategoryHospital))
}
