package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"vaga-hub/internal/domain/activity"
	"vaga-hub/internal/domain/job"
	"vaga-hub/internal/domain/user"
	"vaga-hub/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs []job.Job
	err  error

	incremented map[string]int
}

func (m *mockJobRepo) ListAll(context.Context) ([]job.Job, error) {
	return m.jobs, m.err
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, j := range m.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, j)
	return nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.jobs {
		if m.jobs[i].ID == j.ID {
			m.jobs[i] = j
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) IncrementCounter(_ context.Context, id uuid.UUID, counter string) error {
	for _, j := range m.jobs {
		if j.ID == id {
			if m.incremented == nil {
				m.incremented = map[string]int{}
			}
			m.incremented[counter]++
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) BulkUpsert(_ context.Context, jobs []job.Job) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.jobs = append(m.jobs, jobs...)
	return len(jobs), nil
}

type mockUserRepo struct {
	profile user.Profile
	users   []user.User
	err     error
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	m.users = append(m.users, u)
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) GetProfile(context.Context, uuid.UUID) (user.Profile, error) {
	return m.profile, m.err
}

func (m *mockUserRepo) UpsertProfile(_ context.Context, p user.Profile) error {
	m.profile = p
	return m.err
}

// mockCache is a plain in-memory SearchCache with no TTL handling.
type mockCache struct {
	mu      sync.Mutex
	store   map[string][]byte
	deleted []string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.store {
		if strings.HasPrefix(k, prefix) {
			delete(m.store, k)
		}
	}
	m.deleted = append(m.deleted, pattern)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[key]; ok {
		return false, nil
	}
	m.store[key] = []byte(value)
	return true, nil
}

type mockSavedJobRepo struct {
	saved   []activity.SavedJob
	folders []activity.Folder
	err     error
}

func (m *mockSavedJobRepo) Save(_ context.Context, s activity.SavedJob) error {
	if m.err != nil {
		return m.err
	}
	for _, ex := range m.saved {
		if ex.UserID == s.UserID && ex.JobID == s.JobID {
			return repository.ErrAlreadySaved
		}
	}
	m.saved = append(m.saved, s)
	return nil
}

func (m *mockSavedJobRepo) Unsave(_ context.Context, userID, jobID uuid.UUID) error {
	for i, s := range m.saved {
		if s.UserID == userID && s.JobID == jobID {
			m.saved = append(m.saved[:i], m.saved[i+1:]...)
			return nil
		}
	}
	return repository.ErrSavedJobNotFound
}

func (m *mockSavedJobRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]activity.SavedJob, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []activity.SavedJob{}
	for _, s := range m.saved {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSavedJobRepo) IsSaved(_ context.Context, userID, jobID uuid.UUID) (bool, error) {
	for _, s := range m.saved {
		if s.UserID == userID && s.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockSavedJobRepo) SetFolder(_ context.Context, userID, jobID uuid.UUID, folderID *uuid.UUID) error {
	for i, s := range m.saved {
		if s.UserID == userID && s.JobID == jobID {
			m.saved[i].FolderID = folderID
			return nil
		}
	}
	return repository.ErrSavedJobNotFound
}

func (m *mockSavedJobRepo) CreateFolder(_ context.Context, f activity.Folder) error {
	for _, ex := range m.folders {
		if ex.UserID == f.UserID && ex.Name == f.Name {
			return repository.ErrFolderExists
		}
	}
	m.folders = append(m.folders, f)
	return nil
}

func (m *mockSavedJobRepo) DeleteFolder(_ context.Context, userID, folderID uuid.UUID) error {
	for i, f := range m.folders {
		if f.UserID == userID && f.ID == folderID {
			m.folders = append(m.folders[:i], m.folders[i+1:]...)
			return nil
		}
	}
	return repository.ErrFolderNotFound
}

func (m *mockSavedJobRepo) ListFolders(_ context.Context, userID uuid.UUID) ([]activity.Folder, error) {
	out := []activity.Folder{}
	for _, f := range m.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

type mockReportRepo struct {
	reports []job.Report
	err     error
}

func (m *mockReportRepo) Create(_ context.Context, r job.Report) error {
	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, r)
	return nil
}

func (m *mockReportRepo) List(_ context.Context, status string) ([]job.Report, error) {
	if m.err != nil {
		return nil, m.err
	}
	if status == "" {
		return m.reports, nil
	}
	out := []job.Report{}
	for _, r := range m.reports {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReportRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	for i, r := range m.reports {
		if r.ID == id {
			m.reports[i].Status = status
			return nil
		}
	}
	return repository.ErrReportNotFound
}

type mockPublisher struct {
	events []string
}

func (m *mockPublisher) Publish(event string, _ any) {
	m.events = append(m.events, event)
}
