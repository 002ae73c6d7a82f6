package profile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezina/inkwell/domain"
)

type mockProfileRepo struct {
	stores  int
	updates int

	about     domain.AboutMe
	aboutErr  error
	cvFile    string
	cvFileErr error
}

func (m *mockProfileRepo) Skills(context.Context) ([]domain.Skill, error) { return nil, nil }

func (m *mockProfileRepo) StoreSkill(_ context.Context, s *domain.Skill) error {
	m.stores++
	s.ID = 11
	return nil
}

func (m *mockProfileRepo) UpdateSkill(context.Context, *domain.Skill) error {
	m.updates++
	return nil
}

func (m *mockProfileRepo) DeleteSkill(context.Context, int64) error { return nil }

func (m *mockProfileRepo) LifeEvents(context.Context) ([]domain.LifeEvent, error) { return nil, nil }
func (m *mockProfileRepo) StoreLifeEvent(_ context.Context, e *domain.LifeEvent) error {
	m.stores++
	return nil
}
func (m *mockProfileRepo) UpdateLifeEvent(context.Context, *domain.LifeEvent) error {
	m.updates++
	return nil
}
func (m *mockProfileRepo) DeleteLifeEvent(context.Context, int64) error { return nil }

func (m *mockProfileRepo) Connections(context.Context) ([]domain.Connection, error) {
	return nil, nil
}
func (m *mockProfileRepo) StoreConnection(_ context.Context, c *domain.Connection) error {
	m.stores++
	return nil
}
func (m *mockProfileRepo) UpdateConnection(context.Context, *domain.Connection) error {
	m.updates++
	return nil
}
func (m *mockProfileRepo) DeleteConnection(context.Context, int64) error { return nil }

func (m *mockProfileRepo) Expenses(context.Context) ([]domain.Expense, error) { return nil, nil }
func (m *mockProfileRepo) StoreExpense(_ context.Context, e *domain.Expense) error {
	m.stores++
	return nil
}
func (m *mockProfileRepo) UpdateExpense(context.Context, *domain.Expense) error {
	m.updates++
	return nil
}
func (m *mockProfileRepo) DeleteExpense(context.Context, int64) error { return nil }

func (m *mockProfileRepo) About(context.Context) (domain.AboutMe, error) {
	return m.about, m.aboutErr
}
func (m *mockProfileRepo) UpdateAbout(context.Context, *domain.AboutMe) error { return nil }
func (m *mockProfileRepo) SetCVFile(_ context.Context, fileName string) error {
	if m.cvFileErr != nil {
		return m.cvFileErr
	}
	m.cvFile = fileName
	return nil
}

func TestSaveDispatchesOnID(t *testing.T) {
	repo := &mockProfileRepo{}
	svc := NewService(repo, t.TempDir())
	ctx := context.Background()

	require.NoError(t, svc.SaveSkill(ctx, &domain.Skill{Name: "Go", Specialties: []string{"svc"}}))
	assert.Equal(t, 1, repo.stores)
	assert.Zero(t, repo.updates)

	require.NoError(t, svc.SaveSkill(ctx, &domain.Skill{ID: 4, Name: "Go", Specialties: []string{"svc"}}))
	assert.Equal(t, 1, repo.stores)
	assert.Equal(t, 1, repo.updates)

	require.NoError(t, svc.SaveExpense(ctx, &domain.Expense{Title: "host"}))
	require.NoError(t, svc.SaveExpense(ctx, &domain.Expense{ID: 2, Title: "host"}))
	assert.Equal(t, 2, repo.stores)
	assert.Equal(t, 2, repo.updates)
}

func TestStoreCVRejectsNonPDF(t *testing.T) {
	svc := NewService(&mockProfileRepo{}, t.TempDir())

	_, err := svc.StoreCV(context.Background(), "resume.docx", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestStoreCVWritesAndRecords(t *testing.T) {
	repo := &mockProfileRepo{}
	dir := t.TempDir()
	svc := NewService(repo, dir)

	stored, err := svc.StoreCV(context.Background(), "My CV.PDF", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, stored, repo.cvFile)

	data, err := os.ReadFile(filepath.Join(dir, stored))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestStoreCVCleansUpOnRecordFailure(t *testing.T) {
	repo := &mockProfileRepo{cvFileErr: errors.New("db down")}
	dir := t.TempDir()
	svc := NewService(repo, dir)

	_, err := svc.StoreCV(context.Background(), "cv.pdf", []byte("x"))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCVPath(t *testing.T) {
	t.Run("no cv stored", func(t *testing.T) {
		svc := NewService(&mockProfileRepo{}, "/srv/uploads")
		_, err := svc.CVPath(context.Background())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("resolves stored file", func(t *testing.T) {
		repo := &mockProfileRepo{about: domain.AboutMe{CVFileName: "cv-abc.pdf"}}
		svc := NewService(repo, "/srv/uploads")

		path, err := svc.CVPath(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/srv/uploads", "cv-abc.pdf"), path)
	})
}
