package operations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.supervision.dev/internal/platform/common"
	"go.supervision.dev/internal/platform/eventtype"
)

// MockRepository implements a mock event type repository for testing
type MockRepository struct {
	mu      sync.Mutex
	records map[string]eventtype.EventType
	nextID  int

	saveErr   error
	findErr   error
	deleteErr error
	listErr   error
	countErr  error

	saveCalls   int
	searchCalls int
	countCalls  int

	// Canned results for FindAll/Search; when nil the map contents are
	// returned in unspecified order.
	findAllResult []eventtype.EventType
	searchResult  []eventtype.EventType
	countResult   int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		records: make(map[string]eventtype.EventType),
	}
}

func (m *MockRepository) Save(ctx context.Context, et eventtype.EventType) (eventtype.EventType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.saveErr != nil {
		return eventtype.EventType{}, m.saveErr
	}
	if et.ID == "" {
		m.nextID++
		et.ID = fmt.Sprintf("test-id-%d", m.nextID)
	}
	m.records[et.ID] = et
	return et, nil
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*eventtype.EventType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	if et, ok := m.records[id]; ok {
		return &et, nil
	}
	return nil, nil
}

func (m *MockRepository) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.records, id)
	return nil
}

func (m *MockRepository) FindAll(ctx context.Context, req eventtype.PageRequest) ([]eventtype.EventType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.findAllResult != nil {
		return m.findAllResult, nil
	}
	var all []eventtype.EventType
	for _, et := range m.records {
		all = append(all, et)
	}
	return all, nil
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls++
	if m.countErr != nil {
		return 0, m.countErr
	}
	if m.findAllResult != nil || m.searchResult != nil {
		return m.countResult, nil
	}
	return int64(len(m.records)), nil
}

func (m *MockRepository) Search(ctx context.Context, query string, req eventtype.PageRequest) ([]eventtype.EventType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.searchResult, nil
}

func (m *MockRepository) CountByQuery(ctx context.Context, query string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.countCalls++
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.countResult, nil
}

func boolPtr(b bool) *bool { return &b }

// === Create ===

func TestCreate_StampsTimestamps(t *testing.T) {
	repo := NewMockRepository()
	uc := NewCreateEventTypeUseCase(repo)

	before := time.Now()
	result := uc.Execute(context.Background(), CreateEventTypeCommand{
		Name:        "Deploy",
		Description: "Deployment event",
		Active:      boolPtr(true),
	})
	after := time.Now()

	if result.IsFailure() {
		t.Fatalf("Expected success, got %v", result.Error())
	}

	et := result.Value()
	if et.ID == "" {
		t.Error("Expected a generated ID")
	}
	if !et.CreatedAt.Equal(et.UpdatedAt) {
		t.Errorf("Expected createdAt == updatedAt, got %v / %v", et.CreatedAt, et.UpdatedAt)
	}
	if et.CreatedAt.Before(before) || et.CreatedAt.After(after) {
		t.Errorf("Expected createdAt within call window, got %v", et.CreatedAt)
	}
	if !et.Active {
		t.Error("Expected active true")
	}
}

func TestCreate_ActiveDefaultsTrue(t *testing.T) {
	repo := NewMockRepository()
	uc := NewCreateEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), CreateEventTypeCommand{Name: "Deploy"})

	if result.IsFailure() {
		t.Fatalf("Expected success, got %v", result.Error())
	}
	if !result.Value().Active {
		t.Error("Expected active to default to true when unspecified")
	}
}

func TestCreate_BlankNameRejected(t *testing.T) {
	repo := NewMockRepository()
	uc := NewCreateEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), CreateEventTypeCommand{Name: "   "})

	if result.IsSuccess() {
		t.Fatal("Expected validation failure")
	}
	if result.Error().Kind != common.ErrorKindValidation {
		t.Errorf("Expected validation error, got %v", result.Error().Kind)
	}
	if repo.saveCalls != 0 {
		t.Errorf("Expected no save call, got %d", repo.saveCalls)
	}
}

func TestCreate_RepositoryFailure(t *testing.T) {
	repo := NewMockRepository()
	repo.saveErr = errors.New("connection reset")
	uc := NewCreateEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), CreateEventTypeCommand{Name: "Deploy"})

	if result.IsSuccess() {
		t.Fatal("Expected failure")
	}
	if result.Error().Kind != common.ErrorKindInternal {
		t.Errorf("Expected internal error, got %v", result.Error().Kind)
	}
}

// === Get ===

func TestGet_Found(t *testing.T) {
	repo := NewMockRepository()
	saved, _ := repo.Save(context.Background(), eventtype.EventType{Name: "Deploy"})
	uc := NewGetEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), saved.ID)

	if result.IsFailure() {
		t.Fatalf("Expected success, got %v", result.Error())
	}
	if result.Value().Name != "Deploy" {
		t.Errorf("Expected Deploy, got %s", result.Value().Name)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := NewMockRepository()
	uc := NewGetEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), "missing")

	if result.IsSuccess() {
		t.Fatal("Expected not-found failure")
	}
	if result.Error().Kind != common.ErrorKindNotFound {
		t.Errorf("Expected not-found error, got %v", result.Error().Kind)
	}
}

// === Update ===

func TestUpdate_PreservesIdentityAndCreationTime(t *testing.T) {
	repo := NewMockRepository()
	created := time.Now().Add(-time.Hour)
	saved, _ := repo.Save(context.Background(), eventtype.EventType{
		Name:      "Deploy",
		Active:    true,
		CreatedAt: created,
		UpdatedAt: created,
	})
	uc := NewUpdateEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), UpdateEventTypeCommand{
		ID:     saved.ID,
		Name:   "Deploy v2",
		Active: boolPtr(false),
	})

	if result.IsFailure() {
		t.Fatalf("Expected success, got %v", result.Error())
	}

	et := result.Value()
	if et.ID != saved.ID {
		t.Errorf("Expected ID %s, got %s", saved.ID, et.ID)
	}
	if !et.CreatedAt.Equal(created) {
		t.Errorf("Expected createdAt preserved, got %v", et.CreatedAt)
	}
	if !et.UpdatedAt.After(created) {
		t.Errorf("Expected updatedAt after createdAt, got %v", et.UpdatedAt)
	}
	if et.Name != "Deploy v2" || et.Active {
		t.Errorf("Expected replaced fields, got %+v", et)
	}
}

func TestUpdate_MissingIDYieldsNotFound(t *testing.T) {
	repo := NewMockRepository()
	uc := NewUpdateEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), UpdateEventTypeCommand{
		ID:   "missing",
		Name: "Deploy v2",
	})

	if result.IsSuccess() {
		t.Fatal("Expected not-found failure")
	}
	if result.Error().Kind != common.ErrorKindNotFound {
		t.Errorf("Expected not-found error, got %v", result.Error().Kind)
	}
	if repo.saveCalls != 0 {
		t.Error("Update of a missing ID must never save (no upsert)")
	}
	if len(repo.records) != 0 {
		t.Error("Update of a missing ID must not create a record")
	}
}

// === Delete ===

func TestDelete_Idempotent(t *testing.T) {
	repo := NewMockRepository()
	uc := NewDeleteEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), "never-existed")

	if result.IsFailure() {
		t.Fatalf("Expected deleting a missing ID to succeed, got %v", result.Error())
	}
}

func TestDelete_RemovesRecord(t *testing.T) {
	repo := NewMockRepository()
	saved, _ := repo.Save(context.Background(), eventtype.EventType{Name: "Deploy"})
	uc := NewDeleteEventTypeUseCase(repo)

	result := uc.Execute(context.Background(), saved.ID)

	if result.IsFailure() {
		t.Fatalf("Expected success, got %v", result.Error())
	}
	if _, ok := repo.records[saved.ID]; ok {
		t.Error("Expected record to be removed")
	}
}

// === List ===

func TestList_CombinesIndependentResults(t *testing.T) {
	repo := NewMockRepository()
	repo.findAllResult = []eventtype.EventType{
		{ID: "1", Name: "a"},
		{ID: "2", Name: "b"},
		{ID: "3", Name: "c"},
	}
	repo.countResult = 42
	uc := NewListEventTypesUseCase(repo)

	result := uc.Execute(context.Background(), eventtype.PageRequest{Page: 0, Size: 10})

	if result.IsFailure() {
		t.Fatalf("Expected success, got %v", result.Error())
	}

	page := result.Value()
	if len(page.Content) != 3 {
		t.Errorf("Expected 3 items, got %d", len(page.Content))
	}
	if page.Metadata.TotalElements != 42 {
		t.Errorf("Expected 42 total elements, got %d", page.Metadata.TotalElements)
	}
	if page.Metadata.TotalPages != 5 {
		t.Errorf("Expected 5 total pages, got %d", page.Metadata.TotalPages)
	}
	// Content ordering preserved as returned
	if page.Content[0].ID != "1" || page.Content[2].ID != "3" {
		t.Errorf("Expected repository ordering preserved, got %+v", page.Content)
	}
}

func TestList_CountFailurePropagates(t *testing.T) {
	repo := NewMockRepository()
	repo.findAllResult = []eventtype.EventType{}
	repo.countErr = errors.New("timeout")
	uc := NewListEventTypesUseCase(repo)

	result := uc.Execute(context.Background(), eventtype.PageRequest{Page: 0, Size: 10})

	if result.IsSuccess() {
		t.Fatal("Expected failure when count fails")
	}
	if result.Error().Kind != common.ErrorKindInternal {
		t.Errorf("Expected internal error, got %v", result.Error().Kind)
	}
}

// === Search ===

func TestSearch_BlankQueryRejectedBeforeRepository(t *testing.T) {
	repo := NewMockRepository()
	uc := NewSearchEventTypesUseCase(repo)

	for _, query := range []string{"", "   ", "\t\n"} {
		result := uc.Execute(context.Background(), query, eventtype.PageRequest{Page: 0, Size: 10})

		if result.IsSuccess() {
			t.Fatalf("Expected failure for query %q", query)
		}
		if result.Error().Kind != common.ErrorKindBusinessRule {
			t.Errorf("Expected business rule error for %q, got %v", query, result.Error().Kind)
		}
	}

	if repo.searchCalls != 0 || repo.countCalls != 0 {
		t.Errorf("Blank query must never reach the repository (search=%d count=%d)",
			repo.searchCalls, repo.countCalls)
	}
}

func TestSearch_CombinesIndependentResults(t *testing.T) {
	repo := NewMockRepository()
	repo.searchResult = []eventtype.EventType{
		{ID: "1", Name: "Deploy"},
		{ID: "2", Name: "Redeploy"},
	}
	repo.countResult = 7
	uc := NewSearchEventTypesUseCase(repo)

	result := uc.Execute(context.Background(), "deploy", eventtype.PageRequest{Page: 0, Size: 10})

	if result.IsFailure() {
		t.Fatalf("Expected success, got %v", result.Error())
	}

	page := result.Value()
	if len(page.Content) != 2 {
		t.Errorf("Expected 2 items, got %d", len(page.Content))
	}
	if page.Metadata.TotalElements != 7 {
		t.Errorf("Expected count independent of page bounds (7), got %d", page.Metadata.TotalElements)
	}
	if page.Metadata.TotalPages != 1 {
		t.Errorf("Expected 1 total page, got %d", page.Metadata.TotalPages)
	}
}

// === End-to-end against the mock store ===

func TestEventTypeLifecycle(t *testing.T) {
	repo := NewMockRepository()
	ctx := context.Background()

	create := NewCreateEventTypeUseCase(repo)
	update := NewUpdateEventTypeUseCase(repo)
	del := NewDeleteEventTypeUseCase(repo)
	get := NewGetEventTypeUseCase(repo)

	created := create.Execute(ctx, CreateEventTypeCommand{
		Name:        "Deploy",
		Description: "Deployment event",
		Active:      boolPtr(true),
	})
	if created.IsFailure() {
		t.Fatalf("Create failed: %v", created.Error())
	}
	et := created.Value()
	if et.ID == "" || !et.Active || !et.CreatedAt.Equal(et.UpdatedAt) {
		t.Fatalf("Unexpected created entity: %+v", et)
	}

	updated := update.Execute(ctx, UpdateEventTypeCommand{
		ID:     et.ID,
		Name:   "Deploy v2",
		Active: boolPtr(false),
	})
	if updated.IsFailure() {
		t.Fatalf("Update failed: %v", updated.Error())
	}
	u := updated.Value()
	if u.ID != et.ID || !u.CreatedAt.Equal(et.CreatedAt) {
		t.Errorf("Update must preserve id and createdAt: %+v", u)
	}
	if u.Name != "Deploy v2" || u.Active {
		t.Errorf("Update must replace fields: %+v", u)
	}
	if u.UpdatedAt.Before(et.CreatedAt) {
		t.Errorf("Expected updatedAt not earlier than createdAt")
	}

	if r := del.Execute(ctx, et.ID); r.IsFailure() {
		t.Fatalf("Delete failed: %v", r.Error())
	}

	got := get.Execute(ctx, et.ID)
	if got.IsSuccess() {
		t.Error("Expected get after delete to report not found")
	}
	if got.Error().Kind != common.ErrorKindNotFound {
		t.Errorf("Expected not-found, got %v", got.Error().Kind)
	}
}
