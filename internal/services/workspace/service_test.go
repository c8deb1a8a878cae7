package workspace

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/logging"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// newTestService builds a service over a fresh in-memory database
func newTestService(t *testing.T, clock models.Clock) (Service, *database.Repository) {
	t.Helper()
	repo := database.NewRepository(testutil.SetupTestDB(t))
	return NewService(repo, WithClock(clock), WithLogger(logging.Discard())), repo
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateWorkspace(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, testutil.FixedClock(testutil.BaseTime))

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "  Home  "})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	if ws.Name != "Home" {
		t.Errorf("expected trimmed name 'Home', got %q", ws.Name)
	}
	if !ws.CreatedAt.Equal(testutil.BaseTime) {
		t.Errorf("expected created_at %v, got %v", testutil.BaseTime, ws.CreatedAt)
	}
	if !ws.CreatedAt.Equal(ws.UpdatedAt) {
		t.Errorf("expected created_at == updated_at, got %v and %v", ws.CreatedAt, ws.UpdatedAt)
	}

	all, err := svc.GetAllWorkspaces(ctx)
	if err != nil {
		t.Fatalf("GetAllWorkspaces failed: %v", err)
	}
	found := 0
	for _, w := range all {
		if w.ID == ws.ID {
			found++
		}
	}
	if found != 1 {
		t.Errorf("expected new workspace listed exactly once, found %d", found)
	}
}

func TestCreateWorkspace_Validation(t *testing.T) {
	svc, repo := newTestService(t, models.SystemClock)

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyName},
		{"whitespace only", " \t\n", ErrEmptyName},
		{"too long", strings.Repeat("a", MaxNameLength+1), ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateWorkspace(context.Background(), CreateWorkspaceRequest{Name: tt.input})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, models.ErrValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}

	all, err := repo.GetAllWorkspaces(context.Background())
	if err != nil {
		t.Fatalf("GetAllWorkspaces failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rejected workspaces must not be stored, found %d", len(all))
	}
}

func TestCreateWorkspace_MaxLengthCountsCharacters(t *testing.T) {
	svc, _ := newTestService(t, models.SystemClock)

	// multi-byte runes count once each
	name := strings.Repeat("é", MaxNameLength)
	if _, err := svc.CreateWorkspace(context.Background(), CreateWorkspaceRequest{Name: name}); err != nil {
		t.Fatalf("expected %d-character name to be accepted, got %v", MaxNameLength, err)
	}
}

func TestCreateWorkspace_DuplicateNamesAllowed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, models.SystemClock)

	a, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	b, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("expected distinct ids, both were %d", a.ID)
	}
}

// ============================================================================
// READ
// ============================================================================

func TestGetWorkspaceByID_NotFound(t *testing.T) {
	svc, _ := newTestService(t, models.SystemClock)

	_, err := svc.GetWorkspaceByID(context.Background(), 404)
	if !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("expected ErrWorkspaceNotFound, got %v", err)
	}
}

func TestGetAllWorkspaces_OrderedByCreation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, testutil.StepClock(testutil.BaseTime, time.Second))

	for _, name := range []string{"Home", "Work", "Books"} {
		if _, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: name}); err != nil {
			t.Fatalf("CreateWorkspace(%s) failed: %v", name, err)
		}
	}

	all, err := svc.GetAllWorkspaces(ctx)
	if err != nil {
		t.Fatalf("GetAllWorkspaces failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 workspaces, got %d", len(all))
	}
	for i, want := range []string{"Home", "Work", "Books"} {
		if all[i].Name != want {
			t.Errorf("position %d: expected %s, got %s", i, want, all[i].Name)
		}
	}
}

func TestGetTaskCounts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, models.SystemClock)

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	now := time.Now().UTC()
	for i, done := range []bool{true, false, false} {
		_, err := repo.CreateTaskRecord(ctx, &models.Task{
			Title: "t", Completed: done, WorkspaceID: ws.ID, CreatedAt: now, UpdatedAt: now,
		})
		if err != nil {
			t.Fatalf("seed task %d failed: %v", i, err)
		}
	}

	counts, err := svc.GetTaskCounts(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetTaskCounts failed: %v", err)
	}
	if counts.Total != 3 || counts.Completed != 1 || counts.Open() != 2 {
		t.Errorf("unexpected counts %+v", counts)
	}

	if _, err := svc.GetTaskCounts(ctx, 999); !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("expected ErrWorkspaceNotFound, got %v", err)
	}
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdateWorkspace(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewManualClock(testutil.BaseTime)
	svc, _ := newTestService(t, clock.Now)

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}

	clock.Advance(time.Minute)
	newName := " House "
	updated, err := svc.UpdateWorkspace(ctx, UpdateWorkspaceRequest{ID: ws.ID, Name: &newName})
	if err != nil {
		t.Fatalf("UpdateWorkspace failed: %v", err)
	}
	if updated.Name != "House" {
		t.Errorf("expected name 'House', got %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(ws.CreatedAt) {
		t.Errorf("created_at changed from %v to %v", ws.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.Equal(testutil.BaseTime.Add(time.Minute)) {
		t.Errorf("expected updated_at to follow the clock, got %v", updated.UpdatedAt)
	}
}

func TestUpdateWorkspace_ClockGoesBackwards(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewManualClock(testutil.BaseTime)
	svc, _ := newTestService(t, clock.Now)

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}

	clock.Set(testutil.BaseTime.Add(-time.Hour))
	name := "Earlier"
	updated, err := svc.UpdateWorkspace(ctx, UpdateWorkspaceRequest{ID: ws.ID, Name: &name})
	if err != nil {
		t.Fatalf("UpdateWorkspace failed: %v", err)
	}
	if updated.UpdatedAt.Before(ws.UpdatedAt) {
		t.Errorf("updated_at moved backwards: %v -> %v", ws.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateWorkspace_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, models.SystemClock)

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}

	empty := "   "
	if _, err := svc.UpdateWorkspace(ctx, UpdateWorkspaceRequest{ID: ws.ID, Name: &empty}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	name := "Work"
	if _, err := svc.UpdateWorkspace(ctx, UpdateWorkspaceRequest{ID: 999, Name: &name}); !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("expected ErrWorkspaceNotFound, got %v", err)
	}

	got, err := svc.GetWorkspaceByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetWorkspaceByID failed: %v", err)
	}
	if got.Name != "Home" {
		t.Errorf("failed update must not change the name, got %q", got.Name)
	}
}

// ============================================================================
// DELETE
// ============================================================================

func TestDeleteWorkspace(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, models.SystemClock)

	ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}

	if err := svc.DeleteWorkspace(ctx, ws.ID); err != nil {
		t.Fatalf("DeleteWorkspace failed: %v", err)
	}
	if _, err := svc.GetWorkspaceByID(ctx, ws.ID); !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("expected workspace to be gone, got %v", err)
	}
	if err := svc.DeleteWorkspace(ctx, ws.ID); !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("second delete: expected ErrWorkspaceNotFound, got %v", err)
	}
}

func TestDeleteWorkspace_WithTasksConflicts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t, models.SystemClock)

	// every workspace that owns tasks is refused, however many it owns
	for _, owned := range []int{1, 2, 5} {
		ws, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Busy"})
		if err != nil {
			t.Fatalf("CreateWorkspace failed: %v", err)
		}
		now := time.Now().UTC()
		for i := 0; i < owned; i++ {
			if _, err := repo.CreateTaskRecord(ctx, &models.Task{
				Title: "t", WorkspaceID: ws.ID, CreatedAt: now, UpdatedAt: now,
			}); err != nil {
				t.Fatalf("seed task failed: %v", err)
			}
		}

		err = svc.DeleteWorkspace(ctx, ws.ID)
		if !errors.Is(err, ErrWorkspaceHasTasks) || !errors.Is(err, models.ErrConflict) {
			t.Fatalf("owned=%d: expected conflict, got %v", owned, err)
		}

		counts, err := repo.CountTasksByWorkspace(ctx, ws.ID)
		if err != nil {
			t.Fatalf("CountTasksByWorkspace failed: %v", err)
		}
		if counts.Total != owned {
			t.Errorf("owned=%d: tasks touched by refused delete, now %d", owned, counts.Total)
		}
		if _, err := svc.GetWorkspaceByID(ctx, ws.ID); err != nil {
			t.Errorf("owned=%d: workspace should still exist: %v", owned, err)
		}
	}
}

func TestDeleteWorkspace_IDsNotReused(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, models.SystemClock)

	first, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	if err := svc.DeleteWorkspace(ctx, first.ID); err != nil {
		t.Fatalf("DeleteWorkspace failed: %v", err)
	}

	second, err := svc.CreateWorkspace(ctx, CreateWorkspaceRequest{Name: "Home"})
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("expected id greater than %d, got %d", first.ID, second.ID)
	}
}
