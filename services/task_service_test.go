package services_test

import (
	"testing"

	"github.com/ALjabriOmars/SCSP/repository"
	"github.com/ALjabriOmars/SCSP/services"

	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (*services.TaskService, *repository.TaskRepository) {
	repo := repository.NewTaskRepository(newTestDB(t))
	return services.NewTaskService(repo), repo
}

func TestCreateTaskStartsActive(t *testing.T) {
	svc, _ := newTaskService(t)

	task, err := svc.Create("Fix pipe", "Water", "crew x2", "3 days")
	require.NoError(t, err)
	require.Equal(t, "active", task.Status)
	require.NotZero(t, task.ID)
}

func TestCreateTaskMissingFields(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Create("Fix pipe", "", "crew x2", "3 days")
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestListReturnsActiveAndSuspendedOnly(t *testing.T) {
	svc, _ := newTaskService(t)

	a, err := svc.Create("Fix pipe", "Water", "crew x2", "3 days")
	require.NoError(t, err)
	b, err := svc.Create("Repave road", "Transport", "crew x4", "2 weeks")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(b.ID, "suspended")
	require.NoError(t, err)

	tasks, err := svc.List()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		require.Contains(t, []string{"active", "suspended"}, task.Status)
	}

	deleted, err := svc.UpdateStatus(a.ID, "terminated")
	require.NoError(t, err)
	require.True(t, deleted)

	tasks, err = svc.List()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, b.ID, tasks[0].ID)
}

func TestSuspendAndResume(t *testing.T) {
	svc, repo := newTaskService(t)

	task, err := svc.Create("Fix pipe", "Water", "crew x2", "3 days")
	require.NoError(t, err)

	deleted, err := svc.UpdateStatus(task.ID, "suspended")
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = svc.UpdateStatus(task.ID, "active")
	require.NoError(t, err)
	require.False(t, deleted)

	got, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, "active", got.Status)
}

func TestTerminateDeletesRow(t *testing.T) {
	svc, repo := newTaskService(t)

	task, err := svc.Create("Fix pipe", "Water", "crew x2", "3 days")
	require.NoError(t, err)

	deleted, err := svc.UpdateStatus(task.ID, "terminated")
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = repo.FindByID(task.ID)
	require.Error(t, err)

	// once terminated the task no longer exists at all
	_, err = svc.UpdateStatus(task.ID, "active")
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateTaskStatusValidation(t *testing.T) {
	svc, _ := newTaskService(t)

	task, err := svc.Create("Fix pipe", "Water", "crew x2", "3 days")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(task.ID, "Available")
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.UpdateStatus(9999, "active")
	require.ErrorIs(t, err, services.ErrNotFound)
}
