package services_test

import (
	"testing"

	"github.com/ALjabriOmars/SCSP/repository"
	"github.com/ALjabriOmars/SCSP/services"

	"github.com/stretchr/testify/require"
)

func newBidService(t *testing.T) (*services.BidService, *repository.BidRepository) {
	repo := repository.NewBidRepository(newTestDB(t))
	return services.NewBidService(repo), repo
}

func TestSubmitBidDefaultsPending(t *testing.T) {
	svc, _ := newBidService(t)

	bid, err := svc.Submit(1, "Fix pipe", "AcmeCo", "500", "Water")
	require.NoError(t, err)
	require.Equal(t, "pending", bid.Status)
	require.Equal(t, 1, bid.TaskID)
	require.Nil(t, bid.Reason)
	require.Nil(t, bid.CompletedDate)
}

func TestSubmitBidMissingFields(t *testing.T) {
	svc, _ := newBidService(t)

	_, err := svc.Submit(0, "Fix pipe", "AcmeCo", "500", "Water")
	require.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Submit(1, "Fix pipe", "", "500", "Water")
	require.ErrorIs(t, err, services.ErrValidation)
}

func TestMultipleBidsPerTask(t *testing.T) {
	svc, _ := newBidService(t)

	_, err := svc.Submit(7, "Fix pipe", "AcmeCo", "500", "Water")
	require.NoError(t, err)
	_, err = svc.Submit(7, "Fix pipe", "PipeWorks", "450", "Water")
	require.NoError(t, err)

	bids, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, bids, 2)
}

func TestListBidsDepartmentWinsOverProvider(t *testing.T) {
	svc, _ := newBidService(t)

	_, err := svc.Submit(1, "Fix pipe", "AcmeCo", "500", "Water")
	require.NoError(t, err)
	_, err = svc.Submit(2, "Clear drain", "AcmeCo", "300", "Waste")
	require.NoError(t, err)
	_, err = svc.Submit(3, "New lights", "BrightCo", "900", "Energy")
	require.NoError(t, err)

	byDep, err := svc.List("Water", "")
	require.NoError(t, err)
	require.Len(t, byDep, 1)
	require.Equal(t, "AcmeCo", byDep[0].ProviderName)

	byProvider, err := svc.List("", "AcmeCo")
	require.NoError(t, err)
	require.Len(t, byProvider, 2)

	// both supplied: only the department filter applies
	both, err := svc.List("Energy", "AcmeCo")
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "BrightCo", both[0].ProviderName)
}

func TestUpdateBidStatusAcceptsAnyString(t *testing.T) {
	svc, repo := newBidService(t)

	bid, err := svc.Submit(1, "Fix pipe", "AcmeCo", "500", "Water")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(bid.ID, "on-hold-pending-review", "", ""))

	got, err := repo.FindByID(bid.ID)
	require.NoError(t, err)
	require.Equal(t, "on-hold-pending-review", got.Status)
}

func TestUpdateBidStatusKeepsReasonWhenOmitted(t *testing.T) {
	svc, repo := newBidService(t)

	bid, err := svc.Submit(1, "Fix pipe", "AcmeCo", "500", "Water")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(bid.ID, "rejected", "over budget", ""))

	got, err := repo.FindByID(bid.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Reason)
	require.Equal(t, "over budget", *got.Reason)

	// empty reason on a later update must not clear the stored one
	require.NoError(t, svc.UpdateStatus(bid.ID, "completed", "", "2026-08-01"))

	got, err = repo.FindByID(bid.ID)
	require.NoError(t, err)
	require.Equal(t, "completed", got.Status)
	require.NotNil(t, got.Reason)
	require.Equal(t, "over budget", *got.Reason)
	require.NotNil(t, got.CompletedDate)
	require.Equal(t, "2026-08-01", *got.CompletedDate)
}

func TestUpdateBidStatusNotFound(t *testing.T) {
	svc, _ := newBidService(t)

	require.ErrorIs(t, svc.UpdateStatus(42, "accepted", "", ""), services.ErrNotFound)
}
