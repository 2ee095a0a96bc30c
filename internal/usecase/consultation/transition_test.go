package consultation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/snappdoctor/telemed-api/internal/domain/consultation"
	"github.com/snappdoctor/telemed-api/internal/httperr"
	"github.com/snappdoctor/telemed-api/internal/models"
)

func seededRepo(status domain.Status) *fakeConsultationRepo {
	return &fakeConsultationRepo{
		doctor: &models.Doctor{ID: 1, IsAvailable: true, IsActive: true},
		consultations: []models.Consultation{{
			ID:       10,
			UserID:   "user-1",
			DoctorID: 1,
			Status:   string(status),
		}},
		nextID: 10,
	}
}

func TestTransitionConfirm(t *testing.T) {
	repo := seededRepo(domain.StatusPending)
	uc := NewTransitionConsultation(repo, nil)

	c, err := uc.Execute(context.Background(), "doc-user", 1, 10, ActionConfirm)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), c.Status)
	assert.Equal(t, string(domain.StatusConfirmed), repo.consultations[0].Status)
}

func TestTransitionStartStampsStartedAt(t *testing.T) {
	repo := seededRepo(domain.StatusConfirmed)
	uc := NewTransitionConsultation(repo, nil)

	c, err := uc.Execute(context.Background(), "doc-user", 1, 10, ActionStart)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), c.Status)
	require.NotNil(t, c.StartedAt)
}

func TestTransitionCompleteStampsEndedAt(t *testing.T) {
	repo := seededRepo(domain.StatusInProgress)
	uc := NewTransitionConsultation(repo, nil)

	c, err := uc.Execute(context.Background(), "doc-user", 1, 10, ActionComplete)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), c.Status)
	require.NotNil(t, c.EndedAt)
}

func TestTransitionConfirmAndNoShowLeaveTimestampsUnset(t *testing.T) {
	repo := seededRepo(domain.StatusPending)
	uc := NewTransitionConsultation(repo, nil)

	c, err := uc.Execute(context.Background(), "doc-user", 1, 10, ActionConfirm)
	require.NoError(t, err)
	assert.Nil(t, c.StartedAt)
	assert.Nil(t, c.EndedAt)

	c, err = uc.Execute(context.Background(), "doc-user", 1, 10, ActionNoShow)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusNoShow), c.Status)
	assert.Nil(t, c.StartedAt)
	assert.Nil(t, c.EndedAt)
}

func TestTransitionInvalidState(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewTransitionConsultation(repo, nil)

	_, err := uc.Execute(context.Background(), "doc-user", 1, 10, ActionConfirm)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTransitionUnknownAction(t *testing.T) {
	repo := seededRepo(domain.StatusPending)
	uc := NewTransitionConsultation(repo, nil)

	_, err := uc.Execute(context.Background(), "doc-user", 1, 10, Action("teleport"))
	assert.True(t, httperr.IsBusiness(err, "unknown_action"))
}

func TestTransitionWrongDoctor(t *testing.T) {
	repo := seededRepo(domain.StatusPending)
	uc := NewTransitionConsultation(repo, nil)

	_, err := uc.Execute(context.Background(), "doc-user", 2, 10, ActionConfirm)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCancelOwnConsultation(t *testing.T) {
	repo := seededRepo(domain.StatusPending)
	uc := NewCancelConsultation(repo, nil)

	c, err := uc.Execute(context.Background(), "user-1", 10)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), c.Status)
}

func TestCancelSomeoneElsesConsultation(t *testing.T) {
	repo := seededRepo(domain.StatusPending)
	uc := NewCancelConsultation(repo, nil)

	_, err := uc.Execute(context.Background(), "intruder", 10)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCancelCompletedConsultation(t *testing.T) {
	repo := seededRepo(domain.StatusCompleted)
	uc := NewCancelConsultation(repo, nil)

	_, err := uc.Execute(context.Background(), "user-1", 10)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
