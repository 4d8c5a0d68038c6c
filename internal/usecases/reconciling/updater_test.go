package reconciling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestUpdater(integrator *mocks.MockIntegrator) *StatusUpdater {
	return &StatusUpdater{
		integrator:  integrator,
		maxAttempts: 3,
		verifyDelay: time.Millisecond,
		backoffUnit: time.Millisecond,
	}
}

func TestStatusUpdater_EnsureStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Confirma na primeira tentativa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := mocks.NewMockIntegrator(ctrl)
		integrator.EXPECT().
			UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
			Return(nil)
		integrator.EXPECT().
			GetEntityStatus(gomock.Any(), "token", "c1").
			Return(domain.StatusPaused, nil)

		updater := newTestUpdater(integrator)

		confirmed, err := updater.EnsureStatus(ctx, "token", "c1", domain.StatusPaused)
		assert.NoError(t, err)
		assert.True(t, confirmed)
	})

	t.Run("Releitura velha na primeira tentativa, confirma na segunda", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := mocks.NewMockIntegrator(ctrl)
		integrator.EXPECT().
			UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusActive).
			Return(nil).
			Times(2)

		gomock.InOrder(
			integrator.EXPECT().
				GetEntityStatus(gomock.Any(), "token", "c1").
				Return(domain.StatusPaused, nil),
			integrator.EXPECT().
				GetEntityStatus(gomock.Any(), "token", "c1").
				Return(domain.StatusActive, nil),
		)

		updater := newTestUpdater(integrator)

		confirmed, err := updater.EnsureStatus(ctx, "token", "c1", domain.StatusActive)
		assert.NoError(t, err)
		assert.True(t, confirmed)
	})

	t.Run("Releitura sempre velha - desiste após três tentativas sem quarta chamada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := mocks.NewMockIntegrator(ctrl)
		integrator.EXPECT().
			UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
			Return(nil).
			Times(3)
		integrator.EXPECT().
			GetEntityStatus(gomock.Any(), "token", "c1").
			Return(domain.StatusActive, nil).
			Times(3)

		updater := newTestUpdater(integrator)

		confirmed, err := updater.EnsureStatus(ctx, "token", "c1", domain.StatusPaused)
		assert.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("Erro no envio conta como tentativa e não releitura", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		integrator := mocks.NewMockIntegrator(ctrl)

		gomock.InOrder(
			integrator.EXPECT().
				UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
				Return(errors.New("erro transitório")),
			integrator.EXPECT().
				UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
				Return(nil),
			integrator.EXPECT().
				GetEntityStatus(gomock.Any(), "token", "c1").
				Return(domain.StatusPaused, nil),
		)

		updater := newTestUpdater(integrator)

		confirmed, err := updater.EnsureStatus(ctx, "token", "c1", domain.StatusPaused)
		assert.NoError(t, err)
		assert.True(t, confirmed)
	})

	t.Run("Erro permanente da plataforma aborta sem novas tentativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		apiErr := &metadomain.APIError{
			StatusCode: 400,
			Details:    metadomain.ErrorDetails{Code: 100, Message: "Invalid parameter"},
		}

		integrator := mocks.NewMockIntegrator(ctrl)
		integrator.EXPECT().
			UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
			Return(apiErr)

		updater := newTestUpdater(integrator)

		confirmed, err := updater.EnsureStatus(ctx, "token", "c1", domain.StatusPaused)
		assert.ErrorAs(t, err, &apiErr)
		assert.False(t, confirmed)
	})

	t.Run("Erro transitório da plataforma segue tentando", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		apiErr := &metadomain.APIError{
			StatusCode: 500,
			Details:    metadomain.ErrorDetails{Code: 2, Message: "Service temporarily unavailable"},
		}

		integrator := mocks.NewMockIntegrator(ctrl)

		gomock.InOrder(
			integrator.EXPECT().
				UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
				Return(apiErr),
			integrator.EXPECT().
				UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
				Return(nil),
			integrator.EXPECT().
				GetEntityStatus(gomock.Any(), "token", "c1").
				Return(domain.StatusPaused, nil),
		)

		updater := newTestUpdater(integrator)

		confirmed, err := updater.EnsureStatus(ctx, "token", "c1", domain.StatusPaused)
		assert.NoError(t, err)
		assert.True(t, confirmed)
	})

	t.Run("Contexto cancelado interrompe as tentativas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cancelledCtx, cancel := context.WithCancel(context.Background())
		cancel()

		integrator := mocks.NewMockIntegrator(ctrl)
		integrator.EXPECT().
			UpdateEntityStatus(gomock.Any(), "token", "c1", domain.StatusPaused).
			Return(nil)

		updater := newTestUpdater(integrator)

		confirmed, err := updater.EnsureStatus(cancelledCtx, "token", "c1", domain.StatusPaused)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, confirmed)
	})
}
