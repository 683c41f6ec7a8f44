//go:build unit

package commands_test

import (
	"context"

	"clinic-booking/internal/infra"
	"clinic-booking/internal/usecase/shared"
	sharedmock "clinic-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// uowMocks bundles the unit-of-work graph so a test can set expectations on
// the repositories directly. Within runs its callback against the bundled tx.
type uowMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	slots         *sharedmock.MockSlotRepository
	providerSlots *sharedmock.MockProviderSlotRepository
	bookings      *sharedmock.MockBookingRepository
	obligations   *sharedmock.MockObligationRepository
}

func newUowMocks(ctrl *gomock.Controller) *uowMocks {
	m := &uowMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		slots:         sharedmock.NewMockSlotRepository(ctrl),
		providerSlots: sharedmock.NewMockProviderSlotRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		obligations:   sharedmock.NewMockObligationRepository(ctrl),
	}

	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		},
	).AnyTimes()

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Slots().Return(m.slots).AnyTimes()
	m.tx.EXPECT().ProviderSlots().Return(m.providerSlots).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Obligations().Return(m.obligations).AnyTimes()

	return m
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}
