package repository

import (
	"context"
	"time"

	"clinic-booking/internal/domain/schedule"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/db"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

// CreateMany relies on the (start_time, end_time) unique constraint: windows
// already present are skipped and only freshly inserted rows come back.
func (r *SlotRepository) CreateMany(ctx context.Context, windows []schedule.Window) ([]shared.SlotRecord, error) {
	if len(windows) == 0 {
		return nil, nil
	}

	starts := make([]time.Time, 0, len(windows))
	ends := make([]time.Time, 0, len(windows))
	for _, w := range windows {
		starts = append(starts, w.Start())
		ends = append(ends, w.End())
	}

	const q = `
		INSERT INTO slots (id, start_time, end_time)
		SELECT gen_random_uuid(), s, e
		FROM unnest($1::timestamptz[], $2::timestamptz[]) AS t(s, e)
		ON CONFLICT (start_time, end_time) DO NOTHING
		RETURNING id, start_time, end_time`

	rows, err := r.db.Query(ctx, q, starts, ends)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert slots", err)
	}
	defer rows.Close()

	var created []shared.SlotRecord
	for rows.Next() {
		var rec shared.SlotRecord
		if err := rows.Scan(&rec.ID, &rec.Start, &rec.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		created = append(created, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read inserted slots", err)
	}

	return created, nil
}

func (r *SlotRepository) Delete(ctx context.Context, slotID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM slots WHERE id = $1`, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
