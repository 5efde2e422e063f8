package commands

import (
	"context"
	"path"
	"time"

	"grooming-salon/internal/pkg/clock"
	"grooming-salon/internal/pkg/errs"
)

const csvContentType = "text/csv; charset=utf-8"

type ExportCommands interface {
	// ArchiveRevenue stores an exported CSV and returns its key, or "" when
	// archiving is not configured.
	ArchiveRevenue(ctx context.Context, fileName string, content []byte) (string, error)
}

type exportCommandsImpl struct {
	store  ArchiveStore
	prefix string
	clock  clock.Clock
	loc    *time.Location
}

func NewExportCommands(store ArchiveStore, prefix string, clk clock.Clock, loc *time.Location) ExportCommands {
	return &exportCommandsImpl{store: store, prefix: prefix, clock: clk, loc: loc}
}

func (e *exportCommandsImpl) ArchiveRevenue(ctx context.Context, fileName string, content []byte) (string, error) {
	if !e.store.Enabled() {
		return "", nil
	}
	now := e.clock.Now().In(e.loc)
	key := path.Join(e.prefix, now.Format("2006/01"), now.Format("150405")+"_"+fileName)
	if err := e.store.Put(ctx, key, content, csvContentType); err != nil {
		return "", errs.Wrap(err, "failed to archive revenue export")
	}
	return key, nil
}
