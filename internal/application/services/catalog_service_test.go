package services

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sling.app/cli/internal/core/catalog"
)

type stubSource struct {
	records []catalog.Record
	skipped int
	err     error
}

func (s *stubSource) Scan(ctx context.Context) ([]catalog.Record, int, error) {
	return s.records, s.skipped, s.err
}

func silentLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func mustRecord(t *testing.T, name, command string) catalog.Record {
	t.Helper()
	rec, err := catalog.NewRecord(name, command, "")
	require.NoError(t, err)
	return rec
}

func TestCatalogService_StartsEmpty(t *testing.T) {
	svc := NewCatalogService(&stubSource{}, silentLogger())

	assert.Empty(t, svc.Snapshot())
	assert.Zero(t, svc.Size())
}

func TestCatalogService_Refresh_ReplacesListWholesale(t *testing.T) {
	source := &stubSource{records: []catalog.Record{
		mustRecord(t, "Firefox", "firefox"),
		mustRecord(t, "VLC", "vlc"),
	}}
	svc := NewCatalogService(source, silentLogger())

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Len(t, svc.Snapshot(), 2)

	// A rescan over a changed source replaces, never merges.
	source.records = []catalog.Record{mustRecord(t, "Top", "top")}
	require.NoError(t, svc.Refresh(context.Background()))

	snap := svc.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "Top", snap[0].Name())
}

func TestCatalogService_Refresh_PropagatesScanError(t *testing.T) {
	source := &stubSource{err: errors.New("disk on fire")}
	svc := NewCatalogService(source, silentLogger())

	err := svc.Refresh(context.Background())

	assert.ErrorContains(t, err, "disk on fire")
	assert.Empty(t, svc.Snapshot(), "failed refresh must not clobber the list")
}

func TestCatalogService_Snapshot_IsIsolatedFromLaterRefreshes(t *testing.T) {
	source := &stubSource{records: []catalog.Record{mustRecord(t, "Firefox", "firefox")}}
	svc := NewCatalogService(source, silentLogger())
	require.NoError(t, svc.Refresh(context.Background()))

	snap := svc.Snapshot()

	source.records = nil
	require.NoError(t, svc.Refresh(context.Background()))

	require.Len(t, snap, 1, "held snapshot must survive the rescan")
	assert.Equal(t, "Firefox", snap[0].Name())
}

func TestCatalogService_RefreshAsync_SignalsCompletion(t *testing.T) {
	source := &stubSource{records: []catalog.Record{mustRecord(t, "Firefox", "firefox")}}
	svc := NewCatalogService(source, silentLogger())

	done := svc.RefreshAsync(context.Background())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("refresh did not complete")
	}
	assert.Equal(t, 1, svc.Size())
}
