package store_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/Clark-Hu/netflix-shows/internal/logger"
	"github.com/Clark-Hu/netflix-shows/internal/store"
	"github.com/Clark-Hu/netflix-shows/internal/testutil/pgtest"
)

const insertSQL = `INSERT INTO netflix_shows ("type", title) VALUES ('MOVIE', $1)`

func TestWithTx(t *testing.T) {
	pool := pgtest.NewPool(t, "store_test")
	ctx := context.Background()

	err := store.WithTx(ctx, pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertSQL, "committed")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx commit: %v", err)
	}
	if n := pgtest.CountShows(t, pool); n != 1 {
		t.Fatalf("rows after commit = %d, want 1", n)
	}

	errAbort := errors.New("abort")
	err = store.WithTx(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertSQL, "rolled back"); err != nil {
			return err
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("WithTx error = %v, want %v", err, errAbort)
	}
	if n := pgtest.CountShows(t, pool); n != 1 {
		t.Fatalf("rows after rollback = %d, want 1", n)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		_ = store.WithTx(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, insertSQL, "panicked"); err != nil {
				return err
			}
			panic("boom")
		})
	}()
	if n := pgtest.CountShows(t, pool); n != 1 {
		t.Fatalf("rows after panic = %d, want 1", n)
	}
}

func TestNewStatementCacheCapacity(t *testing.T) {
	pool := pgtest.NewPool(t, "store_cache_test")
	dsn := pool.Config().ConnString()
	ctx := context.Background()

	for _, capacity := range []int{0, 16} {
		st, err := store.New(ctx, dsn, store.Options{
			MaxConns:               2,
			StatementCacheCapacity: capacity,
			Logger:                 logger.Nop(),
		})
		if err != nil {
			t.Fatalf("New(capacity=%d): %v", capacity, err)
		}

		if _, err := st.Pool().Exec(ctx, insertSQL, "cached"); err != nil {
			st.Close()
			t.Fatalf("Exec with capacity %d: %v", capacity, err)
		}
		var n int
		if err := st.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM netflix_shows WHERE title = $1`, "cached").Scan(&n); err != nil {
			st.Close()
			t.Fatalf("QueryRow with capacity %d: %v", capacity, err)
		}
		if n == 0 {
			t.Fatalf("capacity %d: inserted row not visible", capacity)
		}

		cfg := st.Pool().Config().ConnConfig
		if capacity > 0 && cfg.StatementCacheCapacity != capacity {
			t.Fatalf("StatementCacheCapacity = %d, want %d", cfg.StatementCacheCapacity, capacity)
		}
		if err := st.HealthCheck(ctx); err != nil {
			t.Fatalf("HealthCheck: %v", err)
		}
		if st.Stats() == nil {
			t.Fatalf("Stats returned nil for open store")
		}
		st.Close()
	}
}

func TestNewQueryLogTracesStatements(t *testing.T) {
	pool := pgtest.NewPool(t, "store_trace_test")
	ctx := context.Background()

	var buf bytes.Buffer
	lg := zerolog.New(zerolog.SyncWriter(&buf)).Level(zerolog.DebugLevel)

	st, err := store.New(ctx, pool.Config().ConnString(), store.Options{
		MaxConns:               2,
		StatementCacheCapacity: 32,
		QueryLog:               true,
		Logger:                 lg,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := st.Pool().Exec(ctx, `SELECT COUNT(*) FROM netflix_shows`); err != nil {
		st.Close()
		t.Fatalf("Exec: %v", err)
	}
	st.Close()

	out := buf.String()
	if !strings.Contains(out, `"component":"pgx"`) {
		t.Fatalf("no pgx trace line in log output:\n%s", out)
	}
	if !strings.Contains(out, "SELECT COUNT(*) FROM netflix_shows") {
		t.Fatalf("traced statement missing from log output:\n%s", out)
	}
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := store.New(context.Background(), "::not a url::", store.Options{Logger: logger.Nop()})
	if err == nil {
		t.Fatalf("expected error for malformed db url")
	}
}

func TestNilStore(t *testing.T) {
	var s *store.Store
	if err := s.HealthCheck(context.Background()); err == nil {
		t.Fatalf("HealthCheck on nil store should fail")
	}
	if s.Stats() != nil {
		t.Fatalf("Stats on nil store should be nil")
	}
	s.Close()
}
