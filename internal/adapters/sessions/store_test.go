package sessions

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"route-roster-service/internal/ports"
)

// Both stores must honor the same toggle contract, so every case runs
// against each implementation.
func stores(t *testing.T) map[string]ports.SelectionStore {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return map[string]ports.SelectionStore{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(rdb, time.Minute),
	}
}

func TestStoreToggleSemantics(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			id, err := store.Create(ctx)
			if err != nil {
				t.Fatalf("create: %v", err)
			}

			// repeat-add keeps duplicates, deselect removes them all
			for _, ev := range []struct {
				id       int
				deselect bool
			}{
				{7, false}, {7, false}, {3, false}, {7, true},
			} {
				if err := store.Toggle(ctx, id, ports.SelectionDrivers, ev.id, ev.deselect); err != nil {
					t.Fatalf("toggle %+v: %v", ev, err)
				}
			}

			got, err := store.Selections(ctx, id, ports.SelectionDrivers)
			if err != nil {
				t.Fatalf("selections: %v", err)
			}
			if want := []int{3}; !reflect.DeepEqual(got, want) {
				t.Fatalf("drivers = %v, want %v", got, want)
			}
		})
	}
}

func TestStoreKindsAreIndependent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			id, err := store.Create(ctx)
			if err != nil {
				t.Fatalf("create: %v", err)
			}

			if err := store.Toggle(ctx, id, ports.SelectionDrivers, 1, false); err != nil {
				t.Fatalf("toggle driver: %v", err)
			}
			if err := store.Toggle(ctx, id, ports.SelectionRecipients, 100, false); err != nil {
				t.Fatalf("toggle recipient: %v", err)
			}

			drivers, err := store.Selections(ctx, id, ports.SelectionDrivers)
			if err != nil {
				t.Fatalf("driver selections: %v", err)
			}
			recipients, err := store.Selections(ctx, id, ports.SelectionRecipients)
			if err != nil {
				t.Fatalf("recipient selections: %v", err)
			}

			if !reflect.DeepEqual(drivers, []int{1}) || !reflect.DeepEqual(recipients, []int{100}) {
				t.Fatalf("drivers = %v, recipients = %v", drivers, recipients)
			}
		})
	}
}

func TestStoreClearEndsSession(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			id, err := store.Create(ctx)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if err := store.Toggle(ctx, id, ports.SelectionDrivers, 1, false); err != nil {
				t.Fatalf("toggle: %v", err)
			}

			if err := store.Clear(ctx, id); err != nil {
				t.Fatalf("clear: %v", err)
			}

			if _, err := store.Selections(ctx, id, ports.SelectionDrivers); !errors.Is(err, ports.ErrSessionNotFound) {
				t.Fatalf("err = %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestStoreUnknownSession(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			err := store.Toggle(ctx, "nope", ports.SelectionDrivers, 1, false)
			if !errors.Is(err, ports.ErrSessionNotFound) {
				t.Fatalf("err = %v, want ErrSessionNotFound", err)
			}
		})
	}
}
