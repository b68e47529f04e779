package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/swiftparcel/swiftparcel-backend/internal/domain/shipment"
	pkgerrors "github.com/swiftparcel/swiftparcel-backend/internal/pkg/errors"
)

func TestCreateShipmentAssignsTrackingCode(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	acct := env.register(t, "amina@example.com", "01712345678", "s3cret-pass")

	sh, err := env.shipment.Create(authedCtx(acct.ID), validCreateParams())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(sh.TrackingCode) != shipment.TrackingCodeLength {
		t.Fatalf("tracking code %q has length %d", sh.TrackingCode, len(sh.TrackingCode))
	}
	if sh.TrackingCode != strings.ToUpper(sh.TrackingCode) {
		t.Fatalf("tracking code %q is not uppercase", sh.TrackingCode)
	}
	if sh.Status != shipment.StatusPending {
		t.Fatalf("new shipment status = %q, want %q", sh.Status, shipment.StatusPending)
	}
	if sh.AccountID != acct.ID {
		t.Fatalf("shipment owned by %s, want %s", sh.AccountID, acct.ID)
	}
}

func TestCreateShipmentRequiresAuth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if _, err := env.shipment.Create(context.Background(), validCreateParams()); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCreateShipmentValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	acct := env.register(t, "amina@example.com", "01712345678", "s3cret-pass")
	ctx := authedCtx(acct.ID)

	t.Run("weight", func(t *testing.T) {
		cases := []struct {
			weight float64
			ok     bool
		}{
			{-5, false},
			{0, false},
			{0.1, true},
		}
		for _, tc := range cases {
			params := validCreateParams()
			params.WeightKg = tc.weight
			_, err := env.shipment.Create(ctx, params)
			if tc.ok && err != nil {
				t.Fatalf("weight %v: unexpected error %v", tc.weight, err)
			}
			if !tc.ok && !errors.Is(err, pkgerrors.ErrInvalidArgument) {
				t.Fatalf("weight %v: expected ErrInvalidArgument, got %v", tc.weight, err)
			}
		}
	})

	t.Run("required fields", func(t *testing.T) {
		mutations := map[string]func(*CreateShipmentParams){
			"sender name":     func(p *CreateShipmentParams) { p.SenderName = "" },
			"receiver name":   func(p *CreateShipmentParams) { p.ReceiverName = "" },
			"receiver mobile": func(p *CreateShipmentParams) { p.ReceiverMobile = "" },
			"origin":          func(p *CreateShipmentParams) { p.Origin = "" },
			"destination":     func(p *CreateShipmentParams) { p.Destination = "" },
		}
		for name, mutate := range mutations {
			params := validCreateParams()
			mutate(&params)
			if _, err := env.shipment.Create(ctx, params); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
				t.Fatalf("blank %s: expected ErrInvalidArgument, got %v", name, err)
			}
		}
	})
}

func TestTrackingCodesPairwiseDistinct(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	acct := env.register(t, "amina@example.com", "01712345678", "s3cret-pass")
	ctx := authedCtx(acct.ID)

	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		sh, err := env.shipment.Create(ctx, validCreateParams())
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		if _, dup := seen[sh.TrackingCode]; dup {
			t.Fatalf("tracking code %q issued twice", sh.TrackingCode)
		}
		seen[sh.TrackingCode] = struct{}{}
	}
}

func TestTrackIsCaseInsensitiveExactMatch(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	acct := env.register(t, "amina@example.com", "01712345678", "s3cret-pass")

	sh, err := env.shipment.Create(authedCtx(acct.ID), validCreateParams())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// tracking is public, no authenticated context required
	got, err := env.shipment.Track(context.Background(), strings.ToLower(sh.TrackingCode))
	if err != nil {
		t.Fatalf("track lowercase %q: %v", sh.TrackingCode, err)
	}
	if got.ID != sh.ID {
		t.Fatalf("tracked wrong shipment: %s, want %s", got.ID, sh.ID)
	}

	if _, err := env.shipment.Track(context.Background(), "ZZZZ0000"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("miss: expected ErrNotFound, got %v", err)
	}
	if _, err := env.shipment.Track(context.Background(), sh.TrackingCode[:4]); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("prefix lookup must not match: got %v", err)
	}
}

func TestListMineScopedToCaller(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	amina := env.register(t, "amina@example.com", "01712345678", "s3cret-pass")
	tanvir := env.register(t, "tanvir@example.com", "01811111111", "other-pass")

	for i := 0; i < 3; i++ {
		if _, err := env.shipment.Create(authedCtx(amina.ID), validCreateParams()); err != nil {
			t.Fatalf("create for amina: %v", err)
		}
	}
	if _, err := env.shipment.Create(authedCtx(tanvir.ID), validCreateParams()); err != nil {
		t.Fatalf("create for tanvir: %v", err)
	}

	mine, err := env.shipment.ListMine(authedCtx(amina.ID))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("got %d shipments, want 3", len(mine))
	}
	for _, sh := range mine {
		if sh.AccountID != amina.ID {
			t.Fatalf("foreign shipment %s in listing", sh.TrackingCode)
		}
	}

	if _, err := env.shipment.ListMine(context.Background()); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("unauthenticated list: expected ErrUnauthorized, got %v", err)
	}
}

func TestSearchFiltersByFragment(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	amina := env.register(t, "amina@example.com", "01712345678", "s3cret-pass")
	tanvir := env.register(t, "tanvir@example.com", "01811111111", "other-pass")
	ctx := authedCtx(amina.ID)

	const n = 25
	codes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		sh, err := env.shipment.Create(ctx, validCreateParams())
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		codes = append(codes, sh.TrackingCode)
	}
	// a shipment the caller must never see, whatever the fragment
	foreign, err := env.shipment.Create(authedCtx(tanvir.ID), validCreateParams())
	if err != nil {
		t.Fatalf("create for tanvir: %v", err)
	}

	fragment := codes[0][2:5]
	want := make(map[string]struct{})
	for _, code := range codes {
		if strings.Contains(code, fragment) {
			want[code] = struct{}{}
		}
	}

	for _, frag := range []string{fragment, strings.ToLower(fragment)} {
		results, err := env.shipment.Search(ctx, frag)
		if err != nil {
			t.Fatalf("search %q: %v", frag, err)
		}
		if len(results) != len(want) {
			t.Fatalf("search %q returned %d shipments, want %d", frag, len(results), len(want))
		}
		for _, sh := range results {
			if _, ok := want[sh.TrackingCode]; !ok {
				t.Fatalf("search %q returned unexpected code %q", frag, sh.TrackingCode)
			}
			if sh.TrackingCode == foreign.TrackingCode {
				t.Fatalf("search leaked another account's shipment")
			}
		}
	}

	// blank fragment falls back to the full listing
	all, err := env.shipment.Search(ctx, "  ")
	if err != nil {
		t.Fatalf("blank search: %v", err)
	}
	if len(all) != n {
		t.Fatalf("blank search returned %d shipments, want %d", len(all), n)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	acct := env.register(t, "amina@example.com", "01712345678", "s3cret-pass")
	ctx := authedCtx(acct.ID)

	cases := []struct {
		path []shipment.Status
		ok   bool
	}{
		{[]shipment.Status{shipment.StatusInTransit, shipment.StatusDelivered}, true},
		{[]shipment.Status{shipment.StatusInTransit, shipment.StatusReturned}, true},
		{[]shipment.Status{shipment.StatusCancelled}, true},
		{[]shipment.Status{shipment.StatusDelivered}, false},
		{[]shipment.Status{shipment.StatusReturned}, false},
		{[]shipment.Status{shipment.StatusCancelled, shipment.StatusInTransit}, false},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprintf("path_%d", i), func(t *testing.T) {
			sh, err := env.shipment.Create(ctx, validCreateParams())
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			var lastErr error
			for _, next := range tc.path {
				_, lastErr = env.shipment.UpdateStatus(ctx, sh.TrackingCode, next)
				if lastErr != nil {
					break
				}
			}
			if tc.ok && lastErr != nil {
				t.Fatalf("path %v: unexpected error %v", tc.path, lastErr)
			}
			if !tc.ok && !errors.Is(lastErr, pkgerrors.ErrInvalidArgument) {
				t.Fatalf("path %v: expected ErrInvalidArgument, got %v", tc.path, lastErr)
			}
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		sh, err := env.shipment.Create(ctx, validCreateParams())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := env.shipment.UpdateStatus(ctx, sh.TrackingCode, shipment.Status("lost")); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("foreign shipment", func(t *testing.T) {
		other := env.register(t, "tanvir@example.com", "01811111111", "other-pass")
		sh, err := env.shipment.Create(authedCtx(other.ID), validCreateParams())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := env.shipment.UpdateStatus(ctx, sh.TrackingCode, shipment.StatusInTransit); !errors.Is(err, pkgerrors.ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})
}
