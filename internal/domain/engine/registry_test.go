package engine

import (
	"testing"
)

func TestParseTier(t *testing.T) {
	cases := map[string]Tier{
		"free":       TierFree,
		"starter":    TierStarter,
		"pro":        TierPro,
		"enterprise": TierEnterprise,
		"":           TierFree,
		"platinum":   TierFree,
		"PRO":        TierPro,
	}
	for input, want := range cases {
		if got := ParseTier(input); got != want {
			t.Errorf("ParseTier(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTierOrdering(t *testing.T) {
	ordered := []Tier{TierFree, TierStarter, TierPro, TierEnterprise}
	for i, lower := range ordered {
		for j, higher := range ordered {
			want := i >= j
			if got := lower.AtLeast(higher); got != want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", lower, higher, got, want)
			}
		}
	}
}

func TestLookupUnknownEngine(t *testing.T) {
	r := Default()
	if _, ok := r.Lookup("does-not-exist"); ok {
		t.Fatal("expected lookup miss for unknown engine id")
	}
	if _, ok := r.Lookup("hailuo-02"); !ok {
		t.Fatal("expected lookup hit for catalog engine")
	}
}

func TestResolveAutoPerTier(t *testing.T) {
	r := Default()
	cases := map[Tier]string{
		TierFree:       "hailuo-02",
		TierStarter:    "kling-2.1",
		TierPro:        "runway-gen4-turbo",
		TierEnterprise: "veo-3.1",
	}
	for tier, want := range cases {
		if got := r.ResolveAuto(tier); got != want {
			t.Errorf("ResolveAuto(%s) = %q, want %q", tier, got, want)
		}
	}
}

func TestResolveAutoFallback(t *testing.T) {
	r := NewRegistry(defaultCatalog, nil)
	if got := r.ResolveAuto(TierPro); got != FallbackEngineID {
		t.Fatalf("ResolveAuto without defaults = %q, want %q", got, FallbackEngineID)
	}
}

func TestCheckAccess(t *testing.T) {
	r := Default()

	// free engine is open to every tier
	for _, tier := range []Tier{TierFree, TierStarter, TierPro, TierEnterprise} {
		if !r.CheckAccess(tier, "hailuo-02") {
			t.Errorf("expected %s tier to access hailuo-02", tier)
		}
	}

	// pro engine is gated below pro
	if r.CheckAccess(TierFree, "runway-gen4-turbo") {
		t.Error("free tier should not access runway-gen4-turbo")
	}
	if r.CheckAccess(TierStarter, "runway-gen4-turbo") {
		t.Error("starter tier should not access runway-gen4-turbo")
	}
	if !r.CheckAccess(TierPro, "runway-gen4-turbo") {
		t.Error("pro tier should access runway-gen4-turbo")
	}
	if !r.CheckAccess(TierEnterprise, "runway-gen4-turbo") {
		t.Error("enterprise tier should access runway-gen4-turbo")
	}

	// unknown engines are never accessible
	if r.CheckAccess(TierEnterprise, "does-not-exist") {
		t.Error("unknown engine should never pass the access check")
	}
}

func TestAvailableForTierExcludesWaitlistAndHigherTiers(t *testing.T) {
	r := Default()

	for _, d := range r.AvailableForTier(TierFree) {
		if d.APIStatus != StatusAvailable {
			t.Errorf("engine %s with status %s should not be listed", d.ID, d.APIStatus)
		}
		if !TierFree.AtLeast(d.MinimumTier) {
			t.Errorf("engine %s requires %s, should not be listed for free", d.ID, d.MinimumTier)
		}
	}

	// waitlist engines stay hidden even for enterprise
	for _, d := range r.AvailableForTier(TierEnterprise) {
		if d.ID == "sora-2" || d.ID == "sora-2-pro" {
			t.Errorf("waitlist engine %s should not be listed", d.ID)
		}
	}
}

func TestAvailableForTierGrowsWithTier(t *testing.T) {
	r := Default()
	free := len(r.AvailableForTier(TierFree))
	starter := len(r.AvailableForTier(TierStarter))
	pro := len(r.AvailableForTier(TierPro))
	enterprise := len(r.AvailableForTier(TierEnterprise))

	if free == 0 {
		t.Fatal("free tier should have at least one engine")
	}
	if free > starter || starter > pro || pro > enterprise {
		t.Fatalf("tier listings should be monotonic: free=%d starter=%d pro=%d enterprise=%d",
			free, starter, pro, enterprise)
	}
}

func TestAllPreservesCatalogOrder(t *testing.T) {
	r := Default()
	all := r.All()
	if len(all) != len(defaultCatalog) {
		t.Fatalf("All() returned %d engines, want %d", len(all), len(defaultCatalog))
	}
	for i, d := range all {
		if d.ID != defaultCatalog[i].ID {
			t.Fatalf("All()[%d] = %s, want %s", i, d.ID, defaultCatalog[i].ID)
		}
	}
}

func TestCatalogDefaultsAreAccessible(t *testing.T) {
	r := Default()
	for tier, id := range defaultByTier {
		desc, ok := r.Lookup(id)
		if !ok {
			t.Fatalf("default engine %s for tier %s missing from catalog", id, tier)
		}
		if !r.CheckAccess(tier, id) {
			t.Errorf("tier %s cannot access its own default %s", tier, id)
		}
		if desc.APIStatus != StatusAvailable {
			t.Errorf("default engine %s has status %s", id, desc.APIStatus)
		}
	}
}
