package effort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/go-scoper/internal/domain"
)

func TestClassifyDeliverable(t *testing.T) {
	tests := []struct {
		name      string
		phrase    string
		mvp       bool
		wantTier  Tier
		wantHours int
	}{
		{
			name:      "simple keyword",
			phrase:    "login page",
			wantTier:  TierSimple,
			wantHours: 50,
		},
		{
			name:      "medium keyword",
			phrase:    "payment integration",
			wantTier:  TierMedium,
			wantHours: 150,
		},
		{
			name:      "single complex keyword",
			phrase:    "analytics engine",
			wantTier:  TierComplex,
			wantHours: 300,
		},
		{
			name:      "two complex keywords is very complex",
			phrase:    "admin dashboard",
			wantTier:  TierVeryComplex,
			wantHours: 500,
		},
		{
			name:      "system word with complex keyword is very complex",
			phrase:    "analytics system",
			wantTier:  TierVeryComplex,
			wantHours: 500,
		},
		{
			name:      "platform word with complex keyword is very complex",
			phrase:    "multi-tenant platform",
			wantTier:  TierVeryComplex,
			wantHours: 500,
		},
		{
			name:      "no keyword defaults to medium",
			phrase:    "product catalog",
			wantTier:  TierMedium,
			wantHours: 150,
		},
		{
			name:      "matching is case-insensitive",
			phrase:    "Admin Dashboard",
			wantTier:  TierVeryComplex,
			wantHours: 500,
		},
		{
			name:      "mvp downgrades very complex to complex",
			phrase:    "admin dashboard",
			mvp:       true,
			wantTier:  TierComplex,
			wantHours: 300,
		},
		{
			name:      "mvp downgrades complex to medium",
			phrase:    "analytics engine",
			mvp:       true,
			wantTier:  TierMedium,
			wantHours: 150,
		},
		{
			name:      "mvp leaves medium untouched",
			phrase:    "payment integration",
			mvp:       true,
			wantTier:  TierMedium,
			wantHours: 150,
		},
		{
			name:      "mvp leaves simple untouched",
			phrase:    "login page",
			mvp:       true,
			wantTier:  TierSimple,
			wantHours: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, hours := ClassifyDeliverable(tt.phrase, tt.mvp)
			assert.Equal(t, tt.wantTier, tier)
			assert.Equal(t, tt.wantHours, hours)
		})
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name        string
		projectType string
		rawUserText string
		want        float64
	}{
		{name: "e-commerce base", projectType: "E-commerce", want: 1.2},
		{name: "ecommerce spelling", projectType: "Ecommerce Store", want: 1.2},
		{name: "saas base", projectType: "SaaS", want: 1.3},
		{name: "mobile app base", projectType: "Mobile App", want: 1.1},
		{name: "website base", projectType: "Website", want: 0.8},
		{name: "custom software base", projectType: "Custom Software", want: 1.0},
		{name: "unrecognized type", projectType: "Desktop Tool", want: 1.0},
		{name: "absent type", projectType: "", want: 1.0},
		{
			name:        "enterprise context",
			rawUserText: "Enterprise inventory tracker",
			want:        1.3,
		},
		{
			name:        "compliance group applied once",
			rawUserText: "must be HIPAA and GDPR compliant",
			want:        1.2,
		},
		{
			name:        "all context factors stack",
			projectType: "SaaS",
			rawUserText: "enterprise migration from a legacy system, international rollout, SOX compliance",
			want:        1.3 * 1.3 * 1.2 * 1.4 * 1.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Multiplier(tt.projectType, tt.rawUserText), 1e-9)
		})
	}
}

func TestTimelineLabel(t *testing.T) {
	tests := []struct {
		name  string
		hours int
		want  string
	}{
		{name: "under eight weeks reports whole weeks", hours: 300, want: "7 weeks"},
		{name: "six weeks", hours: 240, want: "6 weeks"},
		{name: "eight week boundary switches to months", hours: 320, want: "2.0 months"},
		{name: "months rounded to one decimal", hours: 600, want: "3.8 months"},
		{name: "long project", hours: 2000, want: "12.5 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimelineLabel(tt.hours))
		})
	}
}

func TestEstimator_Estimate(t *testing.T) {
	estimator := NewEstimator()

	t.Run("e-commerce scenario", func(t *testing.T) {
		est := estimator.Estimate(
			[]string{"product catalog", "shopping cart", "checkout"},
			"E-commerce",
			"Need an e-commerce site",
		)

		// 150+150+150 base hours at the 1.2 e-commerce factor.
		assert.Equal(t, 540, est.TotalHours)
		assert.Equal(t, "3.4 months", est.TimelineLabel)
		assert.Equal(t, domain.Dollars(43200), est.CostRangeLow)
		assert.Equal(t, domain.Dollars(64800), est.CostRangeHigh)
		assert.Equal(t, "$43,200 - $64,800", est.CostLabel)
		assert.False(t, est.MinimumEstimate)
		require.NoError(t, est.Validate())
	})

	t.Run("cost range follows hourly rates", func(t *testing.T) {
		est := estimator.Estimate([]string{"analytics system"}, "", "")

		assert.Equal(t, 500, est.TotalHours)
		assert.Equal(t, domain.Dollars(500*domain.HourlyRateLow), est.CostRangeLow)
		assert.Equal(t, domain.Dollars(500*domain.HourlyRateHigh), est.CostRangeHigh)
	})

	t.Run("total hours floored after multiplier", func(t *testing.T) {
		// 50 base hours at 1.3 = 65.0; floor keeps it integral either way,
		// and 150 at 1.1 = 165.0; a fractional case: 150*1.3*1.3 = 253.5 floors to 253.
		est := estimator.Estimate([]string{"search feature"}, "SaaS", "enterprise rollout")
		assert.Equal(t, 253, est.TotalHours)
	})

	t.Run("mvp context downgrades before summing", func(t *testing.T) {
		full := estimator.Estimate([]string{"admin dashboard"}, "", "company analytics")
		mvp := estimator.Estimate([]string{"admin dashboard"}, "", "startup mvp analytics")

		assert.Equal(t, 500, full.TotalHours)
		assert.Equal(t, 300, mvp.TotalHours)
	})

	t.Run("empty deliverables yields minimum estimate", func(t *testing.T) {
		est := estimator.Estimate(nil, "Website", "")
		assert.Equal(t, domain.MinimumEffortEstimate(), est)
	})

	t.Run("idempotent", func(t *testing.T) {
		deliverables := []string{"chat", "video calls", "user profiles"}
		first := estimator.Estimate(deliverables, "Mobile App", "like WhatsApp")
		second := estimator.Estimate(deliverables, "Mobile App", "like WhatsApp")
		assert.Equal(t, first, second)
	})
}

// TestEstimator_TierMonotonicity verifies that replacing a deliverable with
// one of an equal-or-higher tier never decreases the total, holding project
// type and context fixed.
func TestEstimator_TierMonotonicity(t *testing.T) {
	estimator := NewEstimator()

	ladder := []string{
		"contact form",      // simple
		"search feature",    // medium
		"analytics engine",  // complex
		"analytics system",  // very complex
	}

	prev := -1
	for _, phrase := range ladder {
		est := estimator.Estimate([]string{"login page", phrase}, "SaaS", "enterprise")
		require.GreaterOrEqual(t, est.TotalHours, prev,
			"replacing %q decreased the estimate", phrase)
		prev = est.TotalHours
	}
}
