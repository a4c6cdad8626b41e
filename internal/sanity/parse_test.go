package sanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahale/go-scoper/internal/domain"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   domain.Dollars
		wantOK bool
	}{
		{name: "formatted range averages", input: "$50,000 - $75,000", want: 62500, wantOK: true},
		{name: "k suffix", input: "50k", want: 50000, wantOK: true},
		{name: "k suffix range", input: "50k-75k", want: 62500, wantOK: true},
		{name: "m suffix with decimal", input: "1.2m", want: 1200000, wantOK: true},
		{name: "plain number", input: "25000", want: 25000, wantOK: true},
		{name: "number embedded in prose", input: "around $30k or so", want: 30000, wantOK: true},
		{name: "no number", input: "whatever it takes", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseBudget(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseTimelineMonths(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{name: "weeks convert to months", input: "6 weeks", want: 1.5, wantOK: true},
		{name: "single week", input: "1 week", want: 0.25, wantOK: true},
		{name: "months taken as-is", input: "3 months", want: 3.0, wantOK: true},
		{name: "decimal months", input: "1.5 months", want: 1.5, wantOK: true},
		{name: "case-insensitive", input: "2 Weeks", want: 0.5, wantOK: true},
		{name: "days are unparsable", input: "10 days", wantOK: false},
		{name: "no duration", input: "as soon as possible", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimelineMonths(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestRecoverTimeline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "in N weeks", input: "need this live in 3 weeks", want: "3 weeks"},
		{name: "in N months", input: "launching in 2 months for the holidays", want: "2 months"},
		{name: "N week deadline", input: "we have a 6 week deadline", want: "6 weeks"},
		{name: "within N days", input: "must ship within 10 days", want: "10 days"},
		{name: "no pattern", input: "no particular rush", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RecoverTimeline(tt.input))
		})
	}
}
