package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityAssessment_Validate(t *testing.T) {
	tests := []struct {
		name       string
		assessment QualityAssessment
		wantErr    bool
	}{
		{
			name:       "high tier complete",
			assessment: QualityAssessment{Tier: QualityHigh, IsComplete: true},
			wantErr:    false,
		},
		{
			name:       "medium tier complete",
			assessment: QualityAssessment{Tier: QualityMedium, IsComplete: true},
			wantErr:    false,
		},
		{
			name: "low tier incomplete",
			assessment: QualityAssessment{
				Tier:                QualityLow,
				IsComplete:          false,
				MissingFields:       []string{"project_type"},
				ClarifyingQuestions: []string{"What type of project are you looking to build?"},
			},
			wantErr: false,
		},
		{
			name:       "high tier marked incomplete violates invariant",
			assessment: QualityAssessment{Tier: QualityHigh, IsComplete: false},
			wantErr:    true,
		},
		{
			name:       "low tier marked complete violates invariant",
			assessment: QualityAssessment{Tier: QualityLow, IsComplete: true},
			wantErr:    true,
		},
		{
			name:       "unknown tier",
			assessment: QualityAssessment{Tier: QualityTier("great"), IsComplete: true},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.assessment.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAssessment)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsValidQualityTier(t *testing.T) {
	assert.True(t, IsValidQualityTier(QualityHigh))
	assert.True(t, IsValidQualityTier(QualityMedium))
	assert.True(t, IsValidQualityTier(QualityLow))
	assert.False(t, IsValidQualityTier(QualityTier("")))
	assert.False(t, IsValidQualityTier(QualityTier("excellent")))
}
