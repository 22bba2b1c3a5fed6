package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/domain"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name     string
		insight  metadomain.AdInsight
		expected domain.DerivedMetrics
	}{
		{
			name: "counts only conversion action types",
			insight: metadomain.AdInsight{
				Actions: []metadomain.Action{
					{ActionType: "purchase", Value: "3"},
					{ActionType: "view_content", Value: "10"},
				},
			},
			expected: domain.DerivedMetrics{
				Conversions: 3,
			},
		},
		{
			name: "derives cpa and roas from spend and action values",
			insight: metadomain.AdInsight{
				Spend: "50.00",
				Actions: []metadomain.Action{
					{ActionType: "purchase", Value: "2"},
				},
				ActionValues: []metadomain.Action{
					{ActionType: "purchase", Value: "150.00"},
				},
			},
			expected: domain.DerivedMetrics{
				Conversions:     2,
				ConversionValue: 150.0,
				CPA:             25.0,
				ROAS:            3.0,
			},
		},
		{
			name: "zero conversions never divides for cpa",
			insight: metadomain.AdInsight{
				Spend: "80.50",
				Actions: []metadomain.Action{
					{ActionType: "video_view", Value: "400"},
				},
			},
			expected: domain.DerivedMetrics{
				Conversions: 0,
				CPA:         0,
				ROAS:        0,
			},
		},
		{
			name: "zero spend never divides for roas",
			insight: metadomain.AdInsight{
				Actions: []metadomain.Action{
					{ActionType: "lead", Value: "4"},
				},
				ActionValues: []metadomain.Action{
					{ActionType: "lead", Value: "90.00"},
				},
			},
			expected: domain.DerivedMetrics{
				Conversions:     4,
				ConversionValue: 90.0,
				ROAS:            0,
			},
		},
		{
			name: "fractional conversion counts are truncated, not rounded",
			insight: metadomain.AdInsight{
				Actions: []metadomain.Action{
					{ActionType: "add_to_cart", Value: "2.9"},
				},
			},
			expected: domain.DerivedMetrics{
				Conversions: 2,
			},
		},
		{
			name: "malformed numeric strings default to zero",
			insight: metadomain.AdInsight{
				Spend: "not-a-number",
				Actions: []metadomain.Action{
					{ActionType: "purchase", Value: "oops"},
					{ActionType: "purchase", Value: "1"},
				},
				ActionValues: []metadomain.Action{
					{ActionType: "purchase", Value: "oops"},
				},
			},
			expected: domain.DerivedMetrics{
				Conversions: 1,
			},
		},
		{
			name:     "empty insight yields all zeros",
			insight:  metadomain.AdInsight{},
			expected: domain.DerivedMetrics{},
		},
		{
			name: "cpa and roas are rounded to two decimal places",
			insight: metadomain.AdInsight{
				Spend: "10.00",
				Actions: []metadomain.Action{
					{ActionType: "purchase", Value: "3"},
				},
				ActionValues: []metadomain.Action{
					{ActionType: "purchase", Value: "10.33"},
				},
			},
			expected: domain.DerivedMetrics{
				Conversions:     3,
				ConversionValue: 10.33,
				CPA:             3.33,
				ROAS:            1.03,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeMetrics(&tt.insight, DefaultConversionActionTypes)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestComputeMetricsWithAlternateTaxonomy(t *testing.T) {
	insight := metadomain.AdInsight{
		Spend: "20.00",
		Actions: []metadomain.Action{
			{ActionType: "purchase", Value: "5"},
			{ActionType: "view_content", Value: "2"},
		},
	}

	result := ComputeMetrics(&insight, NewActionTypeSet("view_content"))

	assert.Equal(t, 2, result.Conversions)
	assert.Equal(t, 10.0, result.CPA)
}

func TestDefaultConversionActionTypes(t *testing.T) {
	for _, actionType := range []string{"purchase", "lead", "complete_registration", "add_to_cart", "initiate_checkout"} {
		assert.True(t, DefaultConversionActionTypes.Contains(actionType), actionType)
	}

	assert.False(t, DefaultConversionActionTypes.Contains("view_content"))
	assert.False(t, DefaultConversionActionTypes.Contains(""))
}
