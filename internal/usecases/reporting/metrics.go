package reporting

import (
	metadomain "github.com/adstack/meta-ads-reporter/infrastructure/integrator/meta/domain"
	"github.com/adstack/meta-ads-reporter/internal/domain"
	"github.com/adstack/meta-ads-reporter/pkg/utils"
)

// ActionTypeSet is a set of Graph API action types
type ActionTypeSet map[string]struct{}

func NewActionTypeSet(types ...string) ActionTypeSet {
	set := make(ActionTypeSet, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

func (s ActionTypeSet) Contains(actionType string) bool {
	_, ok := s[actionType]
	return ok
}

// DefaultConversionActionTypes are the action types counted as conversions.
// Exposed as a variable so alternate taxonomies can be substituted.
var DefaultConversionActionTypes = NewActionTypeSet(
	"purchase",
	"lead",
	"complete_registration",
	"add_to_cart",
	"initiate_checkout",
)

// ComputeMetrics derives the conversion metrics of one insight row. Pure
// aside from warn logs on malformed numeric strings, which default to zero.
//
// Conversion counts truncate fractional action values instead of rounding;
// that matches how these reports have always been produced.
func ComputeMetrics(insight *metadomain.AdInsight, conversionTypes ActionTypeSet) domain.DerivedMetrics {
	spend := utils.ParseFloatOrZero("spend", insight.Spend)

	conversions := 0
	for _, action := range insight.Actions {
		if conversionTypes.Contains(action.ActionType) {
			conversions += utils.ParseIntOrZero("actions.value", action.Value)
		}
	}

	conversionValue := 0.0
	for _, action := range insight.ActionValues {
		if conversionTypes.Contains(action.ActionType) {
			conversionValue += utils.ParseFloatOrZero("action_values.value", action.Value)
		}
	}

	cpa := 0.0
	if conversions > 0 {
		cpa = spend / float64(conversions)
	}

	roas := 0.0
	if spend > 0 {
		roas = conversionValue / spend
	}

	return domain.DerivedMetrics{
		Conversions:     conversions,
		ConversionValue: conversionValue,
		CPA:             utils.RoundWithTwoDecimalPlace(cpa),
		ROAS:            utils.RoundWithTwoDecimalPlace(roas),
	}
}
