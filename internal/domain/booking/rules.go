package booking

import "grooming-salon/internal/domain/catalog"

// CombinationRule fixes the duration of a booking whose selected services
// carry every tag in RequiredTags, whatever else is selected.
type CombinationRule struct {
	Name         string        `toml:"name"`
	RequiredTags []catalog.Tag `toml:"required_tags"`
	ResultHours  float64       `toml:"result_hours"`
}

// RuleTable is evaluated in order; the first matching rule wins.
type RuleTable []CombinationRule

// DefaultRules: bath together with a partial groom is done as one one-hour session.
func DefaultRules() RuleTable {
	return RuleTable{
		{
			Name:         "bath+partial-groom",
			RequiredTags: []catalog.Tag{catalog.TagBath, catalog.TagPartialGroom},
			ResultHours:  1,
		},
	}
}

func (r CombinationRule) Validate() error {
	if len(r.RequiredTags) == 0 {
		return ErrRuleWithoutTags
	}
	for _, t := range r.RequiredTags {
		if t == catalog.TagNone || !t.IsValid() {
			return catalog.ErrInvalidTag
		}
	}
	if r.ResultHours <= 0 {
		return ErrRuleInvalidHours
	}
	return nil
}

func (t RuleTable) Validate() error {
	for _, r := range t {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r CombinationRule) matches(present map[catalog.Tag]struct{}) bool {
	if len(r.RequiredTags) == 0 {
		return false
	}
	for _, t := range r.RequiredTags {
		if _, ok := present[t]; !ok {
			return false
		}
	}
	return true
}

// Match returns the first rule satisfied by the given tags.
func (t RuleTable) Match(tags []catalog.Tag) (CombinationRule, bool) {
	present := make(map[catalog.Tag]struct{}, len(tags))
	for _, tag := range tags {
		if tag != catalog.TagNone {
			present[tag] = struct{}{}
		}
	}
	for _, r := range t {
		if r.matches(present) {
			return r, true
		}
	}
	return CombinationRule{}, false
}
