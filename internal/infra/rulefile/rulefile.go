package rulefile

import (
	"grooming-salon/internal/domain/booking"
	"grooming-salon/internal/pkg/errs"

	"github.com/BurntSushi/toml"
)

// file mirrors the TOML layout:
//
//	[[rule]]
//	name = "bath+partial-groom"
//	required_tags = ["bath", "partial-groom"]
//	result_hours = 1
type file struct {
	Rules []booking.CombinationRule `toml:"rule"`
}

// Load reads the combination rules from path. An empty path selects the
// built-in table; a file without rules disables combination rules.
func Load(path string) (booking.RuleTable, error) {
	if path == "" {
		return booking.DefaultRules(), nil
	}
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read rule file %s", path)
	}
	return build(f, md)
}

// Parse decodes rules from TOML text.
func Parse(data string) (booking.RuleTable, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse rules")
	}
	return build(f, md)
}

func build(f file, md toml.MetaData) (booking.RuleTable, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errs.Newf("unknown rule key %q", undecoded[0].String())
	}
	table := booking.RuleTable(f.Rules)
	if err := table.Validate(); err != nil {
		return nil, errs.Wrap(err, "invalid combination rule")
	}
	if table == nil {
		table = booking.RuleTable{}
	}
	return table, nil
}
