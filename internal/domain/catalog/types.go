package catalog

// Tag groups services that take part in combination rules.
// A service without a tag never triggers a rule.
type Tag string

const (
	TagNone         Tag = ""
	TagBath         Tag = "bath"
	TagPartialGroom Tag = "partial-groom"
	TagFaceTrim     Tag = "face-trim"
)

func (t Tag) String() string {
	return string(t)
}

func (t Tag) IsValid() bool {
	switch t {
	case TagNone, TagBath, TagPartialGroom, TagFaceTrim:
		return true
	default:
		return false
	}
}

func NewTag(s string) (Tag, error) {
	tag := Tag(s)
	if !tag.IsValid() {
		return "", ErrInvalidTag
	}
	return tag, nil
}
