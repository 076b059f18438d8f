package enums

// ItemMode describes how a listing changes hands. The set is open: clients may
// submit modes beyond the well-known ones, so there is no validity gate, only
// named constants for the values the UI ships with.
type ItemMode string

const (
	ItemModeBuy  ItemMode = "buy"
	ItemModeFree ItemMode = "free"
)

// FilterAll is the query sentinel meaning "no mode/category filter".
const FilterAll = "all"

// String implements fmt.Stringer.
func (m ItemMode) String() string {
	return string(m)
}
