package loam

// PuzzleMetadata represents the header/metadata of a puzzle document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
type PuzzleMetadata struct {
	ID          string     `json:"id" mapstructure:"id"`
	Kind        string     `json:"kind" mapstructure:"kind"`
	Name        string     `json:"name" mapstructure:"name"`
	Title       string     `json:"title" mapstructure:"title"`
	Description string     `json:"description" mapstructure:"description"`
	Carrier     string     `json:"carrier" mapstructure:"carrier"`
	Capacity    any        `json:"capacity" mapstructure:"capacity"` // int, float64 or json.Number depending on the format
	Entities    []string   `json:"entities" mapstructure:"entities"`
	Forbidden   [][]string `json:"forbidden" mapstructure:"forbidden"`
}

// KindRiver is the default puzzle family of a document without "kind".
const KindRiver = "river"
