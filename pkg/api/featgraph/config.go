package featgraph

type Config struct {
	Workers int    `json:"workers,omitempty"`
	Oracle  string `json:"oracle,omitempty"`
	Output  string `json:"output,omitempty"`
}

type Graph struct {
	Name     string   `json:"name"`
	Features []string `json:"features"`
	Edges    []Edge   `json:"edges,omitempty"`
}

type Edge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Mask     uint8  `json:"mask"`
	Relation string `json:"relation,omitempty"`
}
