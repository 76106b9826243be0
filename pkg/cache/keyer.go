package cache

// resultSchema is bumped whenever the cached result encoding changes, so old
// entries become unreachable instead of failing to decode.
const resultSchema = 1

// Keyer generates cache keys.
type Keyer interface {
	// ResultKey identifies the shortest path result for a graph, given the
	// hash of its file contents, a source vertex and whether the engine
	// settled every vertex. The two engine modes leave different settled
	// flags behind, so they never share an entry.
	ResultKey(graphHash string, source int, settleAll bool) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey returns "result:<sha256>" over the graph hash, source, engine
// mode and schema.
func (DefaultKeyer) ResultKey(graphHash string, source int, settleAll bool) string {
	return hashKey("result", graphHash, source, settleAll, resultSchema)
}
