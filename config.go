package stml

// Configuration keys.
const (
	KeyPageRoot = "stml.pageroot"
	KeyMaxDepth = "stml.maxdepth"
)

// Configuration is the part of a schuko configuration a Compiler reads.
// Adapters like schukonf/koanfadapter and schukonf/testconfig implement it.
type Configuration interface {
	IsSet(key string) bool
	GetString(key string) string
	GetInt(key string) int
}

// NewFromConfig creates a compiler from configuration. Keys which are not set
// keep their defaults; further options are applied afterwards.
func NewFromConfig(conf Configuration, opts ...Option) *Compiler {
	var fromConf []Option
	if conf != nil {
		if conf.IsSet(KeyPageRoot) {
			fromConf = append(fromConf, PageRoot(conf.GetString(KeyPageRoot)))
		}
		if conf.IsSet(KeyMaxDepth) {
			fromConf = append(fromConf, MaxDepth(conf.GetInt(KeyMaxDepth)))
		}
	}
	c := New(append(fromConf, opts...)...)
	tracer().Debugf("compiler: page root = %q, max depth = %d", c.pageRoot, c.maxDepth)
	return c
}
