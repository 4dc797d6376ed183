package parse

type ParseOption func(*parseConfig)

type parseConfig struct {
	strictStyle bool
}

// StrictStyle makes accumulated CSS declarations append to an explicit
// style= token instead of replacing it. The default reproduces the
// historical behavior: declarations clobber an explicit style= value.
func StrictStyle(v bool) ParseOption {
	return func(c *parseConfig) { c.strictStyle = v }
}
