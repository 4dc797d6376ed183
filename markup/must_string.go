package markup

import (
	"bytes"

	"github.com/stylemark-format/stylemark/ir"
)

func MustString(n *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, n); err != nil {
		panic(err)
	}
	return buf.String()
}
