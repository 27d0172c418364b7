package yamlcodec

import "github.com/gobeaver/pathkit"

func init() {
	pathkit.RegisterCodec(Codec{})
}
