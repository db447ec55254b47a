package jsonflow

import (
	"io"

	"github.com/bytedance/sonic"
)

// SonicCodec decodes using github.com/bytedance/sonic's encoding/json
// compatibility mode (sonic.ConfigStd), selectable via WithCodec(SonicCodec) when
// the caller wants sonic's SIMD-accelerated scanning instead of goccy's.
// Per §1, SIMD acceleration is an optional accelerator; correctness must
// not depend on which codec is active, which is why Parse's token walk in
// json.go dispatches on each decoder's Stringer token shape rather than a
// codec-specific type.
var SonicCodec = &Codec{
	name: "bytedance/sonic",
	newDecoder: func(r io.Reader) tokenDecoder {
		return sonic.ConfigStd.NewDecoder(r)
	},
}
