package collision

import (
	"github.com/pthm-cable/camcore/camctx"
	"github.com/pthm-cable/camcore/vecmath"
)

// sample is one candidate camera position considered by a solve pass.
type sample struct {
	pos    vecmath.Vec3
	weight float32
}

// maxSamples bounds the pre-allocated scratch buffer: 1 central + 8
// ring (ultra) + 2 vertical + 1 lead = 12.
const maxSamples = 12

// ringCount maps a mode's quality bucket to the ring sample count N:
// 4/6/8 for low/high/ultra.
func ringCount(quality int) int {
	switch quality {
	case camctx.QualityLow:
		return 4
	case camctx.QualityHigh:
		return 6
	default:
		return 8
	}
}
