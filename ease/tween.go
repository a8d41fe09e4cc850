package ease

import gease "github.com/tanema/gween/ease"

// FromTween adapts a gween easing function, which works in float32 over
// (time, begin, change, duration), to a normalized Func.
func FromTween(fn gease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Overshooting families, backed by gween.
var (
	BackIn    = FromTween(gease.InBack)
	BackOut   = FromTween(gease.OutBack)
	BackInOut = FromTween(gease.InOutBack)
	BackOutIn = FromTween(gease.OutInBack)

	ElasticIn    = FromTween(gease.InElastic)
	ElasticOut   = FromTween(gease.OutElastic)
	ElasticInOut = FromTween(gease.InOutElastic)
	ElasticOutIn = FromTween(gease.OutInElastic)

	BounceIn    = FromTween(gease.InBounce)
	BounceOut   = FromTween(gease.OutBounce)
	BounceInOut = FromTween(gease.InOutBounce)
	BounceOutIn = FromTween(gease.OutInBounce)
)
