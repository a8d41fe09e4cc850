package ease

import (
	"slices"
	"strings"
)

var registry = map[string]Func{
	"linear": Linear,

	"quad-in":     QuadIn,
	"quad-out":    QuadOut,
	"quad-in-out": QuadInOut,
	"quad-out-in": QuadOutIn,

	"cubic-in":     CubicIn,
	"cubic-out":    CubicOut,
	"cubic-in-out": CubicInOut,
	"cubic-out-in": CubicOutIn,

	"quart-in":     QuartIn,
	"quart-out":    QuartOut,
	"quart-in-out": QuartInOut,
	"quart-out-in": QuartOutIn,

	"quint-in":     QuintIn,
	"quint-out":    QuintOut,
	"quint-in-out": QuintInOut,
	"quint-out-in": QuintOutIn,

	"sine-in":     SineIn,
	"sine-out":    SineOut,
	"sine-in-out": SineInOut,
	"sine-out-in": SineOutIn,

	"expo-in":     ExpoIn,
	"expo-out":    ExpoOut,
	"expo-in-out": ExpoInOut,
	"expo-out-in": ExpoOutIn,

	"circ-in":     CircIn,
	"circ-out":    CircOut,
	"circ-in-out": CircInOut,
	"circ-out-in": CircOutIn,

	"back-in":     BackIn,
	"back-out":    BackOut,
	"back-in-out": BackInOut,
	"back-out-in": BackOutIn,

	"elastic-in":     ElasticIn,
	"elastic-out":    ElasticOut,
	"elastic-in-out": ElasticInOut,
	"elastic-out-in": ElasticOutIn,

	"bounce-in":     BounceIn,
	"bounce-out":    BounceOut,
	"bounce-in-out": BounceInOut,
	"bounce-out-in": BounceOutIn,
}

// Lookup returns the easing function registered under name, such as
// "quad-in-out" or "linear". Names are case-insensitive and "none" and ""
// are accepted for linear.
func Lookup(name string) (Func, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return Linear, true
	}
	f, ok := registry[name]
	return f, ok
}

// Names returns every registered name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
