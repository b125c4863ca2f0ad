package scene

// BlendMode specifies how an object composites against the pixels
// already in the framebuffer.
type BlendMode uint8

const (
	// BlendAlpha is standard source-over compositing:
	// out = src*srcA + dst*(1-srcA).
	BlendAlpha BlendMode = iota

	// BlendAdd is additive compositing with channel saturation:
	// out = min(1, dst + src*srcA).
	BlendAdd

	// BlendMultiply darkens the destination by the source:
	// out = lerp(dst, dst*src, srcA).
	BlendMultiply

	// BlendSubtract subtracts the source from the destination:
	// out = max(0, dst - src*srcA).
	BlendSubtract
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "alpha"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	case BlendSubtract:
		return "subtract"
	default:
		return "unknown"
	}
}
