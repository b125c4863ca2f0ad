package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"
)

// spriteShaderWGSL is the sprite pipeline shader. The vertex stage
// applies the camera matrix and the per-sprite rotated local offset;
// the fragment stage samples, tints and lets fixed-function blend
// state composite. The blend equations mirror the software backend's
// composite function so both paths honor the same visual contract.
const spriteShaderWGSL = `
struct Camera {
    mvp: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> camera: Camera;
@group(1) @binding(0) var sprite_tex: texture_2d<f32>;
@group(1) @binding(1) var sprite_samp: sampler;

struct VertexIn {
    @location(0) pos: vec2<f32>,
    @location(1) uv: vec2<f32>,
    @location(2) tint: vec4<f32>,
};

struct VertexOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) uv: vec2<f32>,
    @location(1) tint: vec4<f32>,
};

@vertex
fn vs_main(in: VertexIn) -> VertexOut {
    var out: VertexOut;
    out.pos = camera.mvp * vec4<f32>(in.pos, 0.0, 1.0);
    out.uv = in.uv;
    out.tint = in.tint;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    let texel = textureSample(sprite_tex, sprite_samp, fract(in.uv));
    if (texel.a == 0.0) {
        discard;
    }
    return clamp(texel * in.tint, vec4<f32>(0.0), vec4<f32>(1.0));
}
`

// compileShaderToSPIRV compiles WGSL source to a SPIR-V word slice.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}
