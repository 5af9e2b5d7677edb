// Package texture models textures as in-memory float buffers. There is
// no PNG/JPEG decode path; callers (loaders, tests, the demo scene
// builder) populate a Texture directly.
package texture

import "github.com/kael-vance/kdtrace/types"

// Texture is a bilinearly-sampled RGBA32F image.
type Texture struct {
	Width  uint32
	Height uint32

	// Data holds Width*Height RGBA float32 texels, row-major, origin
	// at the top-left.
	Data []types.Vec4
}

// New allocates a texture of the given dimensions, zero-filled.
func New(width, height uint32) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Data:   make([]types.Vec4, width*height),
	}
}

func (t *Texture) texel(x, y int) types.Vec4 {
	x = wrap(x, int(t.Width))
	y = wrap(y, int(t.Height))
	return t.Data[y*int(t.Width)+x]
}

func wrap(v, n int) int {
	if n == 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Sample bilinearly interpolates the texture at uv, wrapping
// out-of-[0,1] coordinates.
func (t *Texture) Sample(uv types.Vec2) types.Vec4 {
	fx := uv[0]*float32(t.Width) - 0.5
	fy := uv[1]*float32(t.Height) - 0.5

	x0 := floor(fx)
	y0 := floor(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}

func floor(x float32) int {
	i := int(x)
	if x < float32(i) {
		i--
	}
	return i
}

// luminance is the scalar driver used for bump-map slope estimation.
func luminance(c types.Vec4) float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

// SlopeRight estimates d(luminance)/du at uv via a central difference
// one texel wide, used by the integrator to tilt the shading normal.
func (t *Texture) SlopeRight(uv types.Vec2) float32 {
	du := types.XY(1.0/float32(t.Width), 0)
	lo := luminance(t.Sample(uv.Sub(du)))
	hi := luminance(t.Sample(uv.Add(du)))
	return (hi - lo) * 0.5
}

// SlopeBottom estimates d(luminance)/dv at uv via a central difference
// one texel tall.
func (t *Texture) SlopeBottom(uv types.Vec2) float32 {
	dv := types.XY(0, 1.0/float32(t.Height))
	lo := luminance(t.Sample(uv.Sub(dv)))
	hi := luminance(t.Sample(uv.Add(dv)))
	return (hi - lo) * 0.5
}
