package colorspace

import "math"

// Srgb is the nonlinear sRGB space with channels in [0, 1]. This is the
// identity space: device pixels already are nonlinear sRGB.
type Srgb struct{}

func (Srgb) FromSrgb(s Vec) Vec { return s }

func (Srgb) ToSrgb(v Vec) Vec { return v }

func (Srgb) ToLab(v Vec) Vec {
	x, y, z := linToXyz(linearize(float64(v[0])), linearize(float64(v[1])), linearize(float64(v[2])))
	return xyzToLab(x, y, z)
}

func (Srgb) Clamp(v Vec) Vec {
	return Vec{clampf(v[0], 0, 1), clampf(v[1], 0, 1), clampf(v[2], 0, 1)}
}

// LinSrgb is sRGB with the transfer function removed, channels in [0, 1].
type LinSrgb struct{}

func (LinSrgb) FromSrgb(s Vec) Vec {
	return Vec{
		float32(linearize(float64(s[0]))),
		float32(linearize(float64(s[1]))),
		float32(linearize(float64(s[2]))),
	}
}

func (LinSrgb) ToSrgb(v Vec) Vec {
	return Vec{
		float32(delinearize(float64(v[0]))),
		float32(delinearize(float64(v[1]))),
		float32(delinearize(float64(v[2]))),
	}
}

func (LinSrgb) ToLab(v Vec) Vec {
	x, y, z := linToXyz(float64(v[0]), float64(v[1]), float64(v[2]))
	return xyzToLab(x, y, z)
}

func (LinSrgb) Clamp(v Vec) Vec {
	return Vec{clampf(v[0], 0, 1), clampf(v[1], 0, 1), clampf(v[2], 0, 1)}
}

// linearize applies the inverse sRGB transfer function. The linear branch
// covers all negative inputs, so diffusion-perturbed values never hit a
// fractional power of a negative number.
func linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// delinearize applies the sRGB transfer function, with the same negative
// handling as linearize.
func delinearize(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}
