package sim

import "math"

// The functions below evaluate the lit-pass fragment model on the CPU. They
// follow litFragSrc in the game package term by term.

// ConeIntensity is the smooth spotlight falloff between the inner and outer
// cutoffs. theta is dot(fragment→light, -direction); the cutoffs are cosines.
func ConeIntensity(theta, cosInner, cosOuter float64) float64 {
	eps := cosInner - cosOuter
	if eps == 0 {
		if theta >= cosInner {
			return 1
		}
		return 0
	}
	return clampF((theta-cosOuter)/eps, 0, 1)
}

// ShadowBias grows as the surface turns away from the light so grazing
// surfaces do not shadow themselves.
func ShadowBias(normal, lightDir Vec3) float64 {
	return math.Max(ShadowBiasSlope*(1-normal.Normalize().Dot(lightDir.Normalize())), ShadowBiasMin)
}

// ShadowFactor compares a fragment's light-space depth with the depth map.
// Depths beyond the light's far plane are never shadowed.
func ShadowFactor(currentDepth, storedDepth, bias float64) float64 {
	if currentDepth > 1 {
		return 0
	}
	if currentDepth-bias > storedDepth {
		return 1
	}
	return 0
}

// Fragment is the per-pixel input to ShadeFragment.
type Fragment struct {
	Position Vec3
	Normal   Vec3
	Color    Vec3
	// Depth of the fragment in light NDC, remapped to [0,1], and the value
	// stored in the depth map at its light-space texel.
	LightDepth  float64
	StoredDepth float64
}

// ShadeFragment returns the lit colour of a fragment seen from eye.
func ShadeFragment(f Fragment, light *Spotlight, eye Vec3) Vec3 {
	lightColor := Vec3{X: float64(LightColor[0]), Y: float64(LightColor[1]), Z: float64(LightColor[2])}
	ambientColor := Vec3{X: float64(AmbientColor[0]), Y: float64(AmbientColor[1]), Z: float64(AmbientColor[2])}

	n := f.Normal.Normalize()
	toLight := light.Position.Sub(f.Position)
	dist := toLight.Len()
	l := toLight.Normalize()
	v := eye.Sub(f.Position).Normalize()

	ambient := ambientColor.Mul(f.Color).Scale(AmbientBoost)

	cosInner, cosOuter := light.CosCutoffs()
	cone := ConeIntensity(l.Dot(light.Direction.Scale(-1)), cosInner, cosOuter)

	diff := math.Max(n.Dot(l), 0)
	diffuse := lightColor.Mul(f.Color).Scale(diff * DiffuseBoost)

	reflected := reflect(l.Scale(-1), n)
	spec := math.Pow(math.Max(v.Dot(reflected), 0), Shininess)
	specular := lightColor.Scale(spec * SpecularBoost)

	attn := light.Attenuation.At(dist)
	shadow := ShadowFactor(f.LightDepth, f.StoredDepth, ShadowBias(n, light.Direction))

	direct := diffuse.Add(specular).Scale((1 - shadow*ShadowedLightFactor) * cone * attn)
	return ambient.Add(direct)
}

// reflect mirrors GLSL reflect(i, n) for a unit normal.
func reflect(i, n Vec3) Vec3 {
	return i.Sub(n.Scale(2 * n.Dot(i)))
}
