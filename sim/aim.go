package sim

import "math"

// leadEpsilon is the |a| below which the intercept equation is solved as linear.
const leadEpsilon = 1e-9

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// AngleBetween returns the angle (radians) of the direction from a to b.
func AngleBetween(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// InterceptTime solves for the time t at which a projectile fired from shooter at
// constant speed meets a target moving at constant velocity:
//
//	|target + targetVel*t - shooter| = speed*t
//
// With r = target-shooter and v = targetVel this is a*t² + b*t + c = 0 where
// a = |v|²-s², b = 2(r·v), c = |r|². The smallest strictly positive root is returned.
// ok is false when no such root exists.
func InterceptTime(shooter, target, targetVel Vec, speed float64) (t float64, ok bool) {
	r := target.Sub(shooter)
	a := targetVel.LenSq() - speed*speed
	b := 2 * r.Dot(targetVel)
	c := r.LenSq()

	if math.Abs(a) < leadEpsilon {
		// Target speed equals projectile speed: b*t + c = 0.
		if b == 0 {
			return 0, false
		}
		t = -c / b
		return t, t > 0
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	switch {
	case t1 > 0:
		return t1, true
	case t2 > 0:
		return t2, true
	default:
		return 0, false
	}
}

// LeadAngle returns the firing angle that makes a projectile of the given speed
// intercept the moving target. ok is false when no intercept exists; callers then
// fall back to AngleBetween(shooter, target).
func LeadAngle(shooter, target, targetVel Vec, speed float64) (angle float64, ok bool) {
	t, ok := InterceptTime(shooter, target, targetVel, speed)
	if !ok {
		return 0, false
	}
	aim := target.Add(targetVel.Scale(t))
	return AngleBetween(shooter, aim), true
}

// FanAngles spreads n shots evenly around center, spacing radians apart.
func FanAngles(center float64, n int, spacing float64) []float64 {
	if n <= 0 {
		return nil
	}
	angles := make([]float64, n)
	mid := float64(n-1) / 2
	for i := range angles {
		angles[i] = center + (float64(i)-mid)*spacing
	}
	return angles
}
