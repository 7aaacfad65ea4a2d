// Package worldadapter is a reference hostiface.Physics/hostiface.Player
// implementation on top of github.com/mlange-42/ark/ecs. It exists so
// cmd/camdemo has a concrete world to drive the camera core against; the
// core itself never imports this package.
package worldadapter

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/camcore/hostiface"
	"github.com/pthm-cable/camcore/vecmath"
)

// World owns the ECS storage for static geometry and the player body,
// and answers the camera core's Physics queries against it.
type World struct {
	ecs *ecs.World

	posMap  *ecs.Map1[Position]
	bodyMap *ecs.Map3[Position, Velocity, Kinematic]
	collMap *ecs.Map2[Position, Collider]

	collFilter *ecs.Filter2[Position, Collider]

	bodies map[hostiface.BodyID]ecs.Entity
}

// New creates an empty world.
func New() *World {
	world := ecs.NewWorld()
	return &World{
		ecs:        world,
		posMap:     ecs.NewMap1[Position](world),
		bodyMap:    ecs.NewMap3[Position, Velocity, Kinematic](world),
		collMap:    ecs.NewMap2[Position, Collider](world),
		collFilter: ecs.NewFilter2[Position, Collider](world),
		bodies:     make(map[hostiface.BodyID]ecs.Entity),
	}
}

// AddBoxCollider spawns a static box obstacle centered at center with
// the given half-extents.
func (w *World) AddBoxCollider(center, halfExtent vecmath.Vec3) hostiface.BodyID {
	e := w.collMap.NewEntity(&Position{X: center.X, Y: center.Y, Z: center.Z}, &Collider{Shape: ColliderBox, HalfExtent: halfExtent})
	id := hostiface.BodyID(e.ID())
	w.bodies[id] = e
	return id
}

// AddSphereCollider spawns a static sphere obstacle centered at center.
func (w *World) AddSphereCollider(center vecmath.Vec3, radius float32) hostiface.BodyID {
	e := w.collMap.NewEntity(&Position{X: center.X, Y: center.Y, Z: center.Z}, &Collider{Shape: ColliderSphere, Radius: radius})
	id := hostiface.BodyID(e.ID())
	w.bodies[id] = e
	return id
}

// SpawnBody creates a kinematic body (the player) at pos and returns its
// BodyID.
func (w *World) SpawnBody(pos vecmath.Vec3) hostiface.BodyID {
	e := w.bodyMap.NewEntity(&Position{X: pos.X, Y: pos.Y, Z: pos.Z}, &Velocity{}, &Kinematic{})
	id := hostiface.BodyID(e.ID())
	w.bodies[id] = e
	return id
}

// SetBodyPosition overwrites body's stored position, e.g. after the
// host's own movement code has integrated velocity.
func (w *World) SetBodyPosition(body hostiface.BodyID, pos vecmath.Vec3) error {
	e, ok := w.bodies[body]
	if !ok {
		return fmt.Errorf("worldadapter: unknown body %d", body)
	}
	p := w.posMap.Get(e)
	p.X, p.Y, p.Z = pos.X, pos.Y, pos.Z
	return nil
}

// SetKinematic overwrites body's grounded/running/speed reading.
func (w *World) SetKinematic(body hostiface.BodyID, grounded, running bool, speed float32) error {
	e, ok := w.bodies[body]
	if !ok {
		return fmt.Errorf("worldadapter: unknown body %d", body)
	}
	_, _, kin := w.bodyMap.Get(e)
	kin.Grounded, kin.Running, kin.Speed = grounded, running, speed
	return nil
}

// Position implements hostiface.Physics.
func (w *World) Position(body hostiface.BodyID) (vecmath.Vec3, error) {
	e, ok := w.bodies[body]
	if !ok {
		return vecmath.Zero, fmt.Errorf("worldadapter: unknown body %d", body)
	}
	return w.posMap.Get(e).Vec(), nil
}

// Raycast implements hostiface.Physics: it walks every collider entity,
// intersects req's segment against each, and returns the nearest hit
// ignoring req.IgnoreBody. Returns (nil, nil) when nothing is hit.
func (w *World) Raycast(req hostiface.RaycastRequest) (*hostiface.Hit, error) {
	dir := vecmath.Sub(req.To, req.From)
	segLen := vecmath.Length(dir)
	if segLen < 1e-9 {
		return nil, nil
	}
	dirN := vecmath.Scale(1/segLen, dir)

	var (
		bestFraction float32 = 1
		bestPoint    vecmath.Vec3
		bestNormal   vecmath.Vec3
		hit          bool
	)

	query := w.collFilter.Query()
	for query.Next() {
		entity := query.Entity()
		if hostiface.BodyID(entity.ID()) == req.IgnoreBody {
			continue
		}
		pos, coll := query.Get()

		var (
			fraction float32
			point    vecmath.Vec3
			normal   vecmath.Vec3
			ok       bool
		)
		switch coll.Shape {
		case ColliderSphere:
			fraction, point, normal, ok = raySphere(req.From, dirN, segLen, pos.Vec(), coll.Radius)
		default:
			fraction, point, normal, ok = rayAABB(req.From, dirN, segLen, pos.Vec(), coll.HalfExtent)
		}
		if ok && fraction < bestFraction {
			bestFraction, bestPoint, bestNormal, hit = fraction, point, normal, true
		}
	}

	if !hit {
		return nil, nil
	}
	return hostiface.NewHit(hostiface.VecValue(bestPoint), hostiface.VecValue(bestNormal), hostiface.ScalarValue(bestFraction)), nil
}

// raySphere intersects a ray (origin, unit dir, length) against a
// sphere. Returns the hit fraction in [0,1] along the original segment.
func raySphere(origin, dirN vecmath.Vec3, segLen float32, center vecmath.Vec3, radius float32) (fraction float32, point, normal vecmath.Vec3, ok bool) {
	oc := vecmath.Sub(origin, center)
	b := vecmath.Dot(oc, dirN)
	c := vecmath.Dot(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, vecmath.Zero, vecmath.Zero, false
	}
	sqrtDisc := float32(math.Sqrt(float64(disc)))
	t := -b - sqrtDisc
	if t < 0 {
		t = -b + sqrtDisc
	}
	if t < 0 || t > segLen {
		return 0, vecmath.Zero, vecmath.Zero, false
	}
	point = vecmath.Add(origin, vecmath.Scale(t, dirN))
	normal = vecmath.Normalize(vecmath.Sub(point, center))
	return t / segLen, point, normal, true
}

// rayAABB intersects a ray against an axis-aligned box via the slab
// method. Returns the hit fraction in [0,1] along the original segment.
func rayAABB(origin, dirN vecmath.Vec3, segLen float32, center, halfExtent vecmath.Vec3) (fraction float32, point, normal vecmath.Vec3, ok bool) {
	min := vecmath.Sub(center, halfExtent)
	max := vecmath.Add(center, halfExtent)

	tMin, tMax := float32(0), segLen
	var hitAxis int
	var hitSign float32

	axes := [3]struct {
		o, d, lo, hi float32
	}{
		{origin.X, dirN.X, min.X, max.X},
		{origin.Y, dirN.Y, min.Y, max.Y},
		{origin.Z, dirN.Z, min.Z, max.Z},
	}
	for i, a := range axes {
		if float32(math.Abs(float64(a.d))) < 1e-9 {
			if a.o < a.lo || a.o > a.hi {
				return 0, vecmath.Zero, vecmath.Zero, false
			}
			continue
		}
		inv := 1 / a.d
		t1 := (a.lo - a.o) * inv
		t2 := (a.hi - a.o) * inv
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tMin {
			tMin = t1
			hitAxis = i
			hitSign = sign
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, vecmath.Zero, vecmath.Zero, false
		}
	}
	if tMin < 0 || tMin > segLen {
		return 0, vecmath.Zero, vecmath.Zero, false
	}

	point = vecmath.Add(origin, vecmath.Scale(tMin, dirN))
	switch hitAxis {
	case 0:
		normal = vecmath.Vec3{X: hitSign, Y: 0, Z: 0}
	case 1:
		normal = vecmath.Vec3{X: 0, Y: hitSign, Z: 0}
	default:
		normal = vecmath.Vec3{X: 0, Y: 0, Z: hitSign}
	}
	return tMin / segLen, point, normal, true
}
