package hex

// Ring returns the hexes at exactly radius steps from center, walking
// counter-clockwise from center + direction(4)*radius.
// Radius 0 returns [center]; negative radius returns nil.
func Ring(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Hex{center}
	}
	res := make([]Hex, 0, 6*radius)
	cur := center.Add(directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			res = append(res, cur)
			cur = cur.Add(directions[side])
		}
	}
	return res
}

// Spiral returns center followed by every ring out to radius.
func Spiral(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	res := make([]Hex, 0, 3*radius*(radius+1)+1)
	for k := 0; k <= radius; k++ {
		res = append(res, Ring(center, k)...)
	}
	return res
}
