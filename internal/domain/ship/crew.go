package ship

import "fmt"

// CrewRole names a crew position aboard ship.
type CrewRole string

const (
	RoleSailor     CrewRole = "SAILOR"
	RoleOarsman    CrewRole = "OARSMAN"
	RoleMarine     CrewRole = "MARINE"
	RoleMate       CrewRole = "MATE"
	RoleLieutenant CrewRole = "LIEUTENANT"
	RoleCaptain    CrewRole = "CAPTAIN"
)

// AllCrewRoles returns the crew roles in muster order.
func AllCrewRoles() []CrewRole {
	return []CrewRole{RoleSailor, RoleOarsman, RoleMarine, RoleMate, RoleLieutenant, RoleCaptain}
}

// IsValid checks the role belongs to the closed set.
func (r CrewRole) IsValid() bool {
	switch r {
	case RoleSailor, RoleOarsman, RoleMarine, RoleMate, RoleLieutenant, RoleCaptain:
		return true
	default:
		return false
	}
}

func (r CrewRole) String() string {
	return string(r)
}

// MonthlyWage returns the role's wage in gp per month. Lieutenants are paid
// by level; level is carried on the crew slot.
func (r CrewRole) MonthlyWage(level int) int {
	switch r {
	case RoleSailor:
		return 2
	case RoleOarsman:
		return 5
	case RoleMarine:
		return 3
	case RoleMate:
		return 30
	case RoleLieutenant:
		if level < 1 {
			level = 1
		}
		return 100 * level
	default:
		// The captain draws profit shares, not a wage.
		return 0
	}
}

// ParseCrewRole parses a string into a CrewRole.
func ParseCrewRole(s string) (CrewRole, error) {
	r := CrewRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid crew role: %s", s)
	}
	return r, nil
}

// CrewSlot is a role with a headcount and, for officers, a level.
type CrewSlot struct {
	Role  CrewRole `json:"role" yaml:"role"`
	Count int      `json:"count" yaml:"count"`
	Level int      `json:"level,omitempty" yaml:"level,omitempty"`
}

// Complement is a ship's crew as role slots.
type Complement []CrewSlot

// Count returns the headcount for a role.
func (c Complement) Count(role CrewRole) int {
	for _, slot := range c {
		if slot.Role == role {
			return slot.Count
		}
	}
	return 0
}

// Total returns all souls aboard.
func (c Complement) Total() int {
	total := 0
	for _, slot := range c {
		total += slot.Count
	}
	return total
}

// MonthlyWage totals the monthly wage bill across all slots.
func (c Complement) MonthlyWage() int {
	total := 0
	for _, slot := range c {
		total += slot.Count * slot.Role.MonthlyWage(slot.Level)
	}
	return total
}

// Adjust changes a role's headcount by delta, flooring at zero. A missing
// slot is created when hiring into a role the ship lost entirely.
func (c Complement) Adjust(role CrewRole, delta int) Complement {
	for i, slot := range c {
		if slot.Role == role {
			slot.Count += delta
			if slot.Count < 0 {
				slot.Count = 0
			}
			c[i] = slot
			return c
		}
	}
	if delta > 0 {
		c = append(c, CrewSlot{Role: role, Count: delta})
	}
	return c
}

// Clone deep-copies the complement.
func (c Complement) Clone() Complement {
	out := make(Complement, len(c))
	copy(out, c)
	return out
}

// RemoveCasualties draws losses first from sailors, then marines, and
// returns how many were actually removed.
func (c Complement) RemoveCasualties(count int) (Complement, int) {
	removed := 0
	for _, role := range []CrewRole{RoleSailor, RoleMarine} {
		for removed < count && c.Count(role) > 0 {
			c = c.Adjust(role, -1)
			removed++
		}
	}
	return c, removed
}
