package program

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/device"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

func (p *program) Resolve(name string, role shader.Role) (Location, error) {
	if p.handle == 0 {
		return Location{}, fmt.Errorf("program: %s: %q: %w", p.shader.Key(), name, ErrInvalidProgram)
	}

	v, ok := p.shader.Variable(name)
	if !ok {
		return Location{}, fmt.Errorf("program: %s: %q: %w: %w", p.shader.Key(), name, ErrUndeclared, ErrInvalidLocation)
	}
	if v.Role != role {
		return Location{}, fmt.Errorf("program: %s: %q is declared as %s, not %s: %w: %w",
			p.shader.Key(), name, v.Role, role, ErrRoleMismatch, ErrInvalidLocation)
	}

	key := cacheKey{handle: p.handle, name: name, role: role}
	if p.cache != nil {
		if cached, ok := p.cache.Get(key); ok {
			return cached.(Location), nil
		}
	}

	loc, err := p.queryLocation(v)
	if err != nil {
		return Location{}, err
	}

	if p.cache != nil {
		p.cache.Add(key, loc)
	}
	return loc, nil
}

// queryLocation asks the device for the location of a declared variable.
func (p *program) queryLocation(v shader.Variable) (Location, error) {
	var value int32
	switch v.Role {
	case shader.RoleAttribute:
		value = p.dev.GetAttribLocation(p.handle, v.Name)
		if value < 0 {
			return Location{}, fmt.Errorf("program: %s: attribute %q: %w", p.shader.Key(), v.Name, ErrInvalidLocation)
		}
	case shader.RoleUniform:
		value = p.dev.GetUniformLocation(p.handle, v.Name)
		if value == device.NullLocation {
			return Location{}, fmt.Errorf("program: %s: uniform %q: %w", p.shader.Key(), v.Name, ErrInvalidLocation)
		}
	}
	return Location{Variable: v, Value: value}, nil
}
