package focus

type overrideKey struct {
	from string
	dir  Direction
}

// overrides holds explicit adjacency rules. Id rules win over group rules.
type overrides struct {
	byID    map[overrideKey]string
	byGroup map[overrideKey]string
}

func (o *overrides) set(from string, dir Direction, to string) {
	if o.byID == nil {
		o.byID = make(map[overrideKey]string)
	}
	if to == "" {
		delete(o.byID, overrideKey{from, dir})
		return
	}
	o.byID[overrideKey{from, dir}] = to
}

func (o *overrides) setGroup(group string, dir Direction, to string) {
	if o.byGroup == nil {
		o.byGroup = make(map[overrideKey]string)
	}
	if to == "" {
		delete(o.byGroup, overrideKey{group, dir})
		return
	}
	o.byGroup[overrideKey{group, dir}] = to
}

func (o *overrides) lookup(el Element, dir Direction) (string, bool) {
	if to, ok := o.byID[overrideKey{el.ID, dir}]; ok {
		return to, true
	}
	if el.Group == "" {
		return "", false
	}
	to, ok := o.byGroup[overrideKey{el.Group, dir}]
	return to, ok
}

// groupPolicy describes a remembering group. active is the member that
// entering the group from outside lands on.
type groupPolicy struct {
	trackFocus bool
	active     string
}
