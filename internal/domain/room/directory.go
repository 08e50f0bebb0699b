package room

// Resolved is the result of a directory lookup. Known is false when the room was synthesized.
type Resolved struct {
	Room
	Known bool
}

// Directory is a read-only index over a room set. Lookups never fail.
type Directory struct {
	byID map[string]Room
}

func NewDirectory(rooms []Room) Directory {
	byID := make(map[string]Room, len(rooms))
	for _, r := range rooms {
		// first entry wins, matching list order
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = r
		}
	}
	return Directory{byID: byID}
}

func (d Directory) Resolve(id string) Resolved {
	if r, ok := d.byID[id]; ok {
		return Resolved{Room: r, Known: true}
	}
	return Resolved{Room: Placeholder(id)}
}

func (d Directory) ByID(id string) Room {
	return d.Resolve(id).Room
}

func (d Directory) Contains(id string) bool {
	_, ok := d.byID[id]
	return ok
}
