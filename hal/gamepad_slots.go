package hal

// slotTable maps platform gamepad IDs onto a fixed number of player slots.
// A newly seen ID takes the lowest free slot and keeps it until it disappears.
type slotTable struct {
	ids  []int
	used []bool
}

func newSlotTable(n int) *slotTable {
	return &slotTable{ids: make([]int, n), used: make([]bool, n)}
}

func (t *slotTable) len() int { return len(t.ids) }

// sync releases slots whose ID is no longer present and assigns present IDs
// that have no slot yet. IDs beyond the slot count are ignored.
func (t *slotTable) sync(present []int) {
	for slot := range t.ids {
		if t.used[slot] && !containsID(present, t.ids[slot]) {
			t.used[slot] = false
		}
	}
	for _, id := range present {
		if t.slotOf(id) >= 0 {
			continue
		}
		for slot := range t.ids {
			if !t.used[slot] {
				t.ids[slot] = id
				t.used[slot] = true
				break
			}
		}
	}
}

func (t *slotTable) lookup(slot int) (int, bool) {
	if slot < 0 || slot >= len(t.ids) || !t.used[slot] {
		return 0, false
	}
	return t.ids[slot], true
}

func (t *slotTable) slotOf(id int) int {
	for slot := range t.ids {
		if t.used[slot] && t.ids[slot] == id {
			return slot
		}
	}
	return -1
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
