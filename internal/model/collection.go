package model

// Collection helpers return fresh slices and never touch their input, so a
// caller can hold the previous list while the next one is persisted.

// Prepend inserts t at the head; the collection is kept newest-first.
func Prepend(list []Task, t Task) []Task {
	out := make([]Task, 0, len(list)+1)
	out = append(out, t)
	return append(out, list...)
}

// Remove drops the first task with the given id. Order of the remaining
// tasks is preserved.
func Remove(list []Task, id string) ([]Task, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out := make([]Task, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...), true
}

func Find(list []Task, id string) (Task, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return Task{}, false
	}
	return list[idx], true
}

func indexOf(list []Task, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
