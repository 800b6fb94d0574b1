package get_available_slots

// idSet неизменяемое множество идентификаторов с сохранением порядка добавления.
// With возвращает новое множество, исходное не меняется.
type idSet struct {
	ids   []string
	index map[string]struct{}
}

func newIDSet(ids ...string) idSet {
	return idSet{}.With(ids...)
}

// With возвращает копию множества с добавленными идентификаторами
func (s idSet) With(ids ...string) idSet {
	next := idSet{
		ids:   make([]string, len(s.ids), len(s.ids)+len(ids)),
		index: make(map[string]struct{}, len(s.ids)+len(ids)),
	}
	copy(next.ids, s.ids)
	for id := range s.index {
		next.index[id] = struct{}{}
	}

	for _, id := range ids {
		if _, ok := next.index[id]; ok {
			continue
		}
		next.index[id] = struct{}{}
		next.ids = append(next.ids, id)
	}
	return next
}

// Has проверяет наличие идентификатора
func (s idSet) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// HasAny возвращает true, если хотя бы один из ids есть в множестве
func (s idSet) HasAny(ids []string) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// HasAll возвращает true, если все ids есть в множестве (для пустого списка тоже true)
func (s idSet) HasAll(ids []string) bool {
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

func (s idSet) Len() int {
	return len(s.ids)
}

// Slice возвращает копию идентификаторов в порядке добавления, никогда не nil
func (s idSet) Slice() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
