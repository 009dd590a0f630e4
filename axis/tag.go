package axis

import "fmt"

// Tag describes one axis of an array: a short key, a type classification,
// a free-text description, and the array library's own notion of sample
// resolution. The description may carry an embedded calibration fragment;
// this package treats it as opaque text.
type Tag struct {
	Key         string
	Type        Type
	Description string
	Resolution  float64
}

// NewTag creates a tag with the conventional key for its type.
func NewTag(t Type) Tag {
	return Tag{Key: DefaultKey(t), Type: t, Resolution: 1}
}

// TagList is an ordered, keyed collection of axis tags. It stands in for the
// array library's axis-tag collection: order is axis order, keys are unique.
type TagList struct {
	order []*Tag
	byKey map[string]*Tag
}

// NewTagList builds a list from tags in order. Duplicate keys are rejected.
func NewTagList(tags ...Tag) (*TagList, error) {
	l := &TagList{byKey: make(map[string]*Tag, len(tags))}
	for _, t := range tags {
		if err := l.Append(t); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Len returns the number of axes.
func (l *TagList) Len() int {
	return len(l.order)
}

// Get returns the tag with the given key.
func (l *TagList) Get(key string) (*Tag, bool) {
	t, ok := l.byKey[key]
	return t, ok
}

// At returns the tag at position i.
func (l *TagList) At(i int) *Tag {
	return l.order[i]
}

// Keys returns the axis keys in axis order.
func (l *TagList) Keys() []string {
	keys := make([]string, len(l.order))
	for i, t := range l.order {
		keys[i] = t.Key
	}

	return keys
}

// Index returns the position of the given key, or -1.
func (l *TagList) Index(key string) int {
	for i, t := range l.order {
		if t.Key == key {
			return i
		}
	}

	return -1
}

// Append adds a tag at the end of the list.
func (l *TagList) Append(t Tag) error {
	if t.Key == "" {
		return fmt.Errorf("axis tag has no key")
	}

	if _, ok := l.byKey[t.Key]; ok {
		return fmt.Errorf("duplicate axis key %q", t.Key)
	}

	if l.byKey == nil {
		l.byKey = make(map[string]*Tag)
	}

	stored := t
	l.order = append(l.order, &stored)
	l.byKey[t.Key] = &stored

	return nil
}

// Insert adds a tag at position i, shifting later axes.
func (l *TagList) Insert(i int, t Tag) error {
	if i < 0 || i > len(l.order) {
		return fmt.Errorf("axis position %d out of range [0, %d]", i, len(l.order))
	}

	if err := l.Append(t); err != nil {
		return err
	}

	stored := l.order[len(l.order)-1]
	copy(l.order[i+1:], l.order[i:])
	l.order[i] = stored

	return nil
}

// Remove deletes the tag with the given key, returning true when it existed.
func (l *TagList) Remove(key string) bool {
	i := l.Index(key)
	if i < 0 {
		return false
	}

	l.order = append(l.order[:i], l.order[i+1:]...)
	delete(l.byKey, key)

	return true
}
