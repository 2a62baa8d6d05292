// SPDX-License-Identifier: Unlicense OR MIT

package kastext

// selectorCache is a bounded LRU cache from FontSelector to the FontId it
// was last resolved to, used by FontscanLibrary to avoid re-querying
// fontscan's candidate-matching machinery for selectors the caller reuses
// across many FontTokens (spec.md §4.1 "cached on first use").
//
// Grounded on gioui.org/text/lru.go's layoutCache: the same intrusive
// doubly-linked-list-plus-map eviction scheme, generalised from gio's
// (ppem, maxWidth, str, locale, font) layout key to a bare FontSelector
// key, since this cache stores font resolution rather than full line
// layout results.
type selectorCache struct {
	m          map[FontSelector]*selectorElem
	head, tail *selectorElem
}

type selectorElem struct {
	next, prev *selectorElem
	key        FontSelector
	id         FontId
}

const selectorCacheMaxSize = 256

func (c *selectorCache) Get(key FontSelector) (FontId, bool) {
	if e, ok := c.m[key]; ok {
		c.remove(e)
		c.insert(e)
		return e.id, true
	}
	return 0, false
}

func (c *selectorCache) Put(key FontSelector, id FontId) {
	if c.m == nil {
		c.m = make(map[FontSelector]*selectorElem)
		c.head = new(selectorElem)
		c.tail = new(selectorElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	e := &selectorElem{key: key, id: id}
	c.m[key] = e
	c.insert(e)
	if len(c.m) > selectorCacheMaxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

func (c *selectorCache) remove(e *selectorElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *selectorCache) insert(e *selectorElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
