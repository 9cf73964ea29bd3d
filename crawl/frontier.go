package crawl

// target is a URL waiting to be visited and the link depth it was found at.
type target struct {
	url   string
	depth int
}

// frontier is the LIFO stack of a depth-first walk. Pushing a page's links
// in reverse order makes them pop in document order, which reproduces the
// visiting order of a recursive walk without using the call stack.
type frontier struct {
	items []target
}

func (f *frontier) push(t target) {
	f.items = append(f.items, t)
}

// pushLinks pushes the links of a page found at depth so that links[0]
// is popped first.
func (f *frontier) pushLinks(links []string, depth int) {
	for i := len(links) - 1; i >= 0; i-- {
		f.push(target{url: links[i], depth: depth})
	}
}

func (f *frontier) pop() (target, bool) {
	n := len(f.items)
	if n == 0 {
		return target{}, false
	}
	t := f.items[n-1]
	f.items = f.items[:n-1]
	return t, true
}

func (f *frontier) len() int {
	return len(f.items)
}
