package yamlite

type state int

const (
	idle state = iota
	inArray
)

// parser holds the accumulation state of a single Parse call.
type parser struct {
	doc   *Document
	state state

	// pendingKey is the last top-level key declared with an empty value.
	// It survives intervening scalar lines.
	pendingKey string
	// listKey is the key the current list will be committed under.
	listKey string
	list    []Item
	item    Item
}

// Parse reads content in a single forward pass.
//
// A top-level `key:` with an empty value announces a list; indented
// `- field: value` lines start items of that list and further indented
// `field: value` lines add fields to the current item, coercing the literals
// true and false to booleans. The list is committed when the next top-level
// line arrives or the input ends. Scalar lines do not forget the announced
// key, so items that follow one still belong to the last empty key and
// replace its earlier list. Items that appear before any list key has been
// announced are dropped.
func Parse(content string) *Document {
	p := &parser{doc: newDocument()}
	for _, raw := range splitLines(content) {
		p.feed(Classify(raw))
	}
	p.commit()
	return p.doc
}

func (p *parser) feed(l Line) {
	switch l.Kind {
	case TopLevelScalar:
		p.commit()
		p.doc.setScalar(l.Key, l.Value)
	case TopLevelEmptyKey:
		p.commit()
		p.pendingKey = l.Key
	case ArrayItemStart:
		p.flushItem()
		p.item = Item{{Key: l.Key, Value: l.Value}}
		p.listKey = p.pendingKey
		p.state = inArray
	case NestedField:
		if p.state == inArray {
			p.item.set(l.Key, coerce(l.Value))
		}
	}
}

func (p *parser) flushItem() {
	if len(p.item) > 0 {
		p.list = append(p.list, p.item)
	}
	p.item = nil
}

// commit finalizes the list being accumulated, if any.
func (p *parser) commit() {
	if p.state != inArray {
		return
	}
	p.flushItem()
	if p.listKey != "" {
		p.doc.setList(p.listKey, p.list)
	}
	p.list = nil
	p.listKey = ""
	p.state = idle
}

func coerce(v string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return v
}
