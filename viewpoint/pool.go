package viewpoint

// Pool 导入的扁平视点集合，按 guid 去重，保留首次出现的条目和插入顺序
type Pool struct {
	byID  map[string]*Node
	order []*Node
}

func NewPool() *Pool {
	return &Pool{byID: make(map[string]*Node)}
}

// Add 加入视点，guid 已存在时丢弃并返回 false
func (p *Pool) Add(n *Node) bool {
	if _, ok := p.byID[n.ID]; ok {
		return false
	}
	p.byID[n.ID] = n
	p.order = append(p.order, n)
	return true
}

func (p *Pool) Get(id string) (*Node, bool) {
	n, ok := p.byID[id]
	return n, ok
}

func (p *Pool) Has(id string) bool {
	_, ok := p.byID[id]
	return ok
}

// Views 按插入顺序返回视点
func (p *Pool) Views() []*Node {
	out := make([]*Node, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Pool) Len() int {
	return len(p.order)
}

func (p *Pool) Reset() {
	p.byID = make(map[string]*Node)
	p.order = nil
}
